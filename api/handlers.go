// Package api provides the HTTP surface the dashboard talks to
package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/amourdesk/amourdesk-go/internal/infrastructure/media"
	"github.com/amourdesk/amourdesk-go/internal/observability/logging"
	"github.com/amourdesk/amourdesk-go/listview"
	"github.com/amourdesk/amourdesk-go/models/records"
	"github.com/amourdesk/amourdesk-go/notify"
	"github.com/amourdesk/amourdesk-go/store"
	"github.com/amourdesk/amourdesk-go/upstream"
)

// Handlers carries the dependencies every route needs. It is built once at
// startup; nothing in this package is package-level state.
type Handlers struct {
	registry *store.Registry
	notices  *notify.Center
	icons    *media.IconProcessor
	logger   *logging.ChanneledLogger
}

// New creates the handler set.
func New(registry *store.Registry, notices *notify.Center, icons *media.IconProcessor, logger *logging.ChanneledLogger) *Handlers {
	if logger == nil {
		logger = logging.NewChanneledLogger(nil)
	}
	return &Handlers{registry: registry, notices: notices, icons: icons, logger: logger}
}

// Register mounts every route group under /api/v1.
func (h *Handlers) Register(r *gin.Engine) {
	v1 := r.Group("/api/v1")
	{
		h.registerFaqs(v1.Group("/faqs"))
		h.registerInterests(v1.Group("/interests"))
		h.registerLanguages(v1.Group("/languages"))
		h.registerReligions(v1.Group("/religions"))
		h.registerRelationGoals(v1.Group("/relation-goals"))
		h.registerPlans(v1.Group("/plans"))
		h.registerPayments(v1.Group("/payments"))
		h.registerUsers(v1.Group("/users"))

		v1.GET("/dashboard/stats", h.statsHandler)
		v1.GET("/notifications", h.notificationsHandler)
	}
}

// statsHandler returns the per-entity record counts for the stat cards.
func (h *Handlers) statsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"counts": h.registry.Stats()})
}

// notificationsHandler returns recent transient notices, newest first.
func (h *Handlers) notificationsHandler(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			limit = n
		}
	}
	notices := h.notices.Recent(limit)
	c.JSON(http.StatusOK, gin.H{"notifications": notices, "count": len(notices)})
}

// listQuery applies the q/sort/dir/page/size query parameters to a fresh
// controller, giving the query-parameter screens the same reset semantics the
// interactive ones have: the defaults are page 1 of 10, and a sort parameter
// alone never moves the page.
func listQuery[E records.Record](c *gin.Context) *listview.Controller[E] {
	ctrl := listview.NewController[E]()
	if term := c.Query("q"); term != "" {
		ctrl.SetSearch(term)
	}
	if key := c.Query("sort"); key != "" {
		ctrl.SetSort(key, listview.Direction(c.DefaultQuery("dir", string(listview.Asc))))
	}
	if raw := c.Query("size"); raw != "" {
		if size, err := strconv.Atoi(raw); err == nil {
			ctrl.SetPageSize(size)
		}
	}
	if raw := c.Query("page"); raw != "" {
		if page, err := strconv.Atoi(raw); err == nil {
			ctrl.SetPage(page)
		}
	}
	return ctrl
}

// listEntity re-fetches the collection and derives the requested page. A
// failed fetch still renders whatever is cached from a prior success, with
// the failure inline in the state block.
func listEntity[E records.Record](h *Handlers, c *gin.Context, st *store.Store[E]) {
	ctrl := listQuery[E](c)
	st.List(c.Request.Context())

	view := ctrl.Rows(st.Collection())
	c.JSON(http.StatusOK, gin.H{
		"data":  view,
		"state": st.Snapshot(),
	})
}

// getEntity returns one record by identifier.
func getEntity[E records.Record](h *Handlers, c *gin.Context, st *store.Store[E]) {
	id := records.ID(c.Param("id"))
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "record ID is required"})
		return
	}
	item, err := st.GetOne(c.Request.Context(), id)
	if err != nil {
		c.JSON(upstreamStatus(err), gin.H{"error": upstream.Message(err)})
		return
	}
	c.JSON(http.StatusOK, item)
}

// createEntity submits a draft produced by bind and appends the stored record.
func createEntity[E records.Record](h *Handlers, c *gin.Context, st *store.Store[E], label string, bind func(*gin.Context) (any, error)) {
	draft, err := bind(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	item, err := st.Create(c.Request.Context(), draft)
	if err != nil {
		h.notices.Error("Failed to add " + label + ": " + upstream.Message(err))
		c.JSON(upstreamStatus(err), gin.H{"error": upstream.Message(err)})
		return
	}
	h.notices.Success(label + " added successfully")
	c.JSON(http.StatusCreated, item)
}

// updateEntity submits a draft for an existing record. The collection is
// stale afterwards until the screen's next list call.
func updateEntity[E records.Record](h *Handlers, c *gin.Context, st *store.Store[E], label string, bind func(*gin.Context) (any, error)) {
	id := records.ID(c.Param("id"))
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "record ID is required"})
		return
	}
	draft, err := bind(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	item, err := st.Update(c.Request.Context(), id, draft)
	if err != nil {
		h.notices.Error("Failed to update " + label + ": " + upstream.Message(err))
		c.JSON(upstreamStatus(err), gin.H{"error": upstream.Message(err)})
		return
	}
	h.notices.Success(label + " updated successfully")
	c.JSON(http.StatusOK, item)
}

// deleteEntity runs the confirmation flow's confirmed branch: delete, then
// re-list to refresh the stale collection.
func deleteEntity[E records.Record](h *Handlers, c *gin.Context, st *store.Store[E], label string) {
	id := records.ID(c.Param("id"))
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "record ID is required"})
		return
	}

	var flow listview.DeleteFlow
	flow.Arm(id)
	err := flow.Confirm(c.Request.Context(),
		func(ctx context.Context, target records.ID) error {
			_, delErr := st.Delete(ctx, target)
			return delErr
		},
		func(ctx context.Context) error {
			_, listErr := st.List(ctx)
			return listErr
		},
	)
	if err != nil {
		h.notices.Error("Failed to delete " + label + ": " + upstream.Message(err))
		c.JSON(upstreamStatus(err), gin.H{"error": upstream.Message(err)})
		return
	}
	h.notices.Success(label + " deleted successfully")
	c.JSON(http.StatusOK, gin.H{"id": id, "message": label + " deleted successfully"})
}

// upstreamStatus maps an operation failure to the status this API reports:
// the upstream's own status when it answered, 502 when it did not.
func upstreamStatus(err error) int {
	var reqErr *upstream.RequestError
	if errors.As(err, &reqErr) {
		if reqErr.Kind == upstream.KindValidation {
			return http.StatusBadRequest
		}
		if reqErr.Status > 0 {
			return reqErr.Status
		}
	}
	return http.StatusBadGateway
}
