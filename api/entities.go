// Package api provides the HTTP surface the dashboard talks to
package api

import (
	"fmt"
	"io"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/amourdesk/amourdesk-go/models/records"
)

// bindJSON builds a JSON draft binder for one payload type. Required-field
// validation happens here, before anything reaches the store.
func bindJSON[D any]() func(*gin.Context) (any, error) {
	return func(c *gin.Context) (any, error) {
		var draft D
		if err := c.ShouldBindJSON(&draft); err != nil {
			return nil, fmt.Errorf("invalid request format: %w", err)
		}
		return draft, nil
	}
}

// iconForm reads the shared title/status/image multipart form the interest
// and language screens submit. The icon is optional; when present it is
// normalized through the icon processor before the upstream forward.
func (h *Handlers) iconForm(c *gin.Context) (title, status string, icon *records.IconFile, err error) {
	title = strings.TrimSpace(c.PostForm("title"))
	status = strings.TrimSpace(c.PostForm("status"))
	if title == "" {
		return "", "", nil, fmt.Errorf("title is required")
	}
	if status == "" {
		return "", "", nil, fmt.Errorf("status is required")
	}

	header, fileErr := c.FormFile("image")
	if fileErr != nil {
		// No file part means no icon change.
		return title, status, nil, nil
	}
	file, openErr := header.Open()
	if openErr != nil {
		return "", "", nil, fmt.Errorf("cannot read image upload: %w", openErr)
	}
	defer file.Close()
	data, readErr := io.ReadAll(file)
	if readErr != nil {
		return "", "", nil, fmt.Errorf("cannot read image upload: %w", readErr)
	}

	icon, err = h.icons.Process(header.Filename, data)
	if err != nil {
		return "", "", nil, err
	}
	return title, status, icon, nil
}

func (h *Handlers) registerFaqs(g *gin.RouterGroup) {
	st := h.registry.Faqs
	bind := bindJSON[records.FaqDraft]()
	g.GET("", func(c *gin.Context) { listEntity(h, c, st) })
	g.GET("/:id", func(c *gin.Context) { getEntity(h, c, st) })
	g.POST("", func(c *gin.Context) { createEntity(h, c, st, "FAQ", bind) })
	g.PUT("/:id", func(c *gin.Context) { updateEntity(h, c, st, "FAQ", bind) })
	g.DELETE("/:id", func(c *gin.Context) { deleteEntity(h, c, st, "FAQ") })
}

func (h *Handlers) registerInterests(g *gin.RouterGroup) {
	st := h.registry.Interests
	bind := func(c *gin.Context) (any, error) {
		title, status, icon, err := h.iconForm(c)
		if err != nil {
			return nil, err
		}
		return records.InterestDraft{Title: title, Status: status, Icon: icon}, nil
	}
	g.GET("", func(c *gin.Context) { listEntity(h, c, st) })
	g.GET("/:id", func(c *gin.Context) { getEntity(h, c, st) })
	g.POST("", func(c *gin.Context) { createEntity(h, c, st, "Interest", bind) })
	g.PUT("/:id", func(c *gin.Context) { updateEntity(h, c, st, "Interest", bind) })
	g.DELETE("/:id", func(c *gin.Context) { deleteEntity(h, c, st, "Interest") })
}

func (h *Handlers) registerLanguages(g *gin.RouterGroup) {
	st := h.registry.Languages
	bind := func(c *gin.Context) (any, error) {
		title, status, icon, err := h.iconForm(c)
		if err != nil {
			return nil, err
		}
		return records.LanguageDraft{Title: title, Status: status, Icon: icon}, nil
	}
	g.GET("", func(c *gin.Context) { listEntity(h, c, st) })
	g.GET("/:id", func(c *gin.Context) { getEntity(h, c, st) })
	g.POST("", func(c *gin.Context) { createEntity(h, c, st, "Language", bind) })
	g.PUT("/:id", func(c *gin.Context) { updateEntity(h, c, st, "Language", bind) })
	g.DELETE("/:id", func(c *gin.Context) { deleteEntity(h, c, st, "Language") })
}

func (h *Handlers) registerReligions(g *gin.RouterGroup) {
	st := h.registry.Religions
	bind := bindJSON[records.ReligionDraft]()
	g.GET("", func(c *gin.Context) { listEntity(h, c, st) })
	g.GET("/:id", func(c *gin.Context) { getEntity(h, c, st) })
	g.POST("", func(c *gin.Context) { createEntity(h, c, st, "Religion", bind) })
	g.PUT("/:id", func(c *gin.Context) { updateEntity(h, c, st, "Religion", bind) })
	g.DELETE("/:id", func(c *gin.Context) { deleteEntity(h, c, st, "Religion") })
}

func (h *Handlers) registerRelationGoals(g *gin.RouterGroup) {
	st := h.registry.RelationGoals
	bind := bindJSON[records.RelationGoalDraft]()
	g.GET("", func(c *gin.Context) { listEntity(h, c, st) })
	g.GET("/:id", func(c *gin.Context) { getEntity(h, c, st) })
	g.POST("", func(c *gin.Context) { createEntity(h, c, st, "Relation goal", bind) })
	g.PUT("/:id", func(c *gin.Context) { updateEntity(h, c, st, "Relation goal", bind) })
	g.DELETE("/:id", func(c *gin.Context) { deleteEntity(h, c, st, "Relation goal") })
}

// registerPlans mounts the plan routes. The upstream exposes no plan delete,
// so neither does this API.
func (h *Handlers) registerPlans(g *gin.RouterGroup) {
	st := h.registry.Plans
	bind := bindJSON[records.PlanDraft]()
	g.GET("", func(c *gin.Context) { listEntity(h, c, st) })
	g.GET("/:id", func(c *gin.Context) { getEntity(h, c, st) })
	g.POST("", func(c *gin.Context) { createEntity(h, c, st, "Plan", bind) })
	g.PUT("/:id", func(c *gin.Context) { updateEntity(h, c, st, "Plan", bind) })
}

func (h *Handlers) registerPayments(g *gin.RouterGroup) {
	st := h.registry.Payments
	bind := bindJSON[records.PaymentDraft]()
	g.GET("", func(c *gin.Context) { listEntity(h, c, st) })
	g.GET("/:id", func(c *gin.Context) { getEntity(h, c, st) })
	g.POST("", func(c *gin.Context) { createEntity(h, c, st, "Payment gateway", bind) })
	g.PUT("/:id", func(c *gin.Context) { updateEntity(h, c, st, "Payment gateway", bind) })
	g.DELETE("/:id", func(c *gin.Context) { deleteEntity(h, c, st, "Payment gateway") })
}

func (h *Handlers) registerUsers(g *gin.RouterGroup) {
	st := h.registry.Users
	bind := bindJSON[records.UserDraft]()
	g.GET("", func(c *gin.Context) { listEntity(h, c, st) })
	g.GET("/:id", func(c *gin.Context) { getEntity(h, c, st) })
	g.POST("", func(c *gin.Context) { createEntity(h, c, st, "User", bind) })
	g.PUT("/:id", func(c *gin.Context) { updateEntity(h, c, st, "User", bind) })
	g.DELETE("/:id", func(c *gin.Context) { deleteEntity(h, c, st, "User") })
}
