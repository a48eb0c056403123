package store

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amourdesk/amourdesk-go/models/records"
	"github.com/amourdesk/amourdesk-go/upstream"
)

func newFaqStore(t *testing.T, handler http.Handler) (*Store[records.Faq], *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	client := upstream.NewClient(server.URL, 0, nil)
	return New("faq", upstream.NewResource[records.Faq](client, faqEndpoints), nil), server
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func TestListReplacesCollection(t *testing.T) {
	st, _ := newFaqStore(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"FaqData": []map[string]any{
			{"id": 1, "question": "q1", "answer": "a1", "status": "1"},
			{"id": 2, "question": "q2", "answer": "a2", "status": "0"},
		}})
	}))

	assert.Equal(t, StateIdle, st.State(OpList))
	items, err := st.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, items, 2)
	assert.Equal(t, 2, st.Count())
	assert.Equal(t, StateFulfilled, st.State(OpList))
	assert.Empty(t, st.Error())

	collection := st.Collection()
	require.Len(t, collection, 2)
	assert.Equal(t, records.ID("1"), collection[0].ID)
	assert.Equal(t, "q1", collection[0].Question)
}

func TestListFailureKeepsCachedCollection(t *testing.T) {
	var fail bool
	st, _ := newFaqStore(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if fail {
			writeJSON(w, http.StatusInternalServerError, map[string]any{"message": "database down"})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"FaqData": []map[string]any{
			{"id": 1, "question": "q1"},
		}})
	}))

	_, err := st.List(context.Background())
	require.NoError(t, err)

	fail = true
	_, err = st.List(context.Background())
	require.Error(t, err)
	assert.Equal(t, StateRejected, st.State(OpList))
	assert.Equal(t, "database down", st.Error())
	// Prior data stays available for rendering below the inline error.
	assert.Equal(t, 1, st.Count())
}

func TestGetOneReplacesCurrent(t *testing.T) {
	st, _ := newFaqStore(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"FaqData": map[string]any{
			"id": 5, "question": "q5", "answer": "a5", "status": "1",
		}})
	}))

	_, ok := st.Current()
	assert.False(t, ok)

	item, err := st.GetOne(context.Background(), "5")
	require.NoError(t, err)
	assert.Equal(t, records.ID("5"), item.ID)

	current, ok := st.Current()
	require.True(t, ok)
	assert.Equal(t, "q5", current.Question)
}

func TestCreateAppendsWithoutRefetch(t *testing.T) {
	var listCalls int
	st, _ := newFaqStore(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet:
			listCalls++
			writeJSON(w, http.StatusOK, map[string]any{"FaqData": []map[string]any{
				{"id": 1, "question": "q1"},
			}})
		case r.Method == http.MethodPost:
			writeJSON(w, http.StatusCreated, map[string]any{
				"id": 2, "question": "new question", "answer": "new answer", "status": "1",
			})
		}
	}))

	_, err := st.List(context.Background())
	require.NoError(t, err)

	item, err := st.Create(context.Background(), records.FaqDraft{
		Question: "new question", Answer: "new answer", Status: "1",
	})
	require.NoError(t, err)
	assert.Equal(t, records.ID("2"), item.ID)
	assert.Equal(t, 2, st.Count())
	assert.Equal(t, 1, listCalls, "create must not trigger a verifying re-fetch")
	assert.False(t, st.Snapshot().Adding)
}

func TestCreateRejectionLeavesCollectionUnchanged(t *testing.T) {
	st, _ := newFaqStore(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			writeJSON(w, http.StatusOK, map[string]any{"FaqData": []map[string]any{
				{"id": 1, "question": "q1"},
			}})
			return
		}
		writeJSON(w, http.StatusBadRequest, map[string]any{"message": "title required"})
	}))

	_, err := st.List(context.Background())
	require.NoError(t, err)

	_, err = st.Create(context.Background(), records.FaqDraft{Status: "1"})
	require.Error(t, err)
	assert.Equal(t, "title required", st.Error())
	assert.Equal(t, StateRejected, st.State(OpCreate))
	assert.False(t, st.Snapshot().Adding)
	assert.Equal(t, 1, st.Count())
}

func TestUpdateReplacesCurrentNotCollection(t *testing.T) {
	st, _ := newFaqStore(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			writeJSON(w, http.StatusOK, map[string]any{"FaqData": []map[string]any{
				{"id": 1, "question": "old question"},
			}})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"id": 1, "question": "new question", "answer": "a", "status": "1",
		})
	}))

	_, err := st.List(context.Background())
	require.NoError(t, err)

	_, err = st.Update(context.Background(), "1", records.FaqDraft{
		Question: "new question", Answer: "a", Status: "1",
	})
	require.NoError(t, err)

	current, ok := st.Current()
	require.True(t, ok)
	assert.Equal(t, "new question", current.Question)

	// The collection entry is intentionally left stale until the next List.
	collection := st.Collection()
	require.Len(t, collection, 1)
	assert.Equal(t, "old question", collection[0].Question)
}

func TestDeleteFiltersOutByID(t *testing.T) {
	st, _ := newFaqStore(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			writeJSON(w, http.StatusOK, map[string]any{"FaqData": []map[string]any{
				{"id": 6, "question": "q6"},
				{"id": 7, "question": "q7"},
				{"id": 8, "question": "q8"},
			}})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"id": 7})
	}))

	_, err := st.List(context.Background())
	require.NoError(t, err)

	acked, err := st.Delete(context.Background(), "7")
	require.NoError(t, err)
	assert.Equal(t, records.ID("7"), acked)
	assert.False(t, st.Snapshot().Deleting)

	for _, item := range st.Collection() {
		assert.NotEqual(t, records.ID("7"), item.ID)
	}
	assert.Equal(t, 2, st.Count())
}

func TestStaleListResponseIsDiscarded(t *testing.T) {
	// Two list calls race; the first response is held back until after the
	// second settles. The fence must discard the stale first response, so the
	// collection reflects the latest-issued call.
	firstArrived := make(chan struct{})
	releaseFirst := make(chan struct{})
	var calls int
	var mu sync.Mutex

	st, _ := newFaqStore(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		calls++
		call := calls
		mu.Unlock()

		if call == 1 {
			close(firstArrived)
			<-releaseFirst
			writeJSON(w, http.StatusOK, map[string]any{"FaqData": []map[string]any{
				{"id": 1, "question": "stale"},
			}})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"FaqData": []map[string]any{
			{"id": 2, "question": "fresh"},
		}})
	}))

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		st.List(context.Background())
	}()

	<-firstArrived
	_, err := st.List(context.Background())
	require.NoError(t, err)

	close(releaseFirst)
	wg.Wait()

	collection := st.Collection()
	require.Len(t, collection, 1)
	assert.Equal(t, "fresh", collection[0].Question)
	assert.Equal(t, StateFulfilled, st.State(OpList))
}

func TestPendingFlagsDuringOperation(t *testing.T) {
	inHandler := make(chan struct{})
	release := make(chan struct{})
	st, _ := newFaqStore(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		close(inHandler)
		<-release
		writeJSON(w, http.StatusOK, map[string]any{"FaqData": []map[string]any{}})
	}))

	done := make(chan struct{})
	go func() {
		defer close(done)
		st.List(context.Background())
	}()

	<-inHandler
	assert.Equal(t, StatePending, st.State(OpList))
	assert.True(t, st.Snapshot().Loading)

	close(release)
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("list did not settle")
	}
	assert.Equal(t, StateFulfilled, st.State(OpList))
	assert.False(t, st.Snapshot().Loading)
}

func TestRegistryStats(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"FaqData": []map[string]any{
			{"id": 1, "question": "q1"},
		}})
	}))
	t.Cleanup(server.Close)

	registry := NewRegistry(upstream.NewClient(server.URL, 0, nil), nil)
	_, err := registry.Faqs.List(context.Background())
	require.NoError(t, err)

	stats := registry.Stats()
	assert.Equal(t, 1, stats["faqs"])
	assert.Equal(t, 0, stats["users"])
	assert.Len(t, stats, 8)
}
