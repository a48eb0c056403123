// Package upstream provides the HTTP client for the dating-app API
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"

	"github.com/amourdesk/amourdesk-go/models/records"
)

// Endpoints configures one entity's upstream routes and response envelopes.
// Path templates with a %s take the record identifier. An empty DeletePath
// means the upstream exposes no delete for the entity. List responses wrap
// the array under an entity-specific key; detail responses sometimes use a
// different key, and an empty key means a bare object.
type Endpoints struct {
	ListPath   string
	GetPath    string
	CreatePath string
	UpdatePath string
	DeletePath string

	ListKey   string
	DetailKey string

	// Multipart switches create/update encoding from JSON to multipart form
	// data (interest and language icon uploads).
	Multipart bool
}

// Resource is the typed endpoint set for one entity.
type Resource[E records.Record] struct {
	client *Client
	ep     Endpoints
}

// NewResource creates a typed resource over the shared client.
func NewResource[E records.Record](client *Client, ep Endpoints) *Resource[E] {
	return &Resource[E]{client: client, ep: ep}
}

// List fetches every record for the entity.
func (r *Resource[E]) List(ctx context.Context) ([]E, error) {
	var raw json.RawMessage
	if err := r.client.doJSON(ctx, http.MethodGet, r.ep.ListPath, nil, &raw); err != nil {
		return nil, err
	}
	payload, err := unwrap(raw, r.ep.ListKey)
	if err != nil {
		return nil, err
	}
	var items []E
	if err := json.Unmarshal(payload, &items); err != nil {
		return nil, newUnknownError()
	}
	return items, nil
}

// Get fetches a single record.
func (r *Resource[E]) Get(ctx context.Context, id records.ID) (E, error) {
	var zero E
	var raw json.RawMessage
	if err := r.client.doJSON(ctx, http.MethodGet, fmt.Sprintf(r.ep.GetPath, id), nil, &raw); err != nil {
		return zero, err
	}
	payload, err := unwrap(raw, r.ep.DetailKey)
	if err != nil {
		return zero, err
	}
	var item E
	if err := json.Unmarshal(payload, &item); err != nil {
		return zero, newUnknownError()
	}
	return item, nil
}

// Create submits a new record and returns the upstream's stored version.
func (r *Resource[E]) Create(ctx context.Context, draft any) (E, error) {
	return r.submit(ctx, http.MethodPost, r.ep.CreatePath, draft)
}

// Update replaces the record with the given identifier and returns the
// upstream's stored version.
func (r *Resource[E]) Update(ctx context.Context, id records.ID, draft any) (E, error) {
	return r.submit(ctx, http.MethodPut, fmt.Sprintf(r.ep.UpdatePath, id), draft)
}

// Delete removes the record with the given identifier and returns the
// identifier the upstream acknowledged.
func (r *Resource[E]) Delete(ctx context.Context, id records.ID) (records.ID, error) {
	if r.ep.DeletePath == "" {
		return "", ErrUnsupported
	}
	var ack struct {
		ID records.ID `json:"id"`
	}
	if err := r.client.doJSON(ctx, http.MethodDelete, fmt.Sprintf(r.ep.DeletePath, id), nil, &ack); err != nil {
		return "", err
	}
	if ack.ID == "" {
		ack.ID = id
	}
	return ack.ID, nil
}

func (r *Resource[E]) submit(ctx context.Context, method, path string, draft any) (E, error) {
	var zero E
	var raw json.RawMessage

	if r.ep.Multipart {
		form, ok := draft.(records.FormDraft)
		if !ok {
			return zero, NewValidationError("entity requires a multipart form payload")
		}
		contentType, body, err := encodeForm(form)
		if err != nil {
			return zero, err
		}
		if err := r.client.do(ctx, method, path, contentType, body, &raw); err != nil {
			return zero, err
		}
	} else {
		if err := r.client.doJSON(ctx, method, path, draft, &raw); err != nil {
			return zero, err
		}
	}

	var item E
	if err := json.Unmarshal(raw, &item); err != nil {
		return zero, newUnknownError()
	}
	return item, nil
}

// encodeForm renders a FormDraft as a multipart body.
func encodeForm(draft records.FormDraft) (string, *bytes.Buffer, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	for key, value := range draft.FormFields() {
		if err := writer.WriteField(key, value); err != nil {
			return "", nil, NewValidationError(fmt.Sprintf("cannot encode form field %s: %v", key, err))
		}
	}
	if field, filename, data, ok := draft.FormFile(); ok {
		part, err := writer.CreateFormFile(field, filename)
		if err != nil {
			return "", nil, NewValidationError(fmt.Sprintf("cannot attach file %s: %v", filename, err))
		}
		if _, err := part.Write(data); err != nil {
			return "", nil, NewValidationError(fmt.Sprintf("cannot write file %s: %v", filename, err))
		}
	}
	if err := writer.Close(); err != nil {
		return "", nil, NewValidationError(fmt.Sprintf("cannot finish form body: %v", err))
	}
	return writer.FormDataContentType(), &buf, nil
}

// unwrap pulls the payload out of an entity-specific response envelope. An
// empty key returns the body as-is.
func unwrap(raw json.RawMessage, key string) (json.RawMessage, error) {
	if key == "" {
		return raw, nil
	}
	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, newUnknownError()
	}
	payload, ok := envelope[key]
	if !ok {
		return nil, newUnknownError()
	}
	return payload, nil
}
