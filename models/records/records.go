// Package records provides the typed records managed through the dashboard
package records

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ID is a record identifier. The upstream API is inconsistent about identifier
// types (numeric for users and FAQs, string for plans), so IDs decode from
// either JSON form and are carried as strings.
type ID string

// UnmarshalJSON accepts both string and numeric identifiers.
func (id *ID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || string(b) == "null" {
		*id = ""
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("invalid record id %q: %w", string(b), err)
	}
	*id = ID(n.String())
	return nil
}

// MarshalJSON emits the identifier as a string.
func (id ID) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(id))
}

func (id ID) String() string { return string(id) }

// Record is one persisted item of a given entity type.
type Record interface {
	// RecordID returns the unique identifier.
	RecordID() ID
	// Field returns the text of the named column, used for sorting and
	// searching. Unknown keys return "".
	Field(key string) string
	// SearchKeys returns the designated searchable columns.
	SearchKeys() []string
}

// FormDraft is a create/update payload that must be sent as multipart form
// data instead of JSON.
type FormDraft interface {
	// FormFields returns the scalar form fields.
	FormFields() map[string]string
	// FormFile returns the attached file part, if any.
	FormFile() (field, filename string, data []byte, ok bool)
}

// Status values as the upstream stores them.
const (
	StatusPublished   = "1"
	StatusUnpublished = "0"
)

// StatusLabel renders a status flag the way the dashboard displays it.
func StatusLabel(status string) string {
	if status == StatusPublished {
		return "Published"
	}
	return "Unpublished"
}

func boolField(v bool) string {
	if v {
		return "1"
	}
	return "0"
}
