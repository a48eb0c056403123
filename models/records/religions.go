// Package records provides religions
package records

// Religion is one selectable profile religion.
type Religion struct {
	ID     ID     `json:"id"`
	Title  string `json:"title"`
	Status string `json:"status"`
}

// ReligionDraft is the create/update payload for a religion.
type ReligionDraft struct {
	Title  string `json:"title" binding:"required"`
	Status string `json:"status" binding:"required"`
}

func (r Religion) RecordID() ID { return r.ID }

func (r Religion) Field(key string) string {
	switch key {
	case "id":
		return r.ID.String()
	case "title":
		return r.Title
	case "status":
		return r.Status
	}
	return ""
}

func (r Religion) SearchKeys() []string { return []string{"title"} }
