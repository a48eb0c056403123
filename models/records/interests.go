// Package records provides interests
package records

// Interest is one selectable user interest, with an icon image.
type Interest struct {
	ID     ID     `json:"id"`
	Title  string `json:"title"`
	Image  string `json:"image"`
	Status string `json:"status"`
}

// InterestDraft is the create/update payload for an interest. The icon rides
// along as a multipart file part.
type InterestDraft struct {
	Title  string `json:"title" binding:"required"`
	Status string `json:"status" binding:"required"`
	Icon   *IconFile
}

// IconFile is an image attachment for a multipart draft.
type IconFile struct {
	Name string
	Data []byte
}

func (i Interest) RecordID() ID { return i.ID }

func (i Interest) Field(key string) string {
	switch key {
	case "id":
		return i.ID.String()
	case "title":
		return i.Title
	case "image":
		return i.Image
	case "status":
		return i.Status
	}
	return ""
}

func (i Interest) SearchKeys() []string { return []string{"title"} }

// FormFields returns the scalar multipart fields.
func (d InterestDraft) FormFields() map[string]string {
	return map[string]string{"title": d.Title, "status": d.Status}
}

// FormFile returns the icon part when one is attached.
func (d InterestDraft) FormFile() (string, string, []byte, bool) {
	if d.Icon == nil {
		return "", "", nil, false
	}
	return "image", d.Icon.Name, d.Icon.Data, true
}
