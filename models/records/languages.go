// Package records provides languages
package records

// Language is one selectable profile language, with an icon image.
type Language struct {
	ID     ID     `json:"id"`
	Title  string `json:"title"`
	Image  string `json:"image"`
	Status string `json:"status"`
}

// LanguageDraft is the create/update payload for a language. The icon rides
// along as a multipart file part.
type LanguageDraft struct {
	Title  string `json:"title" binding:"required"`
	Status string `json:"status" binding:"required"`
	Icon   *IconFile
}

func (l Language) RecordID() ID { return l.ID }

func (l Language) Field(key string) string {
	switch key {
	case "id":
		return l.ID.String()
	case "title":
		return l.Title
	case "image":
		return l.Image
	case "status":
		return l.Status
	}
	return ""
}

func (l Language) SearchKeys() []string { return []string{"title"} }

// FormFields returns the scalar multipart fields.
func (d LanguageDraft) FormFields() map[string]string {
	return map[string]string{"title": d.Title, "status": d.Status}
}

// FormFile returns the icon part when one is attached.
func (d LanguageDraft) FormFile() (string, string, []byte, bool) {
	if d.Icon == nil {
		return "", "", nil, false
	}
	return "image", d.Icon.Name, d.Icon.Data, true
}
