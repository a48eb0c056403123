// Package records provides faqs
package records

// Faq is one frequently-asked-question entry.
type Faq struct {
	ID       ID     `json:"id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Status   string `json:"status"`
}

// FaqDraft is the create/update payload for a FAQ.
type FaqDraft struct {
	Question string `json:"question" binding:"required"`
	Answer   string `json:"answer" binding:"required"`
	Status   string `json:"status" binding:"required"`
}

func (f Faq) RecordID() ID { return f.ID }

func (f Faq) Field(key string) string {
	switch key {
	case "id":
		return f.ID.String()
	case "question":
		return f.Question
	case "answer":
		return f.Answer
	case "status":
		return f.Status
	}
	return ""
}

// SearchKeys returns the question column only, matching the FAQ list screen.
func (f Faq) SearchKeys() []string { return []string{"question"} }
