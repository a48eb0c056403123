// Package records provides subscription plans
package records

// Plan is one subscription plan. Amount and day limit arrive from the
// upstream as strings.
type Plan struct {
	ID            ID     `json:"id"`
	Title         string `json:"title"`
	Amount        string `json:"amount"`
	DayLimit      string `json:"dayLimit"`
	FilterInclude bool   `json:"filterInclude"`
	DirectChat    bool   `json:"directChat"`
	Chat          bool   `json:"chat"`
	LikeMenu      bool   `json:"likeMenu"`
	AudioVideo    bool   `json:"audioVideo"`
	Status        string `json:"status"`
	Description   string `json:"description"`
}

// PlanDraft is the create/update payload for a plan.
type PlanDraft struct {
	Title         string `json:"title" binding:"required"`
	Amount        string `json:"amount" binding:"required"`
	DayLimit      string `json:"dayLimit" binding:"required"`
	FilterInclude bool   `json:"filterInclude"`
	DirectChat    bool   `json:"directChat"`
	Chat          bool   `json:"chat"`
	LikeMenu      bool   `json:"likeMenu"`
	AudioVideo    bool   `json:"audioVideo"`
	Status        string `json:"status" binding:"required"`
	Description   string `json:"description"`
}

func (p Plan) RecordID() ID { return p.ID }

func (p Plan) Field(key string) string {
	switch key {
	case "id":
		return p.ID.String()
	case "title":
		return p.Title
	case "amount":
		return p.Amount
	case "dayLimit":
		return p.DayLimit
	case "filterInclude":
		return boolField(p.FilterInclude)
	case "directChat":
		return boolField(p.DirectChat)
	case "chat":
		return boolField(p.Chat)
	case "likeMenu":
		return boolField(p.LikeMenu)
	case "audioVideo":
		return boolField(p.AudioVideo)
	case "status":
		return p.Status
	case "description":
		return p.Description
	}
	return ""
}

func (p Plan) SearchKeys() []string { return []string{"title"} }
