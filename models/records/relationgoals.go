// Package records provides relation goals
package records

// RelationGoal is one selectable relationship goal.
type RelationGoal struct {
	ID       ID     `json:"id"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Status   string `json:"status"`
}

// RelationGoalDraft is the create/update payload for a relation goal.
type RelationGoalDraft struct {
	Title    string `json:"title" binding:"required"`
	Subtitle string `json:"subtitle" binding:"required"`
	Status   string `json:"status" binding:"required"`
}

func (g RelationGoal) RecordID() ID { return g.ID }

func (g RelationGoal) Field(key string) string {
	switch key {
	case "id":
		return g.ID.String()
	case "title":
		return g.Title
	case "subtitle":
		return g.Subtitle
	case "status":
		return g.Status
	}
	return ""
}

func (g RelationGoal) SearchKeys() []string { return []string{"title"} }
