// Package records provides payment gateways
package records

// Payment is one configured payment gateway.
type Payment struct {
	ID       ID     `json:"id"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Image    string `json:"image"`
	Status   string `json:"status"`
}

// PaymentDraft is the create/update payload for a payment gateway.
type PaymentDraft struct {
	Title    string `json:"title" binding:"required"`
	Subtitle string `json:"subtitle" binding:"required"`
	Status   string `json:"status" binding:"required"`
}

func (p Payment) RecordID() ID { return p.ID }

func (p Payment) Field(key string) string {
	switch key {
	case "id":
		return p.ID.String()
	case "title":
		return p.Title
	case "subtitle":
		return p.Subtitle
	case "image":
		return p.Image
	case "status":
		return p.Status
	}
	return ""
}

// SearchKeys covers title and subtitle, matching the payment list screen.
func (p Payment) SearchKeys() []string { return []string{"title", "subtitle"} }
