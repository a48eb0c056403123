// Package records provides users
package records

// User is one end-user account as the upstream returns it. Most columns are
// strings on the wire regardless of their logical type.
type User struct {
	ID               ID     `json:"id"`
	Name             string `json:"name"`
	Email            string `json:"email"`
	Mobile           string `json:"mobile"`
	RegisteredDate   string `json:"rdate"`
	Status           string `json:"status"`
	CountryCode      string `json:"ccode"`
	Code             string `json:"code"`
	ReferCode        string `json:"refercode"`
	Wallet           string `json:"wallet"`
	Gender           string `json:"gender"`
	Latitude         string `json:"lats"`
	Longitude        string `json:"longs"`
	ProfileBio       string `json:"profile_bio"`
	ProfilePic       string `json:"profile_pic"`
	BirthDate        string `json:"birth_date"`
	SearchPreference string `json:"search_preference"`
	RadiusSearch     string `json:"radius_search"`
	RelationGoal     string `json:"relation_goal"`
	Interest         string `json:"interest"`
	Language         string `json:"language"`
	Religion         string `json:"religion"`
	OtherPic         string `json:"other_pic"`
	PlanID           string `json:"plan_id"`
	PlanStartDate    string `json:"plan_start_date"`
	PlanEndDate      string `json:"plan_end_date"`
	IsSubscribed     string `json:"is_subscribe"`
	HistoryID        string `json:"history_id"`
	PlanName         string `json:"planName,omitempty"`
	Height           string `json:"height"`
	IdentityPicture  string `json:"identity_picture"`
	IsVerified       string `json:"is_verify"`
	DirectAudio      string `json:"direct_audio"`
	DirectVideo      string `json:"direct_video"`
	DirectChat       string `json:"direct_chat"`
	CreatedAt        string `json:"createdAt"`
	UpdatedAt        string `json:"updatedAt"`
}

// UserDraft is the create/update payload for a user account.
type UserDraft struct {
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email" binding:"required"`
	Mobile      string `json:"mobile" binding:"required"`
	CountryCode string `json:"ccode"`
	Gender      string `json:"gender"`
	Status      string `json:"status"`
}

// userSearchKeys lists every column; the user list screen searches across all
// fields rather than a designated subset.
var userSearchKeys = []string{
	"id", "name", "email", "mobile", "rdate", "status", "ccode", "code",
	"refercode", "wallet", "gender", "profile_bio", "birth_date",
	"search_preference", "relation_goal", "interest", "language", "religion",
	"plan_id", "planName", "height", "is_verify", "is_subscribe",
}

func (u User) RecordID() ID { return u.ID }

func (u User) Field(key string) string {
	switch key {
	case "id":
		return u.ID.String()
	case "name":
		return u.Name
	case "email":
		return u.Email
	case "mobile":
		return u.Mobile
	case "rdate":
		return u.RegisteredDate
	case "status":
		return u.Status
	case "ccode":
		return u.CountryCode
	case "code":
		return u.Code
	case "refercode":
		return u.ReferCode
	case "wallet":
		return u.Wallet
	case "gender":
		return u.Gender
	case "profile_bio":
		return u.ProfileBio
	case "birth_date":
		return u.BirthDate
	case "search_preference":
		return u.SearchPreference
	case "relation_goal":
		return u.RelationGoal
	case "interest":
		return u.Interest
	case "language":
		return u.Language
	case "religion":
		return u.Religion
	case "plan_id":
		return u.PlanID
	case "planName":
		return u.PlanName
	case "height":
		return u.Height
	case "is_verify":
		return u.IsVerified
	case "is_subscribe":
		return u.IsSubscribed
	}
	return ""
}

func (u User) SearchKeys() []string { return userSearchKeys }
