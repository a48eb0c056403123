// Package store provides the entity state containers for the dashboard
package store

import (
	"github.com/amourdesk/amourdesk-go/internal/observability/logging"
	"github.com/amourdesk/amourdesk-go/models/records"
	"github.com/amourdesk/amourdesk-go/upstream"
)

// Upstream route and envelope configuration per entity. The envelope keys are
// a collaborator contract quirk and are preserved exactly: list and detail
// keys differ for payments, users answer detail reads under "data", and plans
// expose no delete.
var (
	faqEndpoints = upstream.Endpoints{
		ListPath: "/faq/all-admin", GetPath: "/faq/%s",
		CreatePath: "/faq/create", UpdatePath: "/faq/update/%s", DeletePath: "/faq/delete/%s",
		ListKey: "FaqData", DetailKey: "FaqData",
	}
	interestEndpoints = upstream.Endpoints{
		ListPath: "/interest/all-admin", GetPath: "/interest/%s",
		CreatePath: "/interest/create", UpdatePath: "/interest/update/%s", DeletePath: "/interest/delete/%s",
		ListKey: "interestlist", DetailKey: "interestlist",
		Multipart: true,
	}
	languageEndpoints = upstream.Endpoints{
		ListPath: "/language/all-admin", GetPath: "/language/%s",
		CreatePath: "/language/create", UpdatePath: "/language/update/%s", DeletePath: "/language/delete/%s",
		ListKey: "languagelist", DetailKey: "languagelist",
		Multipart: true,
	}
	religionEndpoints = upstream.Endpoints{
		ListPath: "/religion/all-admin", GetPath: "/religion/%s",
		CreatePath: "/religion/create", UpdatePath: "/religion/update/%s", DeletePath: "/religion/delete/%s",
		ListKey: "religionlist", DetailKey: "religionlist",
	}
	relationGoalEndpoints = upstream.Endpoints{
		ListPath: "/relation/all-admin", GetPath: "/relation/%s",
		CreatePath: "/relation/create", UpdatePath: "/relation/update/%s", DeletePath: "/relation/delete/%s",
		ListKey: "goallist", DetailKey: "goallist",
	}
	planEndpoints = upstream.Endpoints{
		ListPath: "/plan/all-admin", GetPath: "/plan/%s",
		CreatePath: "/plan/create", UpdatePath: "/plan/update/%s",
		ListKey: "PlanData", DetailKey: "PlanData",
	}
	paymentEndpoints = upstream.Endpoints{
		ListPath: "/payment/all-admin", GetPath: "/payment/%s",
		CreatePath: "/payment/create", UpdatePath: "/payment/update/%s", DeletePath: "/payment/delete/%s",
		ListKey: "paymentdata", DetailKey: "paymentlist",
	}
	userEndpoints = upstream.Endpoints{
		ListPath: "/user/all-admin", GetPath: "/user/information/%s",
		CreatePath: "/user/create", UpdatePath: "/user/update/%s", DeletePath: "/user/delete/%s",
		ListKey: "userlist", DetailKey: "data",
	}
)

// Registry holds one typed store per entity. It is built once at startup and
// handed to the HTTP layer by dependency injection; there is no package-level
// instance.
type Registry struct {
	Faqs          *Store[records.Faq]
	Interests     *Store[records.Interest]
	Languages     *Store[records.Language]
	Religions     *Store[records.Religion]
	RelationGoals *Store[records.RelationGoal]
	Plans         *Store[records.Plan]
	Payments      *Store[records.Payment]
	Users         *Store[records.User]
}

// NewRegistry wires the eight entity stores against the shared upstream
// client.
func NewRegistry(client *upstream.Client, logger *logging.ChanneledLogger) *Registry {
	return &Registry{
		Faqs:          New("faq", upstream.NewResource[records.Faq](client, faqEndpoints), logger),
		Interests:     New("interest", upstream.NewResource[records.Interest](client, interestEndpoints), logger),
		Languages:     New("language", upstream.NewResource[records.Language](client, languageEndpoints), logger),
		Religions:     New("religion", upstream.NewResource[records.Religion](client, religionEndpoints), logger),
		RelationGoals: New("relation goal", upstream.NewResource[records.RelationGoal](client, relationGoalEndpoints), logger),
		Plans:         New("plan", upstream.NewResource[records.Plan](client, planEndpoints), logger),
		Payments:      New("payment", upstream.NewResource[records.Payment](client, paymentEndpoints), logger),
		Users:         New("user", upstream.NewResource[records.User](client, userEndpoints), logger),
	}
}

// Stats returns the per-entity record counts for the dashboard stat cards.
func (r *Registry) Stats() map[string]int {
	return map[string]int{
		"faqs":          r.Faqs.Count(),
		"interests":     r.Interests.Count(),
		"languages":     r.Languages.Count(),
		"religions":     r.Religions.Count(),
		"relationGoals": r.RelationGoals.Count(),
		"plans":         r.Plans.Count(),
		"payments":      r.Payments.Count(),
		"users":         r.Users.Count(),
	}
}
