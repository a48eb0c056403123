// Package store provides the entity state containers for the dashboard
package store

// OpKind identifies one of the five operations an entity store performs.
type OpKind string

const (
	OpList   OpKind = "list"
	OpGet    OpKind = "get"
	OpCreate OpKind = "create"
	OpUpdate OpKind = "update"
	OpDelete OpKind = "delete"
)

// opKinds enumerates every operation for state snapshots.
var opKinds = []OpKind{OpList, OpGet, OpCreate, OpUpdate, OpDelete}

// RequestState is the lifecycle of one operation kind. Re-invoking an
// operation from fulfilled or rejected transitions back through pending.
// There is no cancelled state; in-flight requests are never aborted.
type RequestState string

const (
	StateIdle      RequestState = "idle"
	StatePending   RequestState = "pending"
	StateFulfilled RequestState = "fulfilled"
	StateRejected  RequestState = "rejected"
)

// Snapshot is a read-only view of a store's request flags, shaped the way the
// dashboard renders spinners and disabled controls.
type Snapshot struct {
	Loading  bool   `json:"loading"`
	Adding   bool   `json:"isAdding"`
	Deleting bool   `json:"isDeleting"`
	Error    string `json:"error,omitempty"`
}
