// Package listview derives the rows a table screen displays
package listview

import (
	"context"
	"errors"
	"sync"

	"github.com/amourdesk/amourdesk-go/models/records"
)

// Delete-flow errors.
var (
	ErrNoTarget      = errors.New("no record selected for deletion")
	ErrDeletePending = errors.New("a delete is already pending")
)

// DeleteFlow is the confirmation dialog's state machine, shared by every list
// screen: no target -> target selected (dialog open) -> confirmed or
// cancelled. Confirming runs the delete and then the re-list; while the
// delete is pending the confirm action is rejected.
type DeleteFlow struct {
	mu      sync.Mutex
	target  records.ID
	armed   bool
	pending bool
}

// Arm selects a record and opens the confirmation dialog.
func (f *DeleteFlow) Arm(id records.ID) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.target = id
	f.armed = true
}

// Target returns the selected record, if the dialog is open.
func (f *DeleteFlow) Target() (records.ID, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.target, f.armed
}

// Pending reports whether a confirmed delete is still in flight.
func (f *DeleteFlow) Pending() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.pending
}

// Cancel closes the dialog without deleting.
func (f *DeleteFlow) Cancel() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.target = ""
	f.armed = false
}

// Confirm runs the delete for the armed target and, when it succeeds, the
// re-list that refreshes the now-stale collection. The flow disarms whether
// or not the delete succeeds, matching the dialog closing either way.
func (f *DeleteFlow) Confirm(ctx context.Context,
	del func(context.Context, records.ID) error,
	relist func(context.Context) error,
) error {
	f.mu.Lock()
	if !f.armed {
		f.mu.Unlock()
		return ErrNoTarget
	}
	if f.pending {
		f.mu.Unlock()
		return ErrDeletePending
	}
	id := f.target
	f.pending = true
	f.armed = false
	f.target = ""
	f.mu.Unlock()

	defer func() {
		f.mu.Lock()
		f.pending = false
		f.mu.Unlock()
	}()

	if err := del(ctx, id); err != nil {
		return err
	}
	if relist != nil {
		return relist(ctx)
	}
	return nil
}
