package listview

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amourdesk/amourdesk-go/models/records"
)

func TestDeleteFlowConfirmRunsDeleteThenRelist(t *testing.T) {
	var flow DeleteFlow
	flow.Arm("7")

	var deleted records.ID
	var relisted bool
	err := flow.Confirm(context.Background(),
		func(_ context.Context, id records.ID) error {
			deleted = id
			return nil
		},
		func(_ context.Context) error {
			relisted = true
			return nil
		},
	)
	require.NoError(t, err)
	assert.Equal(t, records.ID("7"), deleted)
	assert.True(t, relisted)

	_, armed := flow.Target()
	assert.False(t, armed)
	assert.False(t, flow.Pending())
}

func TestDeleteFlowConfirmWithoutTarget(t *testing.T) {
	var flow DeleteFlow
	err := flow.Confirm(context.Background(), nil, nil)
	assert.ErrorIs(t, err, ErrNoTarget)
}

func TestDeleteFlowCancelDisarms(t *testing.T) {
	var flow DeleteFlow
	flow.Arm("3")
	flow.Cancel()
	_, armed := flow.Target()
	assert.False(t, armed)

	err := flow.Confirm(context.Background(), nil, nil)
	assert.ErrorIs(t, err, ErrNoTarget)
}

func TestDeleteFlowConfirmRejectedWhilePending(t *testing.T) {
	var flow DeleteFlow
	flow.Arm("3")

	started := make(chan struct{})
	release := make(chan struct{})
	done := make(chan error, 1)
	go func() {
		done <- flow.Confirm(context.Background(),
			func(_ context.Context, _ records.ID) error {
				close(started)
				<-release
				return nil
			},
			nil,
		)
	}()

	<-started
	assert.True(t, flow.Pending())
	flow.Arm("4")
	err := flow.Confirm(context.Background(), nil, nil)
	assert.ErrorIs(t, err, ErrDeletePending)

	close(release)
	require.NoError(t, <-done)
	assert.False(t, flow.Pending())
}

func TestDeleteFlowDeleteFailureSkipsRelist(t *testing.T) {
	var flow DeleteFlow
	flow.Arm("9")

	boom := errors.New("upstream refused")
	relisted := false
	err := flow.Confirm(context.Background(),
		func(_ context.Context, _ records.ID) error { return boom },
		func(_ context.Context) error {
			relisted = true
			return nil
		},
	)
	assert.ErrorIs(t, err, boom)
	assert.False(t, relisted)
}
