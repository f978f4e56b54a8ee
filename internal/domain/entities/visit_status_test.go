package entities

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allVisitStatuses = []VisitStatus{VisitInProgress, VisitReadyForPickup, VisitCompleted, VisitRejected, VisitArchived}

func TestValidateTransition_Whitelist(t *testing.T) {
	legal := map[VisitStatus][]VisitStatus{
		VisitInProgress:     {VisitReadyForPickup, VisitRejected},
		VisitReadyForPickup: {VisitCompleted, VisitInProgress},
		VisitCompleted:      {VisitArchived},
		VisitRejected:       {VisitArchived},
		VisitArchived:       nil,
	}

	for _, from := range allVisitStatuses {
		for _, to := range allVisitStatuses {
			want := false
			for _, l := range legal[from] {
				if l == to {
					want = true
				}
			}
			err := ValidateTransition(from, to)
			if want {
				assert.NoError(t, err, "%s -> %s", from, to)
				continue
			}
			assert.ErrorIs(t, err, ErrIllegalStateTransition, "%s -> %s", from, to)
		}
	}
}

func TestValidateTransition_NoSelfTransition(t *testing.T) {
	for _, s := range allVisitStatuses {
		assert.Error(t, ValidateTransition(s, s), "self transition %s", s)
	}
}

func TestValidateTransition_ErrorNamesAllowedTargets(t *testing.T) {
	err := ValidateTransition(VisitInProgress, VisitArchived)

	var transitionErr *StateTransitionError
	require.True(t, errors.As(err, &transitionErr))
	assert.Equal(t, VisitInProgress, transitionErr.From)
	assert.Equal(t, VisitArchived, transitionErr.To)
	assert.Equal(t, []VisitStatus{VisitReadyForPickup, VisitRejected}, transitionErr.Allowed)
	assert.Contains(t, err.Error(), "READY_FOR_PICKUP, REJECTED")
}

func TestArchivedIsTerminal(t *testing.T) {
	assert.True(t, VisitArchived.IsTerminal())
	assert.Empty(t, AllowedTransitions(VisitArchived))
	assert.False(t, VisitCompleted.IsTerminal())
}

func TestAllowedTransitions_ReturnsCopy(t *testing.T) {
	got := AllowedTransitions(VisitInProgress)
	got[0] = VisitArchived
	assert.Equal(t, []VisitStatus{VisitReadyForPickup, VisitRejected}, AllowedTransitions(VisitInProgress))
}

func TestParseVisitStatus(t *testing.T) {
	s, err := ParseVisitStatus("ready_for_pickup")
	require.NoError(t, err)
	assert.Equal(t, VisitReadyForPickup, s)

	s, err = ParseVisitStatus("ACCEPTED")
	require.NoError(t, err)
	assert.Equal(t, VisitInProgress, s)

	_, err = ParseVisitStatus("LOST")
	assert.ErrorIs(t, err, ErrInvalidVisitStatus)
}
