package entities

import (
	"fmt"
	"strings"
)

// VisitStatus is the lifecycle state of a visit.
type VisitStatus string

const (
	VisitInProgress     VisitStatus = "IN_PROGRESS"
	VisitReadyForPickup VisitStatus = "READY_FOR_PICKUP"
	VisitCompleted      VisitStatus = "COMPLETED"
	VisitRejected       VisitStatus = "REJECTED"
	VisitArchived       VisitStatus = "ARCHIVED"
)

// visitTransitions is the whitelist of legal status changes. Targets are
// ordered so error messages are stable.
var visitTransitions = map[VisitStatus][]VisitStatus{
	VisitInProgress:     {VisitReadyForPickup, VisitRejected},
	VisitReadyForPickup: {VisitCompleted, VisitInProgress},
	VisitCompleted:      {VisitArchived},
	VisitRejected:       {VisitArchived},
	VisitArchived:       {},
}

func ParseVisitStatus(raw string) (VisitStatus, error) {
	s := VisitStatus(strings.ToUpper(strings.TrimSpace(raw)))
	if s == "ACCEPTED" {
		return VisitInProgress, nil
	}
	if _, ok := visitTransitions[s]; !ok {
		return "", &ValidationError{Err: ErrInvalidVisitStatus, Details: fmt.Sprintf("unknown visit status %q", raw)}
	}
	return s, nil
}

// AllowedTransitions returns a copy of the legal targets for from.
func AllowedTransitions(from VisitStatus) []VisitStatus {
	targets := visitTransitions[from]
	out := make([]VisitStatus, len(targets))
	copy(out, targets)
	return out
}

func CanTransition(from, to VisitStatus) bool {
	for _, s := range visitTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// ValidateTransition is the single gate every status change goes through.
func ValidateTransition(from, to VisitStatus) error {
	if CanTransition(from, to) {
		return nil
	}
	return &StateTransitionError{From: from, To: to, Allowed: AllowedTransitions(from)}
}

func (s VisitStatus) IsTerminal() bool {
	return len(visitTransitions[s]) == 0
}

func (s VisitStatus) String() string {
	return string(s)
}
