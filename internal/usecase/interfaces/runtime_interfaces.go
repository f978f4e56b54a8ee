package interfaces

import "time"

// IClock is injected so status timestamps and audit fields are testable.
type IClock interface {
	Now() time.Time
}

// IIDGenerator produces random unique ids for visits and service items.
type IIDGenerator interface {
	NewID() string
}
