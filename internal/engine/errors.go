package engine

import "fmt"

// NotFoundError is returned when an id does not resolve to an entity.
type NotFoundError struct {
	Kind string
	ID   string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.ID)
}

// AlreadyDoneError is returned when a completion would double-count.
type AlreadyDoneError struct {
	Kind string
	ID   string
}

func (e AlreadyDoneError) Error() string {
	return fmt.Sprintf("%s %q is already done for today", e.Kind, e.ID)
}
