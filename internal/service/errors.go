package service

import (
	"errors"
	"strings"
)

// ErrNotFound covers both a missing session and a round that does not
// exist or belongs to a different session. Callers deliberately cannot
// tell the cases apart.
var ErrNotFound = errors.New("session or round not found")

// ValidationError reports every missing required field of a request, not
// just the first.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "missing fields: " + strings.Join(e.Fields, ", ")
}
