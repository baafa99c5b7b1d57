package repository

import (
	"context"
	"errors"
	"regexp"
	"time"
)

// ErrNotFound is returned by repositories when no document matches.
var ErrNotFound = errors.New("record not found")

// ErrDuplicate is returned when a unique index rejects an insert.
var ErrDuplicate = errors.New("duplicate record")

// NewContext derives a context bounded by timeout.
func NewContext(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if parent == nil {
		parent = context.Background()
	}
	return context.WithTimeout(parent, timeout)
}

// ExactMatchCI builds a case-insensitive exact-match filter value.
func ExactMatchCI(value string) map[string]interface{} {
	return map[string]interface{}{"$regex": "^" + regexp.QuoteMeta(value) + "$", "$options": "i"}
}
