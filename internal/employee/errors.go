package employee

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var ErrNotFound = errors.New("employee not found")

// ValidationError lists the offending fields with a user-facing message each.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "invalid employee: " + strings.Join(parts, "; ")
}

// PersistenceError reports that the in-memory collection changed but the
// snapshot could not be read or written.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persist employees (%s): %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// RepairError reports that Load kept the snapshot but had to change it:
// records that failed validation were dropped and later records reusing an
// id were given a fresh one. The repaired collection is written on the next
// mutation.
type RepairError struct {
	Reassigned map[int64][]int64 // duplicated id -> ids given to the later copies
	Dropped    []Employee
}

func (e *RepairError) Error() string {
	n := 0
	for _, ids := range e.Reassigned {
		n += len(ids)
	}
	return fmt.Sprintf("employee snapshot repaired: %d duplicate ids reassigned, %d invalid records dropped", n, len(e.Dropped))
}
