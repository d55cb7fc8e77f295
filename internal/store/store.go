package store

import (
	"errors"
	"sort"
	"strings"
	"sync"
)

// ErrNotFound is returned when no record carries the requested identifier.
var ErrNotFound = errors.New("record not found")

// ValidationError reports per-field problems with a submitted record.
// Fields maps the offending field name to a human-readable message.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return "invalid fields: " + strings.Join(names, ", ")
}

// Record is any entity held in a console collection.
type Record interface {
	RecordID() string
}

// Schema describes how a collection searches, filters, and validates its
// records. Zero-value fields disable the corresponding behavior.
type Schema[T Record] struct {
	// SearchFields extracts the values matched case-insensitively
	// against the search term.
	SearchFields func(T) []string
	// FilterValues extracts the attributes compared against active
	// filter selections. A record is visible when any of its values
	// matches any active filter.
	FilterValues func(T) []string
	// Validate reports per-field problems with a candidate record.
	Validate func(T) map[string]string
	// AssignID stamps a fresh identifier derived from seq onto a record.
	// The sequence is monotonically increasing, so identifiers stay
	// unique across add/delete cycles.
	AssignID func(T, int) T
}

// Collection is an ordered in-memory record set with the search, filter
// and mutation operations shared by every console screen. Insertion
// order is preserved; no sorting is applied.
type Collection[T Record] struct {
	mu      sync.RWMutex
	records []T
	schema  Schema[T]
	nextSeq int
}

// NewCollection creates a collection seeded with the given records. The
// identifier sequence starts past the seed so fresh identifiers never
// collide with seeded ones.
func NewCollection[T Record](schema Schema[T], seed []T) *Collection[T] {
	c := &Collection[T]{
		records: append([]T(nil), seed...),
		schema:  schema,
		nextSeq: len(seed) + 1,
	}
	return c
}

// List returns a copy of all records in insertion order.
func (c *Collection[T]) List() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]T(nil), c.records...)
}

// Len returns the number of records held.
func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.records)
}

// Get returns the record with the given identifier.
func (c *Collection[T]) Get(id string) (T, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, rec := range c.records {
		if rec.RecordID() == id {
			return rec, nil
		}
	}
	var zero T
	return zero, ErrNotFound
}

// Visible returns the records matching the search term and active
// filters. The term matches case-insensitively as a substring of any
// searchable field; filters are disjunctive among themselves and
// conjunctive with the search. An empty filter set admits everything.
func (c *Collection[T]) Visible(term string, filters []string) []T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	term = strings.ToLower(term)
	var out []T
	for _, rec := range c.records {
		if !c.matchesSearch(rec, term) {
			continue
		}
		if !c.matchesFilters(rec, filters) {
			continue
		}
		out = append(out, rec)
	}
	return out
}

func (c *Collection[T]) matchesSearch(rec T, term string) bool {
	if term == "" || c.schema.SearchFields == nil {
		return true
	}
	for _, field := range c.schema.SearchFields(rec) {
		if strings.Contains(strings.ToLower(field), term) {
			return true
		}
	}
	return false
}

func (c *Collection[T]) matchesFilters(rec T, filters []string) bool {
	if len(filters) == 0 || c.schema.FilterValues == nil {
		return true
	}
	for _, value := range c.schema.FilterValues(rec) {
		for _, filter := range filters {
			if value == filter {
				return true
			}
		}
	}
	return false
}

// Add validates the record, assigns it a fresh identifier, and appends
// it. On validation failure the collection is left unchanged and the
// returned error carries the offending fields.
func (c *Collection[T]) Add(rec T) (T, error) {
	var zero T
	if err := c.validate(rec); err != nil {
		return zero, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.schema.AssignID != nil {
		rec = c.schema.AssignID(rec, c.nextSeq)
		c.nextSeq++
	}
	c.records = append(c.records, rec)
	return rec, nil
}

// Update replaces the record with the given identifier by the result of
// merge applied to the current value. The identifier is preserved. The
// merged record is validated before it replaces the original.
func (c *Collection[T]) Update(id string, merge func(T) T) (T, error) {
	var zero T

	c.mu.Lock()
	defer c.mu.Unlock()
	for i, rec := range c.records {
		if rec.RecordID() != id {
			continue
		}
		merged := merge(rec)
		if err := c.validate(merged); err != nil {
			return zero, err
		}
		c.records[i] = merged
		return merged, nil
	}
	return zero, ErrNotFound
}

// Delete removes the record with the given identifier. Removing an
// absent identifier is a no-op; the return reports whether a record was
// actually removed.
func (c *Collection[T]) Delete(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, rec := range c.records {
		if rec.RecordID() == id {
			c.records = append(c.records[:i], c.records[i+1:]...)
			return true
		}
	}
	return false
}

func (c *Collection[T]) validate(rec T) error {
	if c.schema.Validate == nil {
		return nil
	}
	if fields := c.schema.Validate(rec); len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}
