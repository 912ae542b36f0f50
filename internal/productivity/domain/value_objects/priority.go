package value_objects

import (
	"errors"
	"strings"
)

// Priority represents task urgency level.
type Priority int

// The zero value is deliberately not a valid priority so that an unset
// field can be told apart from an explicit choice.
const (
	PriorityLow Priority = iota + 1
	PriorityMedium
	PriorityHigh
)

// DefaultPriority is preselected for new tasks.
const DefaultPriority = PriorityMedium

var (
	ErrInvalidPriority = errors.New("invalid priority value")
)

var priorityNames = map[Priority]string{
	PriorityLow:    "low",
	PriorityMedium: "medium",
	PriorityHigh:   "high",
}

var priorityValues = map[string]Priority{
	"low":    PriorityLow,
	"medium": PriorityMedium,
	"high":   PriorityHigh,
}

// Priorities returns every valid priority, lowest first.
func Priorities() []Priority {
	return []Priority{PriorityLow, PriorityMedium, PriorityHigh}
}

// ParsePriority creates a Priority from a string.
func ParsePriority(s string) (Priority, error) {
	p, ok := priorityValues[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return 0, ErrInvalidPriority
	}
	return p, nil
}

// String returns the string representation of the priority.
func (p Priority) String() string {
	if name, ok := priorityNames[p]; ok {
		return name
	}
	return "unknown"
}

// IsValid returns true if the priority is a valid value.
func (p Priority) IsValid() bool {
	_, ok := priorityNames[p]
	return ok
}

// Next cycles to the following priority, wrapping from high back to low.
func (p Priority) Next() Priority {
	if !p.IsValid() || p == PriorityHigh {
		return PriorityLow
	}
	return p + 1
}

// Prev cycles to the preceding priority, wrapping from low back to high.
func (p Priority) Prev() Priority {
	if !p.IsValid() || p == PriorityLow {
		return PriorityHigh
	}
	return p - 1
}

// MarshalText implements encoding.TextMarshaler.
func (p Priority) MarshalText() ([]byte, error) {
	if !p.IsValid() {
		return nil, ErrInvalidPriority
	}
	return []byte(p.String()), nil
}
