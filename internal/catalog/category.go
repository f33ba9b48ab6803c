package catalog

import (
	"errors"
	"fmt"
	"strings"
)

// CategoryID identifies a historical age. All is the wildcard that selects
// every event.
type CategoryID string

const (
	All            CategoryID = "all"
	Prehistory     CategoryID = "prehistory"
	AncientHistory CategoryID = "ancient-history"
	MiddleAges     CategoryID = "middle-ages"
	EarlyModern    CategoryID = "early-modern"
	Contemporary   CategoryID = "contemporary"
)

// ErrUnknownCategory is returned when a category key is not part of the
// fixed enumeration.
var ErrUnknownCategory = errors.New("unknown category")

var categoryOrder = []CategoryID{
	All,
	Prehistory,
	AncientHistory,
	MiddleAges,
	EarlyModern,
	Contemporary,
}

var categoryLabels = map[CategoryID]string{
	All:            "All",
	Prehistory:     "Prehistory",
	AncientHistory: "Ancient History",
	MiddleAges:     "Middle Ages",
	EarlyModern:    "Early Modern",
	Contemporary:   "Contemporary",
}

// Categories returns the fixed tab order, starting with All.
func Categories() []CategoryID {
	dup := make([]CategoryID, len(categoryOrder))
	copy(dup, categoryOrder)
	return dup
}

// Label returns the display label for the category.
func (c CategoryID) Label() string {
	if label, ok := categoryLabels[c]; ok {
		return label
	}
	return string(c)
}

// Index returns the position of the category in the tab order or -1.
func (c CategoryID) Index() int {
	for i, id := range categoryOrder {
		if id == c {
			return i
		}
	}
	return -1
}

// Valid reports whether the category belongs to the enumeration.
func (c CategoryID) Valid() bool {
	return c.Index() >= 0
}

// ParseCategory accepts a category key or its display label, case-insensitively.
func ParseCategory(value string) (CategoryID, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return All, nil
	}
	for _, id := range categoryOrder {
		if strings.EqualFold(string(id), trimmed) || strings.EqualFold(id.Label(), trimmed) {
			return id, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCategory, value)
}
