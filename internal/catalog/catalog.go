package catalog

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"
)

//go:embed data/timeline.yaml
var defaultData []byte

// DefaultSource names the embedded data set in traces and errors.
const DefaultSource = "embedded:timeline.yaml"

// Event is a single entry on the timeline. Events are never mutated after
// loading.
type Event struct {
	Category    CategoryID `yaml:"age" json:"age"`
	Year        int        `yaml:"year" json:"year"`
	Title       string     `yaml:"title" json:"title"`
	Description string     `yaml:"description" json:"description"`
	Image       string     `yaml:"image,omitempty" json:"image,omitempty"`
}

// HasImage reports whether the event references a background image.
func (e Event) HasImage() bool {
	return strings.TrimSpace(e.Image) != ""
}

// YearLabel renders the year, using a BC suffix for negative years.
func (e Event) YearLabel() string {
	if e.Year < 0 {
		return fmt.Sprintf("%d BC", -e.Year)
	}
	return fmt.Sprintf("%d", e.Year)
}

// Catalog is an ordered, immutable event list.
type Catalog struct {
	events  []Event
	source  string
	baseDir string
}

// New validates events and wraps them in a Catalog.
func New(events []Event) (*Catalog, error) {
	if err := Validate(events); err != nil {
		return nil, err
	}
	return &Catalog{events: cloneEvents(events)}, nil
}

// Events returns a copy of the events in catalog order.
func (c *Catalog) Events() []Event {
	if c == nil {
		return nil
	}
	return cloneEvents(c.events)
}

// Len returns the number of events.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.events)
}

// Source describes where the catalog was loaded from.
func (c *Catalog) Source() string {
	if c == nil {
		return ""
	}
	return c.source
}

// BaseDir is the directory relative image paths are resolved against.
func (c *Catalog) BaseDir() string {
	if c == nil {
		return ""
	}
	return c.baseDir
}

// Load reads a catalog file. An empty path loads the embedded data set.
func Load(path string) (*Catalog, error) {
	if strings.TrimSpace(path) == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	events, err := Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode catalog %s: %w", path, err)
	}
	cat, err := New(events)
	if err != nil {
		return nil, fmt.Errorf("validate catalog %s: %w", path, err)
	}
	cat.source = path
	if abs, err := filepath.Abs(filepath.Dir(path)); err == nil {
		cat.baseDir = abs
	} else {
		cat.baseDir = filepath.Dir(path)
	}
	return cat, nil
}

// Default returns the embedded data set.
func Default() (*Catalog, error) {
	events, err := Decode(bytes.NewReader(defaultData))
	if err != nil {
		return nil, fmt.Errorf("decode embedded catalog: %w", err)
	}
	cat, err := New(events)
	if err != nil {
		return nil, fmt.Errorf("validate embedded catalog: %w", err)
	}
	cat.source = DefaultSource
	return cat, nil
}

// Decode parses a YAML or JSON document holding either a list of events or a
// mapping with an "events" list.
func Decode(r io.Reader) ([]Event, error) {
	var root yaml.Node
	if err := yaml.NewDecoder(r).Decode(&root); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, err
	}
	node := &root
	if node.Kind == yaml.DocumentNode && len(node.Content) > 0 {
		node = node.Content[0]
	}
	switch node.Kind {
	case yaml.SequenceNode:
		var events []Event
		if err := node.Decode(&events); err != nil {
			return nil, err
		}
		return events, nil
	case yaml.MappingNode:
		var doc struct {
			Events []Event `yaml:"events"`
		}
		if err := node.Decode(&doc); err != nil {
			return nil, err
		}
		return doc.Events, nil
	default:
		return nil, fmt.Errorf("unexpected document shape at line %d", node.Line)
	}
}

// Validate checks every event and reports all problems at once.
func Validate(events []Event) error {
	var err error
	for i, event := range events {
		switch {
		case event.Category == All:
			err = multierr.Append(err, fmt.Errorf("event %d (%q): category %q is reserved for filtering", i, event.Title, All))
		case !event.Category.Valid():
			err = multierr.Append(err, fmt.Errorf("event %d (%q): %w: %q", i, event.Title, ErrUnknownCategory, event.Category))
		}
		if strings.TrimSpace(event.Title) == "" {
			err = multierr.Append(err, fmt.Errorf("event %d: missing title", i))
		}
	}
	return err
}

func cloneEvents(events []Event) []Event {
	if events == nil {
		return nil
	}
	dup := make([]Event, len(events))
	copy(dup, events)
	return dup
}
