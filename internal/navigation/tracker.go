// Package navigation decides which page section the nav bar highlights.
package navigation

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// DefaultHeaderOffset is the height of the fixed header in pixels.
const DefaultHeaderOffset = 100

var ErrInvalidLayout = errors.New("navigation: invalid layout")

// Section is the vertical span [Top, Bottom) of one page section.
type Section struct {
	ID     string
	Top    float64
	Bottom float64
}

func (s Section) contains(y float64) bool {
	return s.Top <= y && y < s.Bottom
}

// Tracker resolves a scroll offset to the active section.
type Tracker struct {
	sections []Section
	bias     float64
}

// NewTracker returns a Tracker over sections in document order. bias is subtracted
// from every offset before lookup so a section counts as active once its top has
// passed under the fixed header.
func NewTracker(sections []Section, bias float64) *Tracker {
	return &Tracker{sections: append([]Section(nil), sections...), bias: bias}
}

// Sections returns a copy of the layout.
func (t *Tracker) Sections() []Section {
	return append([]Section(nil), t.sections...)
}

// Active returns the first section containing offset-bias. ok is false when no
// section does.
func (t *Tracker) Active(offset float64) (id string, ok bool) {
	y := offset - t.bias
	for _, s := range t.sections {
		if s.contains(y) {
			return s.ID, true
		}
	}
	return "", false
}

// ParseLayout reads comma separated id:top:bottom triples.
func ParseLayout(raw string) ([]Section, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	parts := strings.Split(raw, ",")
	sections := make([]Section, 0, len(parts))
	for _, part := range parts {
		fields := strings.Split(strings.TrimSpace(part), ":")
		if len(fields) != 3 || fields[0] == "" {
			return nil, fmt.Errorf("%w: %q is not id:top:bottom", ErrInvalidLayout, part)
		}
		top, err := parseCoord(fields[1])
		if err != nil {
			return nil, fmt.Errorf("%w: top of %q: %w", ErrInvalidLayout, fields[0], err)
		}
		bottom, err := parseCoord(fields[2])
		if err != nil {
			return nil, fmt.Errorf("%w: bottom of %q: %w", ErrInvalidLayout, fields[0], err)
		}
		if top < 0 || !(bottom > top) {
			return nil, fmt.Errorf("%w: span of %q is [%g, %g)", ErrInvalidLayout, fields[0], top, bottom)
		}
		sections = append(sections, Section{ID: fields[0], Top: top, Bottom: bottom})
	}
	return sections, nil
}

// parseCoord reads one finite pixel coordinate.
func parseCoord(raw string) (float64, error) {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%q is not a finite number", raw)
	}
	return v, nil
}

// FormatLayout is the inverse of ParseLayout.
func FormatLayout(sections []Section) string {
	parts := make([]string, len(sections))
	for i, s := range sections {
		parts[i] = s.ID + ":" + strconv.FormatFloat(s.Top, 'f', -1, 64) + ":" + strconv.FormatFloat(s.Bottom, 'f', -1, 64)
	}
	return strings.Join(parts, ",")
}
