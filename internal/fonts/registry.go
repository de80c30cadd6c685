package fonts

import (
	"sync"

	"golang.org/x/image/font/sfnt"
)

// Style identifies a face within a font family.
type Style string

// Styles supported by the registry. Every family needs at least Regular and
// Bold registered for the section builders to work.
const (
	Regular    Style = "regular"
	Bold       Style = "bold"
	Italic     Style = "italic"
	BoldItalic Style = "bolditalic"
)

type faceKey struct {
	family string
	style  Style
}

// Face is the handle returned by Register and Resolve. It owns the raw font
// program bytes (shared read-only with the drawing backend) and the parsed
// metrics. A Face is immutable after registration.
type Face struct {
	Family string
	Style  Style
	Data   []byte

	metrics *Metrics
}

// Metrics returns the advance-width metrics for this face.
func (f *Face) Metrics() *Metrics {
	return f.metrics
}

// Registry indexes font faces by family and style. Registration happens once
// at process start; afterwards the registry is read-mostly and safe to share
// across concurrent compile calls.
type Registry struct {
	mu    sync.RWMutex
	faces map[faceKey]*Face
}

// NewRegistry creates an empty font registry.
func NewRegistry() *Registry {
	return &Registry{faces: make(map[faceKey]*Face)}
}

// Register parses the font program bytes and indexes the face under the
// given family and style. Re-registering the same family/style replaces the
// prior handle.
func (r *Registry) Register(family string, style Style, data []byte) (*Face, error) {
	parsed, err := sfnt.Parse(data)
	if err != nil {
		return nil, &ParseError{Family: family, Style: style, Cause: err}
	}
	metrics, err := newMetrics(parsed)
	if err != nil {
		return nil, &ParseError{Family: family, Style: style, Cause: err}
	}

	face := &Face{
		Family:  family,
		Style:   style,
		Data:    data,
		metrics: metrics,
	}

	r.mu.Lock()
	r.faces[faceKey{family: family, style: style}] = face
	r.mu.Unlock()

	return face, nil
}

// Resolve returns the handle for family/style, or a NotFoundError if that
// combination was never registered.
func (r *Registry) Resolve(family string, style Style) (*Face, error) {
	r.mu.RLock()
	face, ok := r.faces[faceKey{family: family, style: style}]
	r.mu.RUnlock()
	if !ok {
		return nil, &NotFoundError{Family: family, Style: style}
	}
	return face, nil
}

// MetricsFor returns the metrics for family/style, failing with a
// NotFoundError before any layout work can begin on a missing face.
func (r *Registry) MetricsFor(family string, style Style) (*Metrics, error) {
	face, err := r.Resolve(family, style)
	if err != nil {
		return nil, err
	}
	return face.metrics, nil
}

// Faces returns all registered faces in no particular order.
func (r *Registry) Faces() []*Face {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Face, 0, len(r.faces))
	for _, f := range r.faces {
		out = append(out, f)
	}
	return out
}
