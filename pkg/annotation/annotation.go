package annotation

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Span marks one contiguous character range [Start, End] into a document's
// text. An entity owns one span per mention fragment; discontinuous
// mentions own several.
type Span struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Reference links an entity to an entry in an external resource, for
// example a gene database. A reference only has meaning attached to its
// owning entity.
type Reference struct {
	ResourceID string `json:"resource_id"`
	EntryID    string `json:"entry_id"`
	Entry      string `json:"entry"`
	ID         string `json:"id,omitempty"`
}

// Entity is one annotated mention in a document. It owns its spans and
// references; relations and events only borrow it. Identity is the ID,
// unique within a document.
type Entity struct {
	Mention    string      `json:"mention"`
	Type       string      `json:"type"`
	Spans      []Span      `json:"spans"`
	References []Reference `json:"references,omitempty"`
	ID         string      `json:"id"`
}

// ErrDiscontinuous is returned by Start and End for entities whose mention
// is split across multiple spans.
var ErrDiscontinuous = errors.New("annotation: entity has a discontinuous mention")

// Start returns the start offset of a contiguous entity.
func (e *Entity) Start() (int, error) {
	if len(e.Spans) != 1 {
		return 0, ErrDiscontinuous
	}
	return e.Spans[0].Start, nil
}

// End returns the end offset of a contiguous entity.
func (e *Entity) End() (int, error) {
	if len(e.Spans) != 1 {
		return 0, ErrDiscontinuous
	}
	return e.Spans[0].End, nil
}

// FormatSpans renders a span sequence in standoff notation, "start end"
// fragments joined by semicolons. Parsing an entity line and formatting
// its spans reproduces the original offset text. The result also serves
// as the identity key for span sequences, so two entities compare equal
// exactly when their spans match pairwise in the same order.
func FormatSpans(spans []Span) string {
	var b strings.Builder
	for i, s := range spans {
		if i > 0 {
			b.WriteByte(';')
		}
		fmt.Fprintf(&b, "%d %d", s.Start, s.End)
	}
	return b.String()
}

// Relation connects two entities. Arg1 and Arg2 are borrowed from the
// document's entity collection, never owned.
type Relation struct {
	Type string  `json:"type"`
	Arg1 *Entity `json:"arg1"`
	Arg2 *Entity `json:"arg2"`
	ID   string  `json:"id"`
}

// ArgumentTarget is the closed set of records an event argument can point
// at: an Entity or another Event in the same document. The sealed marker
// keeps the variant set exhaustive for type switches.
type ArgumentTarget interface {
	TargetID() string
	sealedArgumentTarget()
}

// TargetID returns the entity id.
func (e *Entity) TargetID() string { return e.ID }

func (e *Entity) sealedArgumentTarget() {}

// TargetID returns the event id.
func (e *Event) TargetID() string { return e.ID }

func (e *Event) sealedArgumentTarget() {}

// EventArgument is one role-tagged argument of an event.
type EventArgument struct {
	Role   string
	Target ArgumentTarget
}

// MarshalJSON flattens the target to its id plus a kind tag. Nested events
// are referenced, not inlined, so serialized documents stay finite and flat.
func (a EventArgument) MarshalJSON() ([]byte, error) {
	kind := "entity"
	if _, ok := a.Target.(*Event); ok {
		kind = "event"
	}
	return json.Marshal(struct {
		Role   string `json:"role"`
		Kind   string `json:"kind"`
		Target string `json:"target"`
	}{Role: a.Role, Kind: kind, Target: a.Target.TargetID()})
}

// Event is an annotated occurrence anchored by a trigger entity. Arguments
// may point at entities or at other events, in the order they were
// annotated.
type Event struct {
	Type      string          `json:"type"`
	Trigger   *Entity         `json:"trigger"`
	Arguments []EventArgument `json:"arguments,omitempty"`
	ID        string          `json:"id"`
}

// Document is one fully parsed corpus document: the raw text exactly as
// read, plus every entity, relation, and event annotated on it. All
// records are built in one parse pass and never mutated afterwards.
type Document struct {
	Text      string      `json:"text"`
	Entities  []*Entity   `json:"entities"`
	Relations []*Relation `json:"relations"`
	Events    []*Event    `json:"events"`
	ID        string      `json:"id"`
}
