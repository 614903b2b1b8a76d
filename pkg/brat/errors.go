package brat

import (
	"fmt"
	"strings"
)

// ConfigError reports an invalid parser configuration. It is always fatal
// and precedes any parsing.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string {
	return "standoff: invalid parser configuration: " + e.Reason
}

// GrammarError reports an annotation line that does not match its kind's
// grammar, or whose kind is unrecognized or unsupported.
type GrammarError struct {
	Line string
}

func (e *GrammarError) Error() string {
	return fmt.Sprintf("standoff: invalid annotation line: %q", e.Line)
}

// MissingReferenceError reports a relation argument, event trigger, or
// event argument whose id does not resolve to a known entity or event.
type MissingReferenceError struct {
	ID string
}

func (e *MissingReferenceError) Error() string {
	return "standoff: unresolved reference: " + e.ID
}

// DuplicateSpanError reports two entities in the same document that own an
// identical span sequence. FirstID is the canonical owner, the entity
// encountered first.
type DuplicateSpanError struct {
	FirstID  string
	SecondID string
}

func (e *DuplicateSpanError) Error() string {
	return fmt.Sprintf("standoff: identical spans for entities %s and %s", e.FirstID, e.SecondID)
}

// DependencyCycleError reports a cycle in the event argument graph. The
// listed events depend on each other and can never be built.
type DependencyCycleError struct {
	EventIDs []string
}

func (e *DependencyCycleError) Error() string {
	return "standoff: dependency cycle among events " + strings.Join(e.EventIDs, ", ")
}

// MissingPairError reports a document key that lacks one of the required
// paired files.
type MissingPairError struct {
	Key     string
	Missing []string
}

func (e *MissingPairError) Error() string {
	return fmt.Sprintf("standoff: document %s is missing paired %s file(s)", e.Key, strings.Join(e.Missing, ", "))
}
