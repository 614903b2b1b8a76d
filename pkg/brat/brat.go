// Package brat parses standoff ("brat") annotated corpora into typed,
// cross-referenced document graphs. A corpus pairs every document's raw
// text file with an annotation file of line-based entity, relation,
// equivalence, event, and reference annotations; the parser links them
// into immutable Document records.
package brat

import (
	"github.com/go-playground/validator"

	"github.com/corpustools/standoff/pkg/corpus"
)

// Kind identifies one standoff annotation line kind.
type Kind string

const (
	KindEntity      Kind = "entity"
	KindRelation    Kind = "relation"
	KindEquivalence Kind = "equivalence"
	KindEvent       Kind = "event"
	KindReference   Kind = "reference"
	KindAttribute   Kind = "attribute"
)

// ErrorMode selects how structural and grammar violations propagate.
type ErrorMode string

const (
	// ErrorModeStrict aborts the whole corpus parse on the first violation.
	ErrorModeStrict ErrorMode = "strict"
	// ErrorModeLenient drops the offending document (whole, never partial)
	// and keeps parsing the rest of the corpus. Documents with a missing
	// paired file are likewise skipped.
	ErrorModeLenient ErrorMode = "lenient"
)

// requiredExts are the paired files that make up one corpus document.
var requiredExts = []string{".ann", ".txt"}

// Parser parses standoff corpora. It is stateless across invocations
// beyond its construction-time configuration, so one Parser may be shared
// freely between goroutines.
//
// A Parser should be created using NewParser.
type Parser struct {
	source       corpus.Source
	ignored      map[Kind]bool
	mode         ErrorMode
	decoder      *textDecoder
	parallelDocs int
}

// NewParserParams defines the configuration parameters for creating a new
// Parser.
//
// Source supplies the corpus files; it defaults to the local filesystem.
// IgnoredKinds lists annotation line kinds to skip silently.
// ErrorMode selects strict or lenient violation handling (default strict).
// TextEncoding names the IANA charset used to decode both the text file
// and the annotation file (default utf-8).
// ParallelDocs bounds how many documents are parsed concurrently.
type NewParserParams struct {
	Source       corpus.Source
	IgnoredKinds []Kind    `validate:"dive,oneof=entity relation equivalence event reference attribute"`
	ErrorMode    ErrorMode `validate:"omitempty,oneof=strict lenient"`
	TextEncoding string
	ParallelDocs int `validate:"omitempty,min=1"`
}

// NewParser creates and returns a new Parser configured with the provided
// parameters. Unknown ignore kinds, unknown error modes, and unresolvable
// text encodings are ConfigErrors.
func NewParser(params NewParserParams) (*Parser, error) {
	if err := validator.New().Struct(params); err != nil {
		return nil, &ConfigError{Reason: err.Error()}
	}

	ignored := make(map[Kind]bool, len(params.IgnoredKinds))
	for _, kind := range params.IgnoredKinds {
		ignored[kind] = true
	}

	mode := params.ErrorMode
	if mode == "" {
		mode = ErrorModeStrict
	}

	decoder, err := newTextDecoder(params.TextEncoding)
	if err != nil {
		return nil, &ConfigError{Reason: err.Error()}
	}

	source := params.Source
	if source == nil {
		source = corpus.NewDiskSource()
	}

	parallelDocs := params.ParallelDocs
	if parallelDocs <= 0 {
		parallelDocs = 1
	}

	return &Parser{
		source:       source,
		ignored:      ignored,
		mode:         mode,
		decoder:      decoder,
		parallelDocs: parallelDocs,
	}, nil
}

// lineKind maps a line's id prefix to its annotation kind. Unrecognized
// prefixes return the empty Kind.
func lineKind(line string) Kind {
	switch line[0] {
	case 'T':
		return KindEntity
	case 'R':
		return KindRelation
	case '*':
		return KindEquivalence
	case 'E':
		return KindEvent
	case 'N':
		return KindReference
	case 'A', 'M':
		return KindAttribute
	default:
		return ""
	}
}
