package brat

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/corpustools/standoff/pkg/annotation"
)

// fileMatches accumulates the raw matches of one annotation file, in file
// order. References are keyed by entity id because a reference line may
// appear before or after its entity's definition line; they are attached
// when entities are materialized.
type fileMatches struct {
	entities   []entityMatch
	relations  []relationMatch
	events     []eventMatch
	references map[string][]annotation.Reference
}

// parseAnnotations reads one annotation file line by line and dispatches
// each line to its kind's matcher. Blank lines and comment lines are
// skipped, as are lines of any configured ignored kind. Equivalence lines
// expand immediately into relation matches.
func (p *Parser) parseAnnotations(content string) (*fileMatches, error) {
	matches := &fileMatches{
		references: make(map[string][]annotation.Reference),
	}

	scanner := bufio.NewScanner(strings.NewReader(content))
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), " \t\r")
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		kind := lineKind(line)
		if p.ignored[kind] {
			continue
		}

		switch kind {
		case KindEntity:
			match, err := matchEntity(line)
			if err != nil {
				return nil, err
			}
			matches.entities = append(matches.entities, *match)
		case KindRelation:
			match, err := matchRelation(line)
			if err != nil {
				return nil, err
			}
			matches.relations = append(matches.relations, *match)
		case KindEquivalence:
			expanded, err := matchEquivalence(line)
			if err != nil {
				return nil, err
			}
			matches.relations = append(matches.relations, expanded...)
		case KindEvent:
			match, err := matchEvent(line)
			if err != nil {
				return nil, err
			}
			matches.events = append(matches.events, *match)
		case KindReference:
			match, err := matchReference(line)
			if err != nil {
				return nil, err
			}
			matches.references[match.entityID] = append(matches.references[match.entityID], annotation.Reference{
				ResourceID: match.resourceID,
				EntryID:    match.entryID,
				Entry:      match.entry,
				ID:         match.id,
			})
		default:
			// Attribute lines and unrecognized prefixes.
			return nil, &GrammarError{Line: line}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan annotation file: %w", err)
	}

	return matches, nil
}
