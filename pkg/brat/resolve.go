package brat

import (
	"sort"
	"strings"

	"github.com/corpustools/standoff/pkg/annotation"
)

// resolveEntities materializes the final entity table in file order,
// attaching the references accumulated for each entity id. Two entities
// owning an identical span sequence (same pairs, same order) are a
// structural error; the entity encountered first stays the canonical owner.
func resolveEntities(matches []entityMatch, references map[string][]annotation.Reference) (map[string]*annotation.Entity, []*annotation.Entity, error) {
	table := make(map[string]*annotation.Entity, len(matches))
	ordered := make([]*annotation.Entity, 0, len(matches))
	owners := make(map[string]string, len(matches))

	for _, match := range matches {
		entity := &annotation.Entity{
			Mention:    match.mention,
			Type:       match.typeTag,
			Spans:      match.spans,
			References: references[match.id],
			ID:         match.id,
		}

		key := annotation.FormatSpans(entity.Spans)
		if first, taken := owners[key]; taken {
			return nil, nil, &DuplicateSpanError{FirstID: first, SecondID: entity.ID}
		}
		owners[key] = entity.ID

		table[entity.ID] = entity
		ordered = append(ordered, entity)
	}

	return table, ordered, nil
}

// resolveRelations links relation matches against the entity table.
func resolveRelations(matches []relationMatch, entities map[string]*annotation.Entity) ([]*annotation.Relation, error) {
	relations := make([]*annotation.Relation, 0, len(matches))
	for _, match := range matches {
		arg1 := entities[match.arg1]
		arg2 := entities[match.arg2]
		if arg1 == nil || arg2 == nil {
			missing := match.arg1
			if arg1 != nil {
				missing = match.arg2
			}
			return nil, &MissingReferenceError{ID: missing}
		}

		relations = append(relations, &annotation.Relation{
			Type: match.typeTag,
			Arg1: arg1,
			Arg2: arg2,
			ID:   match.id,
		})
	}
	return relations, nil
}

// resolveEvents builds events in dependency order. Events form a directed
// graph: an edge runs from an event to every event one of its arguments
// targets, so an event can only be built after the events it argues.
// Entity arguments never constrain the order; entities are fully resolved
// before the first event is built.
func resolveEvents(matches []eventMatch, entities map[string]*annotation.Entity) ([]*annotation.Event, error) {
	index := make(map[string]eventMatch, len(matches))
	for _, match := range matches {
		index[match.id] = match
	}

	// Remaining unresolved event-dependencies per event. An event argument
	// naming an unknown event id can never resolve, so it fails here
	// instead of deadlocking the ordering loop below.
	deps := make(map[string]map[string]bool, len(matches))
	for _, match := range matches {
		deps[match.id] = make(map[string]bool)
	}
	for _, match := range matches {
		for _, arg := range match.args {
			if !strings.HasPrefix(arg.targetID, "E") {
				continue
			}
			if _, known := index[arg.targetID]; !known {
				return nil, &MissingReferenceError{ID: arg.targetID}
			}
			deps[match.id][arg.targetID] = true
		}
	}

	// Kahn's algorithm. Each round takes every event with an empty
	// dependency set, in ascending id order for determinism, and removes
	// it from the remaining events' dependency sets. If a round makes no
	// progress while events remain, the graph has a cycle.
	order := make([]string, 0, len(deps))
	for len(deps) > 0 {
		ready := make([]string, 0, len(deps))
		for id, pending := range deps {
			if len(pending) == 0 {
				ready = append(ready, id)
			}
		}
		if len(ready) == 0 {
			remaining := make([]string, 0, len(deps))
			for id := range deps {
				remaining = append(remaining, id)
			}
			sort.Strings(remaining)
			return nil, &DependencyCycleError{EventIDs: remaining}
		}

		sort.Strings(ready)
		for _, id := range ready {
			order = append(order, id)
			delete(deps, id)
		}
		for _, pending := range deps {
			for _, id := range ready {
				delete(pending, id)
			}
		}
	}

	built := make(map[string]*annotation.Event, len(order))
	for _, id := range order {
		match := index[id]

		trigger := entities[match.trigger]
		if trigger == nil {
			return nil, &MissingReferenceError{ID: match.trigger}
		}

		event := &annotation.Event{
			Type:    match.typeTag,
			Trigger: trigger,
			ID:      match.id,
		}
		for _, arg := range match.args {
			var target annotation.ArgumentTarget
			if strings.HasPrefix(arg.targetID, "T") {
				entity := entities[arg.targetID]
				if entity == nil {
					return nil, &MissingReferenceError{ID: arg.targetID}
				}
				target = entity
			} else {
				// Guaranteed built by the topological order.
				dep := built[arg.targetID]
				if dep == nil {
					return nil, &MissingReferenceError{ID: arg.targetID}
				}
				target = dep
			}
			event.Arguments = append(event.Arguments, annotation.EventArgument{
				Role:   arg.role,
				Target: target,
			})
		}
		built[id] = event
	}

	// Emit in annotation-file order so callers never observe the build
	// order.
	events := make([]*annotation.Event, 0, len(matches))
	for _, match := range matches {
		events = append(events, built[match.id])
	}
	return events, nil
}
