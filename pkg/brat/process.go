package brat

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/corpustools/standoff/pkg/annotation"
	"github.com/corpustools/standoff/pkg/corpus"
	"github.com/corpustools/standoff/pkg/logger"
)

// Parse parses every paired document under root and returns the documents
// sorted ascending by id. Documents are independent of each other, so they
// are parsed concurrently up to the configured bound; in lenient mode a
// failing document is dropped whole and the rest of the corpus still
// parses.
func (p *Parser) Parse(ctx context.Context, root string) ([]*annotation.Document, error) {
	groups, err := p.source.Groups(ctx, root, requiredExts)
	if err != nil {
		return nil, fmt.Errorf("failed to enumerate corpus files: %w", err)
	}

	logger.Debug("[Corpus] Parsing", "root", root, "documents", len(groups))

	documents := make([]*annotation.Document, 0, len(groups))
	mu := sync.Mutex{}

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(p.parallelDocs)
	for _, group := range groups {
		grp := group
		g.Go(func() error {
			select {
			case <-gCtx.Done():
				return nil
			default:
				document, err := p.parseDocument(gCtx, grp)
				if err != nil {
					if p.mode == ErrorModeLenient {
						logger.Warn("[Corpus] Skipping document", "key", grp.Key, "err", err)
						return nil
					}
					return err
				}

				mu.Lock()
				documents = append(documents, document)
				mu.Unlock()
				return nil
			}
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(documents, func(i, j int) bool {
		return documents[i].ID < documents[j].ID
	})
	return documents, nil
}

// parseDocument assembles one Document from its paired annotation and text
// files. Construction is all-or-nothing: any violation surfaces as an
// error and no partial document escapes.
func (p *Parser) parseDocument(ctx context.Context, group corpus.Group) (*annotation.Document, error) {
	var missing []string
	for _, ext := range requiredExts {
		if _, ok := group.Files[ext]; !ok {
			missing = append(missing, ext)
		}
	}
	if len(missing) > 0 {
		return nil, &MissingPairError{Key: group.Key, Missing: missing}
	}

	rawText, err := p.source.ReadFile(ctx, group.Files[".txt"])
	if err != nil {
		return nil, fmt.Errorf("failed to read text file for %s: %w", group.Key, err)
	}
	text, err := p.decoder.decode(rawText)
	if err != nil {
		return nil, fmt.Errorf("failed to decode text file for %s: %w", group.Key, err)
	}

	rawAnn, err := p.source.ReadFile(ctx, group.Files[".ann"])
	if err != nil {
		return nil, fmt.Errorf("failed to read annotation file for %s: %w", group.Key, err)
	}
	ann, err := p.decoder.decode(rawAnn)
	if err != nil {
		return nil, fmt.Errorf("failed to decode annotation file for %s: %w", group.Key, err)
	}

	matches, err := p.parseAnnotations(ann)
	if err != nil {
		return nil, err
	}

	table, entities, err := resolveEntities(matches.entities, matches.references)
	if err != nil {
		return nil, err
	}
	relations, err := resolveRelations(matches.relations, table)
	if err != nil {
		return nil, err
	}
	events, err := resolveEvents(matches.events, table)
	if err != nil {
		return nil, err
	}

	logger.Debug("[Corpus] Parsed document",
		"key", group.Key,
		"entities", len(entities),
		"relations", len(relations),
		"events", len(events),
	)

	return &annotation.Document{
		Text:      text,
		Entities:  entities,
		Relations: relations,
		Events:    events,
		ID:        group.Key,
	}, nil
}
