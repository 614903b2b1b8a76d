package brat

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/corpustools/standoff/pkg/annotation"
)

// One matcher per annotation line kind. The patterns mirror the standoff
// format: a one-letter-plus-digits id, a tab, then kind-specific fields.
var (
	reEntity      = regexp.MustCompile(`^(T\d+)\t([^ ]+) (\d+) (\d+)((?:;\d+ \d+)*)\t(.+)`)
	reRelation    = regexp.MustCompile(`^(R\d+)\t([^ ]+) Arg[12]:(T\d+) Arg[12]:(T\d+)`)
	reEquivalence = regexp.MustCompile(`^\*\tEquiv((?: T\d+)+)`)
	reEvent       = regexp.MustCompile(`^(E\d+)\t([^:]+):(T\d+)((?: [^ :]+:[TE]\d+)+)?`)
	reReference   = regexp.MustCompile(`^(N\d+)\tReference (T\d+) ([^:]+):([^\t]+)\t(.+)`)
)

type entityMatch struct {
	id      string
	typeTag string
	spans   []annotation.Span
	mention string
}

type relationMatch struct {
	id      string
	typeTag string
	arg1    string
	arg2    string
}

type eventArgMatch struct {
	role     string
	targetID string
}

type eventMatch struct {
	id      string
	typeTag string
	trigger string
	args    []eventArgMatch
}

type referenceMatch struct {
	id         string
	entityID   string
	resourceID string
	entryID    string
	entry      string
}

func matchEntity(line string) (*entityMatch, error) {
	m := reEntity.FindStringSubmatch(line)
	if m == nil {
		return nil, &GrammarError{Line: line}
	}

	start, _ := strconv.Atoi(m[3])
	end, _ := strconv.Atoi(m[4])
	spans := []annotation.Span{{Start: start, End: end}}
	for _, pair := range strings.Split(m[5], ";") {
		if pair == "" {
			continue
		}
		fields := strings.SplitN(pair, " ", 2)
		start, _ := strconv.Atoi(fields[0])
		end, _ := strconv.Atoi(fields[1])
		spans = append(spans, annotation.Span{Start: start, End: end})
	}

	return &entityMatch{
		id:      m[1],
		typeTag: m[2],
		spans:   spans,
		mention: m[6],
	}, nil
}

func matchRelation(line string) (*relationMatch, error) {
	m := reRelation.FindStringSubmatch(line)
	if m == nil {
		return nil, &GrammarError{Line: line}
	}
	return &relationMatch{
		id:      m[1],
		typeTag: m[2],
		arg1:    m[3],
		arg2:    m[4],
	}, nil
}

// matchEquivalence expands one equivalence-set line into the pairwise
// combination of its entity ids: n listed entities become C(n,2) synthetic
// Equiv relations with deterministic ids.
func matchEquivalence(line string) ([]relationMatch, error) {
	m := reEquivalence.FindStringSubmatch(line)
	if m == nil {
		return nil, &GrammarError{Line: line}
	}

	ids := strings.Fields(m[1])
	relations := make([]relationMatch, 0, len(ids)*(len(ids)-1)/2)
	for i, arg1 := range ids {
		for _, arg2 := range ids[i+1:] {
			relations = append(relations, relationMatch{
				id:      fmt.Sprintf("Equiv:%s-%s", arg1, arg2),
				typeTag: "Equiv",
				arg1:    arg1,
				arg2:    arg2,
			})
		}
	}
	return relations, nil
}

func matchEvent(line string) (*eventMatch, error) {
	m := reEvent.FindStringSubmatch(line)
	if m == nil {
		return nil, &GrammarError{Line: line}
	}

	var args []eventArgMatch
	for _, field := range strings.Fields(m[4]) {
		role, targetID, _ := strings.Cut(field, ":")
		args = append(args, eventArgMatch{role: role, targetID: targetID})
	}

	return &eventMatch{
		id:      m[1],
		typeTag: m[2],
		trigger: m[3],
		args:    args,
	}, nil
}

func matchReference(line string) (*referenceMatch, error) {
	m := reReference.FindStringSubmatch(line)
	if m == nil {
		return nil, &GrammarError{Line: line}
	}
	return &referenceMatch{
		id:         m[1],
		entityID:   m[2],
		resourceID: m[3],
		entryID:    m[4],
		entry:      m[5],
	}, nil
}
