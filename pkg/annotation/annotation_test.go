package annotation

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestFormatSpans(t *testing.T) {
	tests := []struct {
		name  string
		spans []Span
		want  string
	}{
		{
			name:  "empty",
			spans: nil,
			want:  "",
		},
		{
			name:  "single span",
			spans: []Span{{Start: 0, End: 7}},
			want:  "0 7",
		},
		{
			name:  "discontinuous mention",
			spans: []Span{{Start: 10, End: 13}, {Start: 20, End: 25}},
			want:  "10 13;20 25",
		},
		{
			name:  "order sensitive",
			spans: []Span{{Start: 20, End: 25}, {Start: 10, End: 13}},
			want:  "20 25;10 13",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatSpans(tt.spans)
			if got != tt.want {
				t.Errorf("FormatSpans() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEntityStartEnd(t *testing.T) {
	contiguous := &Entity{ID: "T1", Spans: []Span{{Start: 4, End: 9}}}

	start, err := contiguous.Start()
	if err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	if start != 4 {
		t.Errorf("Start() = %d, want 4", start)
	}

	end, err := contiguous.End()
	if err != nil {
		t.Fatalf("End() error = %v", err)
	}
	if end != 9 {
		t.Errorf("End() = %d, want 9", end)
	}

	split := &Entity{ID: "T2", Spans: []Span{{Start: 0, End: 3}, {Start: 8, End: 12}}}
	if _, err := split.Start(); !errors.Is(err, ErrDiscontinuous) {
		t.Errorf("Start() error = %v, want ErrDiscontinuous", err)
	}
	if _, err := split.End(); !errors.Is(err, ErrDiscontinuous) {
		t.Errorf("End() error = %v, want ErrDiscontinuous", err)
	}
}

func TestEventArgumentMarshalJSON(t *testing.T) {
	entity := &Entity{ID: "T1", Spans: []Span{{Start: 0, End: 3}}}
	event := &Event{ID: "E1", Trigger: entity}

	tests := []struct {
		name string
		arg  EventArgument
		want string
	}{
		{
			name: "entity target",
			arg:  EventArgument{Role: "Theme", Target: entity},
			want: `{"role":"Theme","kind":"entity","target":"T1"}`,
		},
		{
			name: "event target",
			arg:  EventArgument{Role: "Cause", Target: event},
			want: `{"role":"Cause","kind":"event","target":"E1"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := json.Marshal(tt.arg)
			if err != nil {
				t.Fatalf("Marshal() error = %v", err)
			}
			if string(got) != tt.want {
				t.Errorf("Marshal() = %s, want %s", got, tt.want)
			}
		})
	}
}
