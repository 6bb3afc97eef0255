package extract

import (
	"context"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/goleak"

	"github.com/leofalp/jsonshape/core/parse"
	"github.com/leofalp/jsonshape/providers/observability"
)

type recordedCount struct {
	name  string
	attrs map[string]interface{}
}

type mockObserver struct {
	mu     sync.Mutex
	counts []recordedCount
	debugs []string
}

func (m *mockObserver) Counter(name string) observability.Counter {
	return &mockCounter{name: name, parent: m}
}

func (m *mockObserver) Debug(_ context.Context, msg string, _ ...observability.Attribute) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.debugs = append(m.debugs, msg)
}
func (m *mockObserver) Info(context.Context, string, ...observability.Attribute)  {}
func (m *mockObserver) Warn(context.Context, string, ...observability.Attribute)  {}
func (m *mockObserver) Error(context.Context, string, ...observability.Attribute) {}

type mockCounter struct {
	name   string
	parent *mockObserver
}

func (c *mockCounter) Add(_ context.Context, _ int64, attrs ...observability.Attribute) {
	c.parent.mu.Lock()
	defer c.parent.mu.Unlock()
	m := make(map[string]interface{}, len(attrs))
	for _, a := range attrs {
		m[a.Key] = a.Value
	}
	c.parent.counts = append(c.parent.counts, recordedCount{name: c.name, attrs: m})
}

func (m *mockObserver) named(name string) []map[string]interface{} {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []map[string]interface{}
	for _, c := range m.counts {
		if c.name == name {
			out = append(out, c.attrs)
		}
	}
	return out
}

func TestExtractor_ObserverRecordsOutcomes(t *testing.T) {
	obs := &mockObserver{}
	e := New(WithObserver(obs))

	e.Title(`{"title": "T"}`, "FB")
	e.Description("{broken", "FB")
	e.Tags("a, b")

	want := []map[string]interface{}{
		{observability.AttrField: "title", observability.AttrOutcome: "found"},
		{observability.AttrField: "description", observability.AttrOutcome: "fallback"},
		{observability.AttrField: "tags", observability.AttrOutcome: "plain"},
	}
	if diff := cmp.Diff(want, obs.named(observability.MetricExtractCount)); diff != "" {
		t.Errorf("extract counts mismatch (-want +got):\n%s", diff)
	}

	failures := obs.named(observability.MetricParseFailures)
	if len(failures) != 1 || failures[0][observability.AttrField] != "description" {
		t.Errorf("parse failures = %v, want one for description", failures)
	}
	if len(obs.debugs) != 1 {
		t.Errorf("debug logs = %v, want one parse failure log", obs.debugs)
	}
}

func TestExtractor_ObserverRecordsRepairs(t *testing.T) {
	obs := &mockObserver{}
	e := New(WithObserver(obs), WithRepairMode(parse.ModeTruncated))

	if got := e.Title(`{"title": "Half`, "FB"); got != "Half" {
		t.Fatalf("Title() = %q, want Half", got)
	}
	repairs := obs.named(observability.MetricRepairs)
	if len(repairs) != 1 || repairs[0][observability.AttrRepairMode] != "truncated" {
		t.Errorf("repairs = %v, want one truncated repair", repairs)
	}
}

func TestExtractor_Inspect(t *testing.T) {
	got := New().Inspect(`{"title": "T", "description": "D", "tags": "a,b"}`, "TF", "DF")
	want := Report{
		Title:       Result{Value: "T", Outcome: OutcomeFound},
		Description: Result{Value: "D", Outcome: OutcomeFound},
		Tags:        TagsResult{Tags: []string{"a", "b"}, Outcome: OutcomeFound},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Inspect() mismatch (-want +got):\n%s", diff)
	}
}

func TestExtractor_ConcurrentUse(t *testing.T) {
	defer goleak.VerifyNone(t)

	inputs := []string{
		scriptDocument,
		`{"name": "Weak", "title": "Strong"}`,
		"PROJETO SEM TÍTULO",
		"{broken",
		"funny, viral, shorts",
	}

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			input := inputs[i%len(inputs)]
			first := ExtractTitle(input, "FB")
			for j := 0; j < 20; j++ {
				if got := ExtractTitle(input, "FB"); got != first {
					t.Errorf("ExtractTitle(%q) not deterministic: %q vs %q", input, got, first)
					return
				}
				ExtractDescription(input)
				ExtractTags(input)
			}
		}(i)
	}
	wg.Wait()
}

func TestRepairTruncated(t *testing.T) {
	if got := RepairTruncated(`{"a": [1, 2, {"b": "c`); got != `{"a": [1, 2, {"b": "c"}]}` {
		t.Errorf("RepairTruncated() = %q", got)
	}
}
