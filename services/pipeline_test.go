package services

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"deal-formatter/models"
)

// scriptedCompleter returns a per-call reply so individual rows can fail
// while others succeed.
type scriptedCompleter struct {
	replies []string
	errs    []error
	calls   int
}

func (s *scriptedCompleter) Complete(ctx context.Context, prompt string) (string, error) {
	i := s.calls
	s.calls++
	if s.errs[i] != nil {
		return "", s.errs[i]
	}
	return s.replies[i], nil
}

func newTestPipeline(c *scriptedCompleter) *Pipeline {
	logger := newTestLogger()
	return NewPipeline(NewNormalizer(), NewGenerator(c, logger), logger)
}

func TestPipelinePreservesCountAndOrder(t *testing.T) {
	rows := []*models.DealRow{
		{RawTitle: "  first deal ", RawDescription: "one"},
		{RawTitle: "second deal", RawDescription: "two"},
		{RawTitle: "third deal", RawDescription: "three"},
	}
	completer := &scriptedCompleter{
		replies: []string{
			`{"title": "A", "html_description": "a", "seo_description": "sa"}`,
			`{"title": "B", "html_description": "b", "seo_description": "sb"}`,
			`{"title": "C", "html_description": "c", "seo_description": "sc"}`,
		},
		errs: make([]error, 3),
	}

	results := newTestPipeline(completer).Run(context.Background(), rows)

	if len(results) != len(rows) {
		t.Fatalf("got %d results for %d rows", len(results), len(rows))
	}
	for i, want := range []string{"A", "B", "C"} {
		if results[i].Title != want {
			t.Errorf("results[%d].Title = %q; want %q", i, results[i].Title, want)
		}
	}
}

func TestPipelineRowFailureIsIsolated(t *testing.T) {
	rows := []*models.DealRow{
		{RawTitle: "good one", RawDescription: "ok"},
		{RawTitle: "  bad   one ", RawDescription: "boom"},
		{RawTitle: "good two", RawDescription: "ok"},
	}
	completer := &scriptedCompleter{
		replies: []string{
			`{"title": "A", "html_description": "a", "seo_description": "sa"}`,
			"",
			`{"title": "C", "html_description": "c", "seo_description": "sc"}`,
		},
		errs: []error{nil, errors.New("upstream unreachable"), nil},
	}

	results := newTestPipeline(completer).Run(context.Background(), rows)

	if len(results) != 3 {
		t.Fatalf("got %d results; want 3", len(results))
	}
	if results[0].Err != "" || results[2].Err != "" {
		t.Errorf("neighbouring rows affected: %+v, %+v", results[0], results[2])
	}
	if results[1].Err == "" {
		t.Fatal("failed row carries no error annotation")
	}
	if results[1].Title != "Bad One" {
		t.Errorf("fallback title = %q; want %q", results[1].Title, "Bad One")
	}
	if results[1].HTMLDescription != "boom" {
		t.Errorf("fallback description = %q; want %q", results[1].HTMLDescription, "boom")
	}
	if results[1].SEODescription != "" {
		t.Errorf("fallback SEO = %q; want empty", results[1].SEODescription)
	}
}

func TestPipelineAllRowsFailStillComplete(t *testing.T) {
	var rows []*models.DealRow
	for i := 0; i < 4; i++ {
		rows = append(rows, &models.DealRow{
			RawTitle:       fmt.Sprintf("deal %d", i),
			RawDescription: fmt.Sprintf("desc %d", i),
		})
	}
	completer := &scriptedCompleter{
		replies: make([]string, 4),
		errs: []error{
			errors.New("unreachable"), errors.New("unreachable"),
			errors.New("unreachable"), errors.New("unreachable"),
		},
	}

	results := newTestPipeline(completer).Run(context.Background(), rows)

	if len(results) != 4 {
		t.Fatalf("got %d results; want 4", len(results))
	}
	for i, res := range results {
		if res.Err == "" {
			t.Errorf("results[%d] has no error annotation", i)
		}
		if res.Title != rows[i].CleanTitle {
			t.Errorf("results[%d].Title = %q; want clean title %q", i, res.Title, rows[i].CleanTitle)
		}
	}
}

func TestPipelineEmptyInputMakesNoCalls(t *testing.T) {
	completer := &scriptedCompleter{}

	results := newTestPipeline(completer).Run(context.Background(), nil)

	if len(results) != 0 {
		t.Errorf("got %d results for empty input", len(results))
	}
	if completer.calls != 0 {
		t.Errorf("expected 0 API calls for empty input, got %d", completer.calls)
	}
}
