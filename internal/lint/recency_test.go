package lint

import (
	"testing"
	"time"

	"github.com/medpipe/draftgate/internal/model"
)

func recencyNow() time.Time {
	return time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
}

func TestRecencyCheckFlagsStaleSources(t *testing.T) {
	ctx := &Context{
		Now: recencyNow(),
		Sources: []model.Source{
			{ID: "old", Published: "2017-03-01"},
			{ID: "fresh", Published: "2024-01-15"},
			{ID: "edge", Published: "2021"},
		},
	}

	issues := (&RecencyCheck{}).Check(ctx)
	if len(issues) != 1 {
		t.Fatalf("expected 1 issue, got %+v", issues)
	}
	if issues[0].Code != model.CodeOutdatedGuideline || issues[0].SourceID != "old" {
		t.Errorf("issue = %+v", issues[0])
	}
}

func TestRecencyCheckWindowOverride(t *testing.T) {
	ctx := &Context{
		Now:     recencyNow(),
		Sources: []model.Source{{ID: "old", Published: "2017-03-01"}},
	}

	if issues := (&RecencyCheck{WindowYears: 20}).Check(ctx); len(issues) != 0 {
		t.Errorf("20-year window should accept 2017, got %+v", issues)
	}
}

func TestRecencyCheckFirstDateFieldWins(t *testing.T) {
	ctx := &Context{
		Now: recencyNow(),
		Sources: []model.Source{
			// Published is set but yields no year, so the source is skipped
			// even though Updated would parse.
			{ID: "odd", Published: "recent", Updated: "2010-01-01"},
			// Updated wins when Published is empty.
			{ID: "upd", Updated: "2012-05-05"},
		},
	}

	issues := (&RecencyCheck{}).Check(ctx)
	if len(issues) != 1 {
		t.Fatalf("expected 1 issue, got %+v", issues)
	}
	if issues[0].SourceID != "upd" {
		t.Errorf("flagged %s, want upd", issues[0].SourceID)
	}
}

func TestRecencyCheckSkipsUndatedSources(t *testing.T) {
	ctx := &Context{
		Now:     recencyNow(),
		Sources: []model.Source{{ID: "nodate"}},
	}
	if issues := (&RecencyCheck{}).Check(ctx); len(issues) != 0 {
		t.Errorf("undated source should be skipped, got %+v", issues)
	}
}
