package smoke

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/dshills/slink/internal/scenario"
)

func intp(v int) *int       { return &v }
func int64p(v int64) *int64 { return &v }

func TestRunDefaults(t *testing.T) {
	report := Run(scenario.Default())
	if !report.OK() {
		for _, f := range report.Failures {
			t.Errorf("unexpected failure: %s", f)
		}
	}
	if report.Scenarios != len(scenario.Default()) {
		t.Errorf("Scenarios = %d, want %d", report.Scenarios, len(scenario.Default()))
	}
	if report.RunID == "" {
		t.Error("report has no run ID")
	}
}

func TestRunDetectsWrongExpectation(t *testing.T) {
	s := scenario.Scenario{
		Name: "wrong-front",
		Steps: []scenario.Step{
			{Op: scenario.OpPushBack, Value: 1},
			{Op: scenario.OpPushBack, Value: 2, Expect: &scenario.Expect{
				Front: int64p(99),
			}},
		},
	}

	report := Run([]scenario.Scenario{s})
	if report.OK() {
		t.Fatal("runner should have reported the bad expectation")
	}
	if len(report.Failures) != 1 {
		t.Fatalf("failures = %v, want exactly 1", report.Failures)
	}
	f := report.Failures[0]
	if f.Scenario != "wrong-front" || f.Step != 2 {
		t.Errorf("failure = %+v, want scenario wrong-front step 2", f)
	}
	if !strings.Contains(f.Detail, "front") {
		t.Errorf("failure detail %q should mention front", f.Detail)
	}
}

func TestRunDetectsUnexpectedError(t *testing.T) {
	s := scenario.Scenario{
		Name: "pop-empty",
		Steps: []scenario.Step{
			{Op: scenario.OpPopFront}, // fails, but no expect.err scripted
		},
	}

	report := Run([]scenario.Scenario{s})
	if report.OK() {
		t.Fatal("runner should have reported the unexpected error")
	}
	if !strings.Contains(report.Failures[0].Detail, "empty") {
		t.Errorf("failure detail %q should name the error kind", report.Failures[0].Detail)
	}
}

func TestRunExpectedErrorPasses(t *testing.T) {
	s := scenario.Scenario{
		Name: "expected-errors",
		Steps: []scenario.Step{
			{Op: scenario.OpPopBack, Expect: &scenario.Expect{
				Err: scenario.ErrEmpty, Size: intp(0),
			}},
			{Op: scenario.OpPushBack, Value: 3},
			{Op: scenario.OpInsertAfter, Index: -1, Value: 4, Expect: &scenario.Expect{
				Err: scenario.ErrInvalidPosition, Elems: []int64{3},
			}},
		},
	}

	report := Run([]scenario.Scenario{s})
	if !report.OK() {
		for _, f := range report.Failures {
			t.Errorf("unexpected failure: %s", f)
		}
	}
}

func TestRunPositionalOps(t *testing.T) {
	s := scenario.Scenario{
		Name: "positional",
		Steps: []scenario.Step{
			{Op: scenario.OpPushBack, Value: 10},
			{Op: scenario.OpPushBack, Value: 50},
			{Op: scenario.OpInsertAfter, Index: 0, Value: 20, Expect: &scenario.Expect{
				Elems: []int64{10, 20, 50},
			}},
			{Op: scenario.OpInsertAfter, Index: 2, Value: 60, Expect: &scenario.Expect{
				Back: int64p(60),
			}},
			{Op: scenario.OpEraseAfter, Index: 0, Expect: &scenario.Expect{
				Elems: []int64{10, 50, 60},
			}},
			{Op: scenario.OpReverse, Expect: &scenario.Expect{
				Front: int64p(60), Back: int64p(10), Size: intp(3),
			}},
		},
	}

	report := Run([]scenario.Scenario{s})
	if !report.OK() {
		for _, f := range report.Failures {
			t.Errorf("unexpected failure: %s", f)
		}
	}
	if report.Steps != 6 {
		t.Errorf("Steps = %d, want 6", report.Steps)
	}
}

func TestReportRender(t *testing.T) {
	report := Run(scenario.Default())

	var sb strings.Builder
	report.Render(&sb)
	out := sb.String()

	if !strings.Contains(out, report.RunID) {
		t.Error("rendered report should include the run ID")
	}
	if !strings.Contains(out, "ok") {
		t.Errorf("rendered report %q should end ok", out)
	}
}

func TestWatch(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ops.yaml")
	if err := os.WriteFile(path, []byte("scenarios: []\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	ran := make(chan struct{}, 1)
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, []string{path}, func() {
			select {
			case ran <- struct{}{}:
			default:
			}
		})
	}()

	// Give the watcher a moment to register, then touch the file.
	time.Sleep(100 * time.Millisecond)
	if err := os.WriteFile(path, []byte("scenarios: []\n# touched\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case <-ran:
	case <-ctx.Done():
		t.Fatal("watch callback did not fire")
	}

	cancel()
	if err := <-done; err != context.Canceled && err != context.DeadlineExceeded {
		t.Errorf("Watch returned %v, want context cancellation", err)
	}
}
