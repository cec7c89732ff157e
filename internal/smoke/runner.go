// Package smoke executes operation scenarios against the list container
// and cross-checks every step against a plain-slice reference model.
//
// The runner is the repo's smoke surface: it drives the public contract
// of slist.List the way an external consumer would, including the
// failure paths, and reports divergence between the list and the model
// rather than relying only on scripted expectations.
package smoke

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/dshills/slink/internal/scenario"
	"github.com/dshills/slink/slist"
)

// Failure records one failed check.
type Failure struct {
	Scenario string
	Step     int // 1-based
	Op       scenario.Op
	Detail   string
}

func (f Failure) String() string {
	return fmt.Sprintf("%s step %d (%s): %s", f.Scenario, f.Step, f.Op, f.Detail)
}

// Report summarizes one runner invocation.
type Report struct {
	RunID     string
	Started   time.Time
	Duration  time.Duration
	Scenarios int
	Steps     int
	Failures  []Failure
}

// OK reports whether every check passed.
func (r *Report) OK() bool {
	return len(r.Failures) == 0
}

// Render writes a human-readable summary.
func (r *Report) Render(w io.Writer) {
	fmt.Fprintf(w, "run %s: %d scenarios, %d steps in %v\n",
		r.RunID, r.Scenarios, r.Steps, r.Duration.Round(time.Microsecond))
	for _, f := range r.Failures {
		fmt.Fprintf(w, "  FAIL %s\n", f)
	}
	if r.OK() {
		fmt.Fprintln(w, "  ok")
	} else {
		fmt.Fprintf(w, "  %d failures\n", len(r.Failures))
	}
}

// Run executes the given scenarios, each against a fresh list and a
// fresh reference model.
func Run(scenarios []scenario.Scenario) *Report {
	report := &Report{
		RunID:   uuid.New().String(),
		Started: time.Now(),
	}

	for _, s := range scenarios {
		report.Scenarios++
		runScenario(s, report)
	}

	report.Duration = time.Since(report.Started)
	return report
}

// runScenario drives one scenario. The reference model mirrors every
// successful mutation; after each step the full list state is compared
// against it, independent of any scripted expectations.
func runScenario(s scenario.Scenario, report *Report) {
	l := slist.New[int64]()
	var model []int64

	fail := func(step int, op scenario.Op, format string, args ...any) {
		report.Failures = append(report.Failures, Failure{
			Scenario: s.Name,
			Step:     step,
			Op:       op,
			Detail:   fmt.Sprintf(format, args...),
		})
	}

	for i, step := range s.Steps {
		report.Steps++
		stepNo := i + 1

		err := applyStep(l, &model, step)

		kind := errKind(err)
		want := scenario.ErrNone
		if step.Expect != nil {
			want = step.Expect.Err
		}
		if kind != want {
			fail(stepNo, step.Op, "error kind %q, want %q (err: %v)", kind, want, err)
			continue
		}

		if detail := crossCheck(l, model); detail != "" {
			fail(stepNo, step.Op, "model divergence: %s", detail)
			continue
		}

		if step.Expect != nil {
			if detail := checkExpect(l, step.Expect); detail != "" {
				fail(stepNo, step.Op, "%s", detail)
			}
		}
	}
}

// applyStep applies one operation to the list and, when it succeeds,
// the same mutation to the model.
func applyStep(l *slist.List[int64], model *[]int64, step scenario.Step) error {
	switch step.Op {
	case scenario.OpPushFront:
		l.PushFront(step.Value)
		*model = slices.Insert(*model, 0, step.Value)
	case scenario.OpPushBack:
		l.PushBack(step.Value)
		*model = append(*model, step.Value)
	case scenario.OpPopFront:
		if _, err := l.PopFront(); err != nil {
			return err
		}
		*model = (*model)[1:]
	case scenario.OpPopBack:
		if _, err := l.PopBack(); err != nil {
			return err
		}
		*model = (*model)[:len(*model)-1]
	case scenario.OpInsertAfter:
		pos := position(l, step.Index)
		if _, err := l.InsertAfter(pos, step.Value); err != nil {
			return err
		}
		*model = slices.Insert(*model, step.Index+1, step.Value)
	case scenario.OpEraseAfter:
		pos := position(l, step.Index)
		if _, err := l.EraseAfter(pos); err != nil {
			return err
		}
		*model = slices.Delete(*model, step.Index+1, step.Index+2)
	case scenario.OpClear:
		l.Clear()
		*model = nil
	case scenario.OpReverse:
		l.Reverse()
		slices.Reverse(*model)
	}
	return nil
}

// position resolves a scripted index to an iterator: the 0-based node
// it references, or the end sentinel for a negative or out-of-range
// index (scripted failure paths).
func position(l *slist.List[int64], index int) slist.Iterator[int64] {
	if index < 0 || index >= l.Len() {
		return l.End()
	}
	it := l.Begin()
	for i := 0; i < index; i++ {
		it = it.Next()
	}
	return it
}

// errKind maps a list error to the scenario's error vocabulary.
func errKind(err error) scenario.ErrKind {
	switch {
	case err == nil:
		return scenario.ErrNone
	case errors.Is(err, slist.ErrEmpty):
		return scenario.ErrEmpty
	case errors.Is(err, slist.ErrInvalidPosition):
		return scenario.ErrInvalidPosition
	default:
		return scenario.ErrKind(err.Error())
	}
}

// crossCheck compares the full observable list state against the model.
// Returns an empty string when they agree.
func crossCheck(l *slist.List[int64], model []int64) string {
	if l.Len() != len(model) {
		return fmt.Sprintf("Len() = %d, model has %d", l.Len(), len(model))
	}
	if l.IsEmpty() != (len(model) == 0) {
		return "IsEmpty() disagrees with Len()"
	}

	got := slices.Collect(l.All())
	if !slices.Equal(got, model) {
		return fmt.Sprintf("elements %v, model %v", got, model)
	}

	front, ferr := l.Front()
	back, berr := l.Back()
	if len(model) == 0 {
		if ferr == nil || berr == nil {
			return "Front/Back should fail on an empty list"
		}
		return ""
	}
	if ferr != nil || berr != nil {
		return fmt.Sprintf("Front/Back failed on non-empty list: %v, %v", ferr, berr)
	}
	if *front != model[0] {
		return fmt.Sprintf("Front() = %d, model front %d", *front, model[0])
	}
	if *back != model[len(model)-1] {
		return fmt.Sprintf("Back() = %d, model back %d", *back, model[len(model)-1])
	}
	return ""
}

// checkExpect applies a step's scripted assertions.
func checkExpect(l *slist.List[int64], exp *scenario.Expect) string {
	if exp.Size != nil && l.Len() != *exp.Size {
		return fmt.Sprintf("size = %d, want %d", l.Len(), *exp.Size)
	}
	if exp.Front != nil {
		front, err := l.Front()
		if err != nil {
			return fmt.Sprintf("front: %v", err)
		}
		if *front != *exp.Front {
			return fmt.Sprintf("front = %d, want %d", *front, *exp.Front)
		}
	}
	if exp.Back != nil {
		back, err := l.Back()
		if err != nil {
			return fmt.Sprintf("back: %v", err)
		}
		if *back != *exp.Back {
			return fmt.Sprintf("back = %d, want %d", *back, *exp.Back)
		}
	}
	if exp.Elems != nil {
		got := slices.Collect(l.All())
		if len(got) != len(exp.Elems) {
			return fmt.Sprintf("elements %v, want %v", got, exp.Elems)
		}
		for i := range exp.Elems {
			if got[i] != exp.Elems[i] {
				return fmt.Sprintf("elements %v, want %v", got, exp.Elems)
			}
		}
	}
	return ""
}
