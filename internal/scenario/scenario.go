// Package scenario defines data-driven operation scripts for exercising
// the list container, plus loaders for YAML and TOML script files.
//
// A scenario is a named sequence of steps. Each step applies one list
// operation and may carry an expectation block checked immediately after
// the operation: the resulting size, front, back, full element sequence,
// and whether the operation was expected to fail.
package scenario

import "fmt"

// Op names a list operation a step can apply.
type Op string

const (
	OpPushFront   Op = "push_front"
	OpPushBack    Op = "push_back"
	OpPopFront    Op = "pop_front"
	OpPopBack     Op = "pop_back"
	OpInsertAfter Op = "insert_after"
	OpEraseAfter  Op = "erase_after"
	OpClear       Op = "clear"
	OpReverse     Op = "reverse"
)

// ErrKind names the failure a step expects, if any.
type ErrKind string

const (
	// ErrNone means the operation must succeed.
	ErrNone ErrKind = ""

	// ErrEmpty means the operation must fail because the list is empty.
	ErrEmpty ErrKind = "empty"

	// ErrInvalidPosition means the operation must fail because the
	// position is the end sentinel or has no successor.
	ErrInvalidPosition ErrKind = "invalid-position"
)

// Expect is an optional per-step assertion block. Nil pointer fields
// and a nil Elems slice are not checked.
type Expect struct {
	Size  *int    `yaml:"size" toml:"size"`
	Front *int64  `yaml:"front" toml:"front"`
	Back  *int64  `yaml:"back" toml:"back"`
	Elems []int64 `yaml:"elems" toml:"elems"`
	Err   ErrKind `yaml:"err" toml:"err"`
}

// Step is one scripted operation. Value is the element for the push and
// insert operations. Index selects the position for insert_after and
// erase_after: the 0-based node the position iterator references, or -1
// for the end sentinel (to script the failure paths).
type Step struct {
	Op     Op      `yaml:"op" toml:"op"`
	Value  int64   `yaml:"value" toml:"value"`
	Index  int     `yaml:"index" toml:"index"`
	Expect *Expect `yaml:"expect" toml:"expect"`
}

// Scenario is a named operation script.
type Scenario struct {
	Name  string `yaml:"name" toml:"name"`
	Steps []Step `yaml:"steps" toml:"steps"`
}

// Validate checks that every step names a known operation and that
// expectation blocks are internally consistent.
func (s *Scenario) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("scenario has no name")
	}
	for i, step := range s.Steps {
		switch step.Op {
		case OpPushFront, OpPushBack, OpPopFront, OpPopBack,
			OpInsertAfter, OpEraseAfter, OpClear, OpReverse:
		default:
			return fmt.Errorf("scenario %q step %d: unknown op %q", s.Name, i+1, step.Op)
		}
		if step.Expect != nil {
			switch step.Expect.Err {
			case ErrNone, ErrEmpty, ErrInvalidPosition:
			default:
				return fmt.Errorf("scenario %q step %d: unknown err kind %q",
					s.Name, i+1, step.Expect.Err)
			}
		}
	}
	return nil
}

func intp(v int) *int       { return &v }
func int64p(v int64) *int64 { return &v }

// Default returns the built-in scenarios run when no script files are
// given: the two worked end-to-end sequences plus the empty-list and
// bad-position failure paths.
func Default() []Scenario {
	return []Scenario{
		{
			Name: "push-pop-clear",
			Steps: []Step{
				{Op: OpPushBack, Value: 10},
				{Op: OpPushBack, Value: 30},
				{Op: OpPushFront, Value: 5, Expect: &Expect{
					Size: intp(3), Elems: []int64{5, 10, 30},
				}},
				{Op: OpPopFront, Expect: &Expect{Elems: []int64{10, 30}}},
				{Op: OpPopBack, Expect: &Expect{Elems: []int64{10}}},
				{Op: OpClear, Expect: &Expect{Size: intp(0), Elems: []int64{}}},
			},
		},
		{
			Name: "insert-erase-reverse",
			Steps: []Step{
				{Op: OpPushBack, Value: 10},
				{Op: OpPushBack, Value: 50},
				{Op: OpInsertAfter, Index: 0, Value: 20, Expect: &Expect{
					Elems: []int64{10, 20, 50},
				}},
				{Op: OpInsertAfter, Index: 2, Value: 60, Expect: &Expect{
					Elems: []int64{10, 20, 50, 60}, Back: int64p(60),
				}},
				{Op: OpEraseAfter, Index: 0, Expect: &Expect{
					Elems: []int64{10, 50, 60},
				}},
				{Op: OpReverse, Expect: &Expect{
					Elems: []int64{60, 50, 10}, Front: int64p(60), Back: int64p(10),
				}},
			},
		},
		{
			Name: "failure-paths",
			Steps: []Step{
				{Op: OpPopFront, Expect: &Expect{Err: ErrEmpty, Size: intp(0)}},
				{Op: OpPopBack, Expect: &Expect{Err: ErrEmpty, Size: intp(0)}},
				{Op: OpInsertAfter, Index: -1, Value: 1, Expect: &Expect{
					Err: ErrInvalidPosition, Size: intp(0),
				}},
				{Op: OpPushBack, Value: 1},
				{Op: OpEraseAfter, Index: -1, Expect: &Expect{Err: ErrInvalidPosition}},
				{Op: OpEraseAfter, Index: 0, Expect: &Expect{
					Err: ErrInvalidPosition, Elems: []int64{1},
				}},
			},
		},
	}
}
