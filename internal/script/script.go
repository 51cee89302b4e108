package script

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v2"

	"github.com/mgnsk/dlist"
)

// Op is a list operation name.
type Op string

// Supported operations.
const (
	OpInsertHead Op = "insert_head"
	OpInsertTail Op = "insert_tail"
	OpInsertAt   Op = "insert_at"
	OpDeleteHead Op = "delete_head"
	OpDeleteTail Op = "delete_tail"
	OpDeleteAt   Op = "delete_at"
	OpGet        Op = "get"
	OpClear      Op = "clear"
)

// ErrInvalidStep indicates a step that cannot be applied to the list.
var ErrInvalidStep = errors.New("invalid step")

//go:embed demo.yaml
var demo []byte

// Step is a single operation on the list.
type Step struct {
	Op    Op     `yaml:"op"`
	Index *int   `yaml:"index,omitempty"`
	Value int64  `yaml:"value,omitempty"`
	Label string `yaml:"label,omitempty"`
}

func (s Step) index() int {
	if s.Index == nil {
		return 0
	}
	return *s.Index
}

// Script is a sequence of steps.
type Script struct {
	Steps []Step `yaml:"steps"`
}

// Demo returns the built-in demonstration script.
func Demo() *Script {
	s, err := Parse(demo)
	if err != nil {
		panic(err)
	}
	return s
}

// Load reads a script from a YAML file.
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading script: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a YAML script.
func Parse(data []byte) (*Script, error) {
	var s Script
	if err := yaml.UnmarshalStrict(data, &s); err != nil {
		return nil, fmt.Errorf("decoding script: %w", err)
	}

	for i, step := range s.Steps {
		switch step.Op {
		case OpInsertHead, OpInsertTail, OpDeleteHead, OpDeleteTail, OpClear:
		case OpInsertAt, OpDeleteAt, OpGet:
			if step.Index == nil {
				return nil, fmt.Errorf("%w %d: %s requires an index", ErrInvalidStep, i, step.Op)
			}
		default:
			return nil, fmt.Errorf("%w %d: unknown op %q", ErrInvalidStep, i, step.Op)
		}
	}

	return &s, nil
}

// Result is the outcome of a single step.
type Result struct {
	Step  Step
	Value int64
	Found bool
	State string
	Len   int
}

// Line renders the result. Steps with a label render as "label : outcome",
// other steps as "op args : outcome".
func (r Result) Line() string {
	name := r.Step.Label
	if name == "" {
		name = string(r.Step.Op)
		switch r.Step.Op {
		case OpInsertHead, OpInsertTail:
			name += " " + strconv.FormatInt(r.Step.Value, 10)
		case OpInsertAt:
			name += fmt.Sprintf(" %d %d", r.Step.index(), r.Step.Value)
		case OpDeleteAt, OpGet:
			name += " " + strconv.Itoa(r.Step.index())
		}
	}

	if r.Step.Op == OpGet {
		if !r.Found {
			return name + " : none"
		}
		return name + " : " + strconv.FormatInt(r.Value, 10)
	}

	return name + " : " + r.State
}

// Run applies the steps to l in order and calls f with each result.
// Indices are checked against the list length before the list is touched,
// so a bad index stops the run with an error instead of a panic.
func (s *Script) Run(l *dlist.LinkedList[int64], f func(Result)) error {
	for i, step := range s.Steps {
		r := Result{Step: step}

		switch step.Op {
		case OpInsertHead:
			l.InsertAtHead(step.Value)

		case OpInsertTail:
			l.InsertAtTail(step.Value)

		case OpInsertAt:
			if err := checkIndex(i, step, l.Len()); err != nil {
				return err
			}
			l.InsertAt(*step.Index, step.Value)

		case OpDeleteHead:
			r.Value, r.Found = l.DeleteHead()

		case OpDeleteTail:
			r.Value, r.Found = l.DeleteTail()

		case OpDeleteAt:
			if err := checkIndex(i, step, l.Len()); err != nil {
				return err
			}
			r.Value, r.Found = l.DeleteAt(*step.Index)

		case OpGet:
			r.Value, r.Found = l.Get(step.index())

		case OpClear:
			l.Clear()

		default:
			return fmt.Errorf("%w %d: unknown op %q", ErrInvalidStep, i, step.Op)
		}

		r.State = l.String()
		r.Len = l.Len()

		if f != nil {
			f(r)
		}
	}

	return nil
}

func checkIndex(i int, step Step, length int) error {
	if step.Index == nil {
		return fmt.Errorf("%w %d: %s requires an index", ErrInvalidStep, i, step.Op)
	}
	if idx := *step.Index; idx < 0 || idx > length {
		return fmt.Errorf("%w %d: %s index %d with length %d: %w", ErrInvalidStep, i, step.Op, idx, length, dlist.ErrOutOfRange)
	}
	return nil
}
