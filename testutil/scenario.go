// Package testutil provides a YAML-driven scenario harness for the state
// container, plus the demonstration reducers (counter, todo) the scenario
// files and examples use.
//
// A scenario file names a reducer, an initial keyed state, and a sequence
// of steps. Each step dispatches one action and optionally asserts the full
// state afterwards, so a scenario is a direct check of left-to-right fold
// order.
package testutil

import (
	"fmt"
	"os"
	"reflect"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/comalice/reducerx"
)

// State is the dynamic keyed-mapping state shape scenarios operate on.
type State = map[string]any

// Scenario is one named action sequence against a fresh store.
type Scenario struct {
	Name    string `yaml:"name"`
	Reducer string `yaml:"reducer"`
	Initial State  `yaml:"initial"`
	Steps   []Step `yaml:"steps"`
}

// Step dispatches one action. Expect, when present, is compared against the
// full state after the dispatch.
type Step struct {
	Key     string `yaml:"key"`
	Payload any    `yaml:"payload"`
	Expect  State  `yaml:"expect"`
}

type scenarioFile struct {
	Scenarios []Scenario `yaml:"scenarios"`
}

// LoadScenarios reads a scenario file.
func LoadScenarios(path string) ([]Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var f scenarioFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("yaml unmarshal %s: %w", path, err)
	}
	if len(f.Scenarios) == 0 {
		return nil, fmt.Errorf("%s: no scenarios", path)
	}
	return f.Scenarios, nil
}

// Reducer looks up a demonstration reducer by the name scenario files use.
func Reducer(name string) (reducerx.ReducerFunc[State, reducerx.Msg], bool) {
	switch name {
	case "counter":
		return CounterReducer, true
	case "todo":
		return TodoReducer, true
	default:
		return nil, false
	}
}

// Run executes one scenario against a fresh store and reports mismatches
// through t.
func Run(t *testing.T, sc Scenario) {
	t.Helper()

	reduce, ok := Reducer(sc.Reducer)
	if !ok {
		t.Fatalf("scenario %q: unknown reducer %q", sc.Name, sc.Reducer)
	}

	host := reducerx.NewMemoryHost[State]()
	store, err := reducerx.New(sc.Initial, reduce, reducerx.WithHost[State, reducerx.Msg](host))
	if err != nil {
		t.Fatalf("scenario %q: %v", sc.Name, err)
	}

	for i, step := range sc.Steps {
		store.Dispatch(reducerx.Msg{Key: step.Key, Payload: step.Payload})
		if step.Expect == nil {
			continue
		}
		if got := store.State(); !reflect.DeepEqual(got, step.Expect) {
			t.Errorf("scenario %q step %d (%s): state = %#v, want %#v", sc.Name, i, step.Key, got, step.Expect)
		}
	}
}

// RunFile loads a scenario file and runs each scenario as a subtest.
func RunFile(t *testing.T, path string) {
	t.Helper()

	scenarios, err := LoadScenarios(path)
	if err != nil {
		t.Fatal(err)
	}
	for _, sc := range scenarios {
		t.Run(sc.Name, func(t *testing.T) {
			Run(t, sc)
		})
	}
}

// CounterReducer is the counter demonstration reducer over {count}.
//
// It follows the falsy-payload convention: a zero or missing increment or
// decrement payload is treated as absent and the dispatch is a no-op.
func CounterReducer(s State, a reducerx.Msg) State {
	switch a.Key {
	case "increment":
		n, _ := a.Payload.(int)
		if n == 0 {
			return s
		}
		next := clone(s)
		next["count"] = count(s) + n
		return next
	case "decrement":
		n, _ := a.Payload.(int)
		if n == 0 {
			return s
		}
		next := clone(s)
		next["count"] = count(s) - n
		return next
	case "reset":
		next := clone(s)
		next["count"] = 0
		return next
	default:
		return s
	}
}

// TodoReducer is the todo-list demonstration reducer over {todos, filter}.
// Unlike the counter it asserts payload presence by type, so a remove at
// index 0 works.
func TodoReducer(s State, a reducerx.Msg) State {
	switch a.Key {
	case "add":
		text, ok := a.Payload.(string)
		if !ok || text == "" {
			return s
		}
		next := clone(s)
		next["todos"] = append(append([]any{}, todos(s)...), text)
		return next
	case "remove":
		i, ok := a.Payload.(int)
		if !ok {
			return s
		}
		list := todos(s)
		if i < 0 || i >= len(list) {
			return s
		}
		out := make([]any, 0, len(list)-1)
		out = append(out, list[:i]...)
		out = append(out, list[i+1:]...)
		next := clone(s)
		next["todos"] = out
		return next
	case "setFilter":
		f, ok := a.Payload.(string)
		if !ok || f == "" {
			return s
		}
		next := clone(s)
		next["filter"] = f
		return next
	default:
		return s
	}
}

func clone(s State) State {
	next := make(State, len(s))
	for k, v := range s {
		next[k] = v
	}
	return next
}

func count(s State) int {
	n, _ := s["count"].(int)
	return n
}

func todos(s State) []any {
	list, _ := s["todos"].([]any)
	return list
}
