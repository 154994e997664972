package testutil

import (
	"testing"

	"github.com/comalice/reducerx"
)

func TestCounterScenarios(t *testing.T) {
	RunFile(t, "testdata/counter.yaml")
}

func TestTodoScenarios(t *testing.T) {
	RunFile(t, "testdata/todo.yaml")
}

func TestLoadScenariosMissingFile(t *testing.T) {
	if _, err := LoadScenarios("testdata/absent.yaml"); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestReducerLookup(t *testing.T) {
	for _, name := range []string{"counter", "todo"} {
		if _, ok := Reducer(name); !ok {
			t.Errorf("Reducer(%q) not found", name)
		}
	}
	if _, ok := Reducer("nope"); ok {
		t.Error("Reducer(\"nope\") should not exist")
	}
}

// The todo reducer asserts payload presence by type, not truthiness, so a
// remove at index 0 is a real operation.
func TestTodoRemoveIndexZero(t *testing.T) {
	s := State{"todos": []any{"x"}, "filter": "all"}
	got := TodoReducer(s, reducerx.Msg{Key: "remove", Payload: 0})

	list, _ := got["todos"].([]any)
	if len(list) != 0 {
		t.Errorf("todos = %v, want empty", list)
	}
}

func TestReducersDoNotMutateInput(t *testing.T) {
	s := State{"count": 1}
	_ = CounterReducer(s, reducerx.Msg{Key: "increment", Payload: 2})
	if s["count"] != 1 {
		t.Errorf("input state mutated: count = %v", s["count"])
	}

	td := State{"todos": []any{"a"}, "filter": "all"}
	_ = TodoReducer(td, reducerx.Msg{Key: "add", Payload: "b"})
	list, _ := td["todos"].([]any)
	if len(list) != 1 {
		t.Errorf("input todos mutated: %v", list)
	}
}
