package main

import (
	"fmt"
	"os"

	. "github.com/comalice/reducerx"
)

// Typed action variants. The reducer type-switches on them, so the compiler
// knows each payload's type; no untyped discriminant checks needed.

type addTodo struct{ Text string }

func (addTodo) ActionKey() string { return "add" }

type removeTodo struct{ Index int }

func (removeTodo) ActionKey() string { return "remove" }

type setFilter struct{ Filter string }

func (setFilter) ActionKey() string { return "setFilter" }

type todoState struct {
	Todos  []string
	Filter string
}

func reduce(s todoState, a Action) todoState {
	switch a := a.(type) {
	case addTodo:
		return todoState{
			Todos:  append(append([]string{}, s.Todos...), a.Text),
			Filter: s.Filter,
		}
	case removeTodo:
		if a.Index < 0 || a.Index >= len(s.Todos) {
			return s
		}
		next := append([]string{}, s.Todos[:a.Index]...)
		next = append(next, s.Todos[a.Index+1:]...)
		return todoState{Todos: next, Filter: s.Filter}
	case setFilter:
		return todoState{Todos: s.Todos, Filter: a.Filter}
	default:
		return s
	}
}

func main() {
	host := NewMemoryHost[todoState]()

	state, dispatch, err := UseReducer(host, todoState{Filter: "all"}, reduce)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	fmt.Printf("start: %+v\n", state)

	host.Cell().Watch(func(prev, next todoState) {
		fmt.Printf("commit: %+v -> %+v\n", prev, next)
	})

	dispatch(addTodo{Text: "x"})
	dispatch(addTodo{Text: "y"})
	dispatch(removeTodo{Index: 0})
	dispatch(setFilter{Filter: "active"})

	// Re-requesting the container does not reset the slot: the new initial
	// value is ignored and the latest committed state comes back.
	state, _, err = UseReducer(host, todoState{Filter: "ignored"}, reduce)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	fmt.Printf("final: %+v\n", state)
}
