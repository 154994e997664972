package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	. "github.com/comalice/reducerx"
	"github.com/comalice/reducerx/testutil"
)

func main() {
	logger := zap.NewExample()
	defer logger.Sync()

	store, err := New(
		testutil.State{"count": 0},
		testutil.CounterReducer,
		WithLogger[testutil.State, Msg](logger),
		WithJournal[testutil.State, Msg](16),
	)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	store.Dispatch(Msg{Key: "increment", Payload: 1})
	store.Dispatch(Msg{Key: "increment", Payload: 1})
	store.Dispatch(Msg{Key: "decrement", Payload: 1})
	store.Dispatch(Msg{Key: "increment", Payload: 0}) // falsy payload, dropped by the reducer
	store.Dispatch(Msg{Key: "reset"})

	for _, tr := range store.Recent() {
		fmt.Printf("%d %-10s -> %v\n", tr.Seq, tr.Action.Key, tr.Next["count"])
	}
	fmt.Println("final:", store.State())
}
