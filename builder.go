package reducerx

// ReducerBuilder provides a fluent API for assembling a reducer from per-key
// handlers instead of writing one switch by hand. The built reducer is
// total: actions with an unregistered key return the state unchanged.
type ReducerBuilder[S any] struct {
	handlers map[string]func(state S, action Action) S
}

// NewReducerBuilder creates an empty builder.
func NewReducerBuilder[S any]() *ReducerBuilder[S] {
	return &ReducerBuilder[S]{
		handlers: make(map[string]func(state S, action Action) S),
	}
}

// Handle registers fn for actions whose key matches. Registering the same
// key again replaces the previous handler.
func (b *ReducerBuilder[S]) Handle(key string, fn func(state S, action Action) S) *ReducerBuilder[S] {
	b.handlers[key] = fn
	return b
}

// HandlePayload registers a handler that only needs the action's payload.
func (b *ReducerBuilder[S]) HandlePayload(key string, fn func(state S, payload any) S) *ReducerBuilder[S] {
	return b.Handle(key, func(state S, action Action) S {
		return fn(state, PayloadOf(action))
	})
}

// Build returns the assembled reducer. The builder can keep being modified
// afterwards without affecting reducers already built.
func (b *ReducerBuilder[S]) Build() ReducerFunc[S, Action] {
	handlers := make(map[string]func(state S, action Action) S, len(b.handlers))
	for k, fn := range b.handlers {
		handlers[k] = fn
	}

	return func(state S, action Action) S {
		if action == nil {
			return state
		}
		fn, ok := handlers[action.ActionKey()]
		if !ok {
			// Unrecognized key, state unchanged.
			return state
		}
		return fn(state, action)
	}
}
