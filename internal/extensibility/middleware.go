package extensibility

import "github.com/comalice/reducerx/internal/core"

// Chain composes middleware into one stage. The first middleware is the
// outermost: it sees actions before the rest.
func Chain[A any](mws ...core.Middleware[A]) core.Middleware[A] {
	return func(next func(A)) func(A) {
		d := next
		for i := len(mws) - 1; i >= 0; i-- {
			d = mws[i](d)
		}
		return d
	}
}

// Filter makes a middleware that drops actions for which keep returns
// false. Dropped actions never reach the reducer; state is unchanged.
func Filter[A any](keep func(A) bool) core.Middleware[A] {
	return func(next func(A)) func(A) {
		return func(action A) {
			if !keep(action) {
				return
			}
			next(action)
		}
	}
}

// Map makes a middleware that rewrites each action before passing it on.
func Map[A any](fn func(A) A) core.Middleware[A] {
	return func(next func(A)) func(A) {
		return func(action A) {
			next(fn(action))
		}
	}
}

// Tap makes a middleware that calls fn with each action on the way through
// without altering it.
func Tap[A any](fn func(A)) core.Middleware[A] {
	return func(next func(A)) func(A) {
		return func(action A) {
			fn(action)
			next(action)
		}
	}
}
