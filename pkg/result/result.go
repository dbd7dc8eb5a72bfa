package result

import "fmt"

// Result holds exactly one of a success value or a failure value.
// The zero Result is a failure holding the zero value of E; use the
// constructors.
type Result[V, E any] struct {
	value     V
	err       E
	isSuccess bool
}

func Success[V, E any](value V) Result[V, E] {
	return Result[V, E]{
		value:     value,
		isSuccess: true,
	}
}

func Failure[V, E any](err E) Result[V, E] {
	return Result[V, E]{
		err:       err,
		isSuccess: false,
	}
}

func (r Result[V, E]) IsSuccess() bool {
	return r.isSuccess
}

func (r Result[V, E]) IsFailure() bool {
	return !r.isSuccess
}

// Value returns the success value and true, or the zero V and false.
func (r Result[V, E]) Value() (V, bool) {
	if r.isSuccess {
		return r.value, true
	}
	var zero V
	return zero, false
}

// Err returns the failure value and true, or the zero E and false.
func (r Result[V, E]) Err() (E, bool) {
	if !r.isSuccess {
		return r.err, true
	}
	var zero E
	return zero, false
}

func (r Result[V, E]) IfSuccess(action func(V)) {
	if r.isSuccess {
		action(r.value)
	}
}

func (r Result[V, E]) IfFailure(action func(E)) {
	if !r.isSuccess {
		action(r.err)
	}
}

// Handle invokes exactly one of the actions.
func (r Result[V, E]) Handle(onSuccess func(V), onFailure func(E)) {
	if r.isSuccess {
		onSuccess(r.value)
	} else {
		onFailure(r.err)
	}
}

func (r Result[V, E]) String() string {
	if r.isSuccess {
		return fmt.Sprintf("success(%v)", r.value)
	}
	return fmt.Sprintf("failure(%v)", r.err)
}
