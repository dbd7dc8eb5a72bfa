package result

// MapSuccess applies fn to the success value. fn is not invoked on failure.
func MapSuccess[V, E, R any](r Result[V, E], fn func(V) R) Option[R] {
	if r.IsSuccess() {
		return Some(fn(r.value))
	}
	return None[R]()
}

// MapFailure applies fn to the failure value. fn is not invoked on success.
func MapFailure[V, E, R any](r Result[V, E], fn func(E) R) Option[R] {
	if r.IsFailure() {
		return Some(fn(r.err))
	}
	return None[R]()
}

// Map reduces r to a single value, invoking exactly one of the functions.
func Map[V, E, R any](r Result[V, E], onSuccess func(V) R, onFailure func(E) R) R {
	if r.IsSuccess() {
		return onSuccess(r.value)
	}
	return onFailure(r.err)
}

// MapValue transforms the success value and keeps a failure as is.
func MapValue[V, E, R any](r Result[V, E], fn func(V) R) Result[R, E] {
	if r.IsSuccess() {
		return Success[R, E](fn(r.value))
	}
	return Failure[R](r.err)
}

// Then chains a fallible step onto a success. Failures pass through and fn
// is not invoked.
func Then[V, E, R any](r Result[V, E], fn func(V) Result[R, E]) Result[R, E] {
	if r.IsSuccess() {
		return fn(r.value)
	}
	return Failure[R](r.err)
}

// Of converts a (value, error) pair into a Result. A non-nil err wins over
// the value.
func Of[V any](value V, err error) Result[V, error] {
	if err != nil {
		return Failure[V](err)
	}
	return Success[V, error](value)
}
