// Package result provides Result[V, E], an immutable two-variant value that
// holds either a success value of type V or a failure value of type E.
//
// It is meant for the edge of a program where a fallible call is converted
// into a value once and then consumed by branching on the tag:
// - Success/Failure: the only constructors
// - IsSuccess/IsFailure: tag queries
// - MapSuccess/MapFailure: transform the matching payload into an Option
// - Map: reduce both variants to one value
// - IfSuccess/IfFailure/Handle: run side effects for the matching variant
// - Of/Then/MapValue: interop with (value, error) returns and chaining
//
// Result itself never logs, prints or panics.
package result
