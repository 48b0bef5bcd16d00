// Package result provides the success/failure carrier returned by every
// service operation in place of raised errors. A Result is either a success
// or a failure holding exactly one *Error; the Error carries its HTTP
// mapping (status, title, problem type) so the translation to a response
// happens once, at the boundary that renders it.
package result

// Result represents the outcome of an operation with no return value.
type Result struct {
	err *Error
}

// Success returns a Result in the success state.
func Success() Result {
	return Result{}
}

// Failure returns a Result carrying err. A nil err is a programming error.
func Failure(err *Error) Result {
	if err == nil {
		panic("result: Failure called with nil error")
	}
	return Result{err: err}
}

// IsSuccess reports whether the operation succeeded.
func (r Result) IsSuccess() bool {
	return r.err == nil
}

// IsFailure reports whether the operation failed.
func (r Result) IsFailure() bool {
	return r.err != nil
}

// Err returns the attached Error. Calling Err on a successful Result is a
// contract violation and panics.
func (r Result) Err() *Error {
	if r.err == nil {
		panic("result: Err called on a successful Result")
	}
	return r.err
}

// Of represents the outcome of an operation carrying a value on success.
type Of[T any] struct {
	val T
	err *Error
}

// SuccessOf returns a successful Of carrying v.
func SuccessOf[T any](v T) Of[T] {
	return Of[T]{val: v}
}

// FailureOf returns a failed Of carrying err. A nil err is a programming
// error.
func FailureOf[T any](err *Error) Of[T] {
	if err == nil {
		panic("result: FailureOf called with nil error")
	}
	return Of[T]{err: err}
}

// IsSuccess reports whether the operation succeeded.
func (r Of[T]) IsSuccess() bool {
	return r.err == nil
}

// IsFailure reports whether the operation failed.
func (r Of[T]) IsFailure() bool {
	return r.err != nil
}

// Value returns the carried value. Calling Value on a failed Of is a
// contract violation and panics.
func (r Of[T]) Value() T {
	if r.err != nil {
		panic("result: Value called on a failed Result")
	}
	return r.val
}

// Err returns the attached Error. Calling Err on a successful Of is a
// contract violation and panics.
func (r Of[T]) Err() *Error {
	if r.err == nil {
		panic("result: Err called on a successful Result")
	}
	return r.err
}

// AsResult drops the value, preserving the same Error on failure.
func (r Of[T]) AsResult() Result {
	if r.err != nil {
		return Result{err: r.err}
	}
	return Result{}
}

// ToResult wraps e into a failed Result, preserving the instance.
func (e *Error) ToResult() Result {
	return Failure(e)
}

// ToResultOf wraps e into a failed Of[T], preserving the instance.
func ToResultOf[T any](e *Error) Of[T] {
	return FailureOf[T](e)
}
