package di

import (
	"errors"
	"strconv"
)

var (
	// ErrNilFunc is returned (or panicked, for wrapper factories) when a nil
	// function is handed to Scoped or AutoInject.
	ErrNilFunc = errors.New("di: nil function")

	// ErrNotStructPointer is returned when Fill is called with anything other
	// than a non-nil pointer to a struct.
	ErrNotStructPointer = errors.New("di: Fill requires a non-nil pointer to struct")
)

// NotFoundError is the primary failure of this package: no active frame in the
// namespace binds the requested key. It is returned by Inject and Update, and
// surfaced unchanged from auto-injected calls and Fill.
//
// Error paths avoid fmt.Errorf so lookups that are expected to miss stay cheap.
type NotFoundError struct {
	Key       string
	Namespace string
}

// Error implements the error interface.
func (e NotFoundError) Error() string {
	// Example: di: dependency "db" not found in namespace "default"
	return "di: dependency " + strconv.Quote(e.Key) +
		" not found in namespace " + strconv.Quote(e.Namespace)
}

// WrongTypeError is returned when a binding exists but cannot be used where it
// was requested: InjectAs with a mismatched type parameter, an auto-injected
// argument that is not assignable to its parameter, or a Fill target field of
// a different type.
type WrongTypeError struct {
	Key       string
	Namespace string

	// GotType is reflect.TypeOf(value).String() for the bound value.
	GotType string
}

// Error implements the error interface.
func (e WrongTypeError) Error() string {
	// Example: di: dependency "db" in namespace "default" has wrong type (*mypkg.Logger)
	return "di: dependency " + strconv.Quote(e.Key) +
		" in namespace " + strconv.Quote(e.Namespace) +
		" has wrong type (" + e.GotType + ")"
}

// InvalidFuncError is returned by AutoInject when the wrapped value cannot be
// auto-injected at all (not a function, variadic, or more markers than
// parameters). These are wrap-time faults, detected before the wrapper is used.
type InvalidFuncError struct{ Reason string }

// Error implements the error interface.
func (e InvalidFuncError) Error() string {
	return "di: cannot auto-inject: " + e.Reason
}

// MissingArgError is returned by an auto-injected call when an unmarked
// parameter was not supplied by the caller. Parameter indexes do not count a
// leading context.Context.
type MissingArgError struct{ Index int }

// Error implements the error interface.
func (e MissingArgError) Error() string {
	return "di: missing argument for parameter " + strconv.Itoa(e.Index)
}

// ArityError is returned by an auto-injected call invoked with more explicit
// arguments than the wrapped function has parameters.
type ArityError struct {
	Got int
	Max int
}

// Error implements the error interface.
func (e ArityError) Error() string {
	return "di: too many arguments: got " + strconv.Itoa(e.Got) +
		", function takes at most " + strconv.Itoa(e.Max)
}

// ArgTypeError is returned by an auto-injected call when an explicit argument
// is not assignable to its parameter. Indexes do not count a leading
// context.Context.
type ArgTypeError struct {
	Index    int
	GotType  string
	WantType string
}

// Error implements the error interface.
func (e ArgTypeError) Error() string {
	return "di: argument " + strconv.Itoa(e.Index) + " has wrong type: got " +
		e.GotType + ", want " + e.WantType
}

// FieldError wraps a resolution or assignment failure for one Fill target
// field, adding the field name.
type FieldError struct {
	Field string
	Err   error
}

// Error implements the error interface.
func (e FieldError) Error() string {
	return "di: field " + e.Field + ": " + e.Err.Error()
}

// Unwrap returns the underlying cause error.
func (e FieldError) Unwrap() error { return e.Err }

// InvalidTagError is returned by Fill for an inject tag without a key.
type InvalidTagError struct{ Field string }

// Error implements the error interface.
func (e InvalidTagError) Error() string {
	return "di: field " + e.Field + ": inject tag has no key"
}

// ScopeReleasedError is the panic value raised when a scope is released twice.
// Double release means push/pop pairing is broken somewhere, which is a
// programming fault rather than a runtime condition, so it is not returned as
// an ordinary error.
type ScopeReleasedError struct{ Label string }

// Error implements the error interface.
func (e ScopeReleasedError) Error() string {
	if e.Label == "" {
		return "di: scope released twice"
	}
	return "di: scope " + strconv.Quote(e.Label) + " released twice"
}
