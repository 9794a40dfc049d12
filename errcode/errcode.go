package errcode

// Code is a stable error identifier shared by the board checks and the
// device adapter. It is a string newtype, comparable, allocation-free,
// and implements error.
type Code string

func (c Code) Error() string { return string(c) }

// Canonical codes (short, stable).
const (
	OK          Code = "ok"
	Unsupported Code = "unsupported"

	UnknownVariant   Code = "unknown_variant"
	UnknownBus       Code = "unknown_bus"
	InvalidPin       Code = "invalid_pin"
	InputOnlyPin     Code = "input_only_pin"
	PinConflict      Code = "pin_conflict"
	OutOfRange       Code = "out_of_range"
	GeometryMismatch Code = "geometry_mismatch"

	Error Code = "error" // generic fallback
)

// E keeps context and an optional cause alongside a Code.
type E struct {
	C   Code
	Op  string
	Msg string
	Err error
}

func (e *E) Error() string {
	s := string(e.C)
	if e.Op != "" {
		s = e.Op + ": " + s
	}
	if e.Msg != "" {
		s += ": " + e.Msg
	}
	return s
}
func (e *E) Unwrap() error { return e.Err }
func (e *E) Code() Code    { return e.C }

// New builds an *E for op with a message.
func New(c Code, op, msg string) *E { return &E{C: c, Op: op, Msg: msg} }

// Of extracts a Code from an error, defaulting to Error.
func Of(err error) Code {
	if err == nil {
		return OK
	}
	if c, ok := err.(Code); ok {
		return c
	}
	type coder interface{ Code() Code }
	if x, ok := err.(coder); ok {
		return x.Code()
	}
	return Error
}
