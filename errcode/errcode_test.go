package errcode

import (
	"errors"
	"testing"
)

func TestCodesAreStableStrings(t *testing.T) {
	cases := map[string]Code{
		"ok":                OK,
		"unsupported":       Unsupported,
		"unknown_variant":   UnknownVariant,
		"unknown_bus":       UnknownBus,
		"invalid_pin":       InvalidPin,
		"input_only_pin":    InputOnlyPin,
		"pin_conflict":      PinConflict,
		"out_of_range":      OutOfRange,
		"geometry_mismatch": GeometryMismatch,
		"error":             Error,
	}
	for want, c := range cases {
		if c.Error() != want {
			t.Fatalf("code %q mismatch: got %q", want, c.Error())
		}
	}
}

func TestOf(t *testing.T) {
	if Of(nil) != OK {
		t.Fatal("nil should map to ok")
	}
	if Of(PinConflict) != PinConflict {
		t.Fatal("bare code not recognised")
	}
	if Of(New(OutOfRange, "panel", "rotation 9")) != OutOfRange {
		t.Fatal("wrapped code not recognised")
	}
	if Of(errors.New("boom")) != Error {
		t.Fatal("foreign error should map to generic code")
	}
}

func TestEFormatAndUnwrap(t *testing.T) {
	cause := errors.New("cause")
	e := &E{C: InvalidPin, Op: "bus", Msg: "pin_sclk 40", Err: cause}
	if got, want := e.Error(), "bus: invalid_pin: pin_sclk 40"; got != want {
		t.Fatalf("Error() = %q, want %q", got, want)
	}
	if !errors.Is(e, cause) {
		t.Fatal("Unwrap should expose the cause")
	}
	if got, want := (&E{C: Unsupported}).Error(), "unsupported"; got != want {
		t.Fatalf("Error() = %q, want %q", got, want)
	}
}
