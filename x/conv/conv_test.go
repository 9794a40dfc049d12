package conv

import (
	"math"
	"testing"
)

func TestItoa(t *testing.T) {
	for _, c := range []struct {
		n    int64
		want string
	}{
		{0, "0"},
		{7, "7"},
		{-1, "-1"},
		{40_000_000, "40000000"},
		{math.MaxInt64, "9223372036854775807"},
		{math.MinInt64, "-9223372036854775808"},
	} {
		if got := Itoa(c.n); got != c.want {
			t.Fatalf("Itoa(%d) = %q, want %q", c.n, got, c.want)
		}
	}
	if got := Itoa(int8(-128)); got != "-128" {
		t.Fatalf("Itoa(int8) = %q", got)
	}
}

func TestUtoa(t *testing.T) {
	if got := Utoa(uint64(math.MaxUint64)); got != "18446744073709551615" {
		t.Fatalf("Utoa(max) = %q", got)
	}
	if got := Utoa(uint32(0)); got != "0" {
		t.Fatalf("Utoa(0) = %q", got)
	}
}

func TestAppendReusesBuffer(t *testing.T) {
	var scratch [20]byte
	b := AppendInt(scratch[:0], -42)
	b = append(b, ' ')
	b = AppendUint(b, uint8(255))
	if string(b) != "-42 255" {
		t.Fatalf("got %q", b)
	}
}
