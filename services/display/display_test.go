package display

import (
	"testing"

	"cyd-go/board/cyd"

	"tinygo.org/x/drivers/touch"
)

type fakePin struct {
	level bool
	n     int
}

func (p *fakePin) Set(high bool) { p.level = high; p.n++ }

type fakeTouch struct {
	down bool
	p    touch.Point
}

func (f *fakeTouch) ReadTouchPoint() touch.Point { return f.p }
func (f *fakeTouch) Touched() bool               { return f.down }

func TestBacklightStartsOff(t *testing.T) {
	var p fakePin
	b := NewBacklight(&p, cyd.New(cyd.ILI9341OneUSB).Light())
	if p.level || b.On() || p.n != 1 {
		t.Fatalf("initial: level=%v on=%v writes=%d", p.level, b.On(), p.n)
	}
	b.Set(true)
	if !p.level || !b.On() {
		t.Fatal("backlight did not turn on")
	}
}

func TestBacklightInverted(t *testing.T) {
	var p fakePin
	b := NewBacklight(&p, cyd.BacklightConfig{PinBL: 21, Invert: true})
	if !p.level {
		t.Fatal("inverted light should idle high")
	}
	b.Set(true)
	if p.level {
		t.Fatal("inverted light should drive low when on")
	}
}

func TestTouchRead(t *testing.T) {
	f := &fakeTouch{}
	tc := NewTouch(f, calFor(cyd.ILI9341OneUSB))

	if _, _, ok := tc.Read(); ok {
		t.Fatal("pen up should not report")
	}

	f.down = true
	if _, _, ok := tc.Read(); ok {
		t.Fatal("empty sample should not report")
	}

	f.p = touch.Point{X: 3800 << 4, Y: (4096 - 200) << 4, Z: 1}
	x, y, ok := tc.Read()
	if !ok || x != 0 || y != 0 {
		t.Fatalf("Read = (%d,%d,%v), want (0,0,true)", x, y, ok)
	}
	if !tc.Touched() {
		t.Fatal("Touched should follow the controller")
	}
}
