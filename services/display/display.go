// Package display hands a board descriptor to the TinyGo display, touch and
// backlight drivers. It owns no drawing or touch-event logic; callers get the
// configured driver objects and draw with them directly.
package display

import (
	"image/color"

	"cyd-go/board/cyd"

	"tinygo.org/x/drivers"
	"tinygo.org/x/drivers/touch"
)

// Panel is the subset shared by the ili9341 and st7789 drivers.
type Panel interface {
	drivers.Displayer
	FillScreen(c color.RGBA)
	Sleep(sleepEnabled bool) error
}

// OutputPin is a GPIO that can be driven high or low (machine.Pin).
type OutputPin interface {
	Set(high bool)
}

// Toucher is a touch controller that reports pen-down on its own line.
type Toucher interface {
	touch.Pointer
	Touched() bool
}

// Device is the opened board: panel, backlight and touch, all configured
// from one descriptor.
type Device struct {
	variant cyd.Variant
	panel   Panel
	light   *Backlight
	touch   *Touch
}

func (d *Device) Variant() cyd.Variant  { return d.variant }
func (d *Device) Panel() Panel          { return d.panel }
func (d *Device) Backlight() *Backlight { return d.light }
func (d *Device) Touch() *Touch         { return d.touch }

// Backlight switches the LED backlight, honouring an inverted drive.
type Backlight struct {
	pin    OutputPin
	invert bool
	on     bool
}

// NewBacklight wraps pin according to cfg. The light starts off.
func NewBacklight(pin OutputPin, cfg cyd.BacklightConfig) *Backlight {
	b := &Backlight{pin: pin, invert: cfg.Invert}
	b.Set(false)
	return b
}

func (b *Backlight) Set(on bool) {
	b.on = on
	b.pin.Set(on != b.invert)
}

func (b *Backlight) On() bool { return b.on }

// Touch reads calibrated panel coordinates from a resistive controller.
type Touch struct {
	dev Toucher
	cal Calibration
}

func NewTouch(dev Toucher, cal Calibration) *Touch {
	return &Touch{dev: dev, cal: cal}
}

func (t *Touch) Calibration() Calibration { return t.cal }

func (t *Touch) Touched() bool { return t.dev.Touched() }

// Read returns the touched position in the coordinates the panel driver
// draws in, so it can be passed straight to Panel().SetPixel. ok is false
// when the pen is up.
func (t *Touch) Read() (x, y int, ok bool) {
	if !t.dev.Touched() {
		return 0, 0, false
	}
	p := t.dev.ReadTouchPoint()
	if p == (touch.Point{}) {
		return 0, 0, false
	}
	rx, ry := FromDriver(p)
	x, y = t.cal.Map(rx, ry)
	return x, y, true
}
