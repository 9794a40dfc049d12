package display

import (
	"cyd-go/board/cyd"
	"cyd-go/x/mathx"

	"tinygo.org/x/drivers/touch"
)

// adcMax is the largest 12-bit XPT2046 sample.
const adcMax = 4095

// Calibration maps raw 12-bit touch samples onto panel pixels. Bounds are
// taken as configured: a min above its max flips that axis.
type Calibration struct {
	XMin, XMax int
	YMin, YMax int

	Width, Height int   // panel size at rotation 0
	Rotation      uint8 // raw-to-drawn rotation, 0..7; 4..7 mirror X
}

// NewCalibration combines the touch bounds with the panel geometry. The
// touch offset is relative to the panel, so the rotation applied is the sum
// of both offsets and the result lands in the frame the panel draws in.
func NewCalibration(tc cyd.TouchConfig, pc cyd.PanelConfig) Calibration {
	return Calibration{
		XMin: tc.XMin, XMax: tc.XMax,
		YMin: tc.YMin, YMax: tc.YMax,
		Width:    pc.PanelWidth,
		Height:   pc.PanelHeight,
		Rotation: combineRotation(pc.OffsetRotation, tc.OffsetRotation),
	}
}

// combineRotation adds quarter turns and XORs the mirror bit.
func combineRotation(panel, touch uint8) uint8 {
	return ((panel + touch) & 3) | ((panel ^ touch) & 4)
}

// FromDriver converts a point from tinygo.org/x/drivers/xpt2046 back to
// raw ADC units. That driver scales samples to 16 bits and reports Y as
// 4096-y.
func FromDriver(p touch.Point) (rawX, rawY int) {
	rawX = mathx.Clamp(p.X>>4, 0, adcMax)
	rawY = mathx.Clamp(4096-(p.Y>>4), 0, adcMax)
	return rawX, rawY
}

// Map returns the pixel under the raw sample (rawX, rawY).
func (c Calibration) Map(rawX, rawY int) (x, y int) {
	w, h := c.Width-1, c.Height-1
	switch c.Rotation & 3 {
	case 0:
		x = mathx.MapRange(rawX, c.XMin, c.XMax, 0, w)
		y = mathx.MapRange(rawY, c.YMin, c.YMax, 0, h)
	case 1:
		x = mathx.MapRange(rawY, c.YMin, c.YMax, w, 0)
		y = mathx.MapRange(rawX, c.XMin, c.XMax, 0, h)
	case 2:
		x = mathx.MapRange(rawX, c.XMin, c.XMax, w, 0)
		y = mathx.MapRange(rawY, c.YMin, c.YMax, h, 0)
	case 3:
		x = mathx.MapRange(rawY, c.YMin, c.YMax, 0, w)
		y = mathx.MapRange(rawX, c.XMin, c.XMax, h, 0)
	}
	if c.Rotation&4 != 0 {
		x = w - x
	}
	return x, y
}
