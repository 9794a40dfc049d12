package cyd

import (
	"cyd-go/board"
	"cyd-go/errcode"
	"cyd-go/x/conv"
	"cyd-go/x/mathx"
)

// namedPin is a signal that must be wired to a distinct GPIO.
type namedPin struct {
	name   string
	pin    int
	output bool
}

// Check reports configuration inconsistencies in d against the SoC b.
// New never calls it; it exists for tooling and tests. A touch axis with
// min > max is a valid flipped calibration and is not reported.
func Check(d *Descriptor, b board.Board) []error {
	var errs []error
	bus, panel, light, touch := d.Bus(), d.Panel(), d.Light(), d.Touch()

	if bus.Protocol != SPI {
		errs = append(errs, errcode.New(errcode.Unsupported, "bus", "protocol "+bus.Protocol.String()))
	}
	if !b.HasSPIHost(string(bus.SPIHost)) {
		errs = append(errs, errcode.New(errcode.UnknownBus, "bus", "spi_host "+string(bus.SPIHost)))
	}
	if touch.SPIHost != SoftSPI && !b.HasSPIHost(string(touch.SPIHost)) {
		errs = append(errs, errcode.New(errcode.UnknownBus, "touch", "spi_host "+string(touch.SPIHost)))
	}
	if bus.SPIMode > 3 {
		errs = append(errs, outOfRange("bus", "spi_mode", int64(bus.SPIMode)))
	}

	display := []namedPin{
		{"pin_sclk", bus.PinSCLK, true},
		{"pin_mosi", bus.PinMOSI, true},
		{"pin_miso", bus.PinMISO, false},
		{"pin_dc", bus.PinDC, true},
		{"pin_cs", panel.PinCS, true},
		{"pin_rst", panel.PinRST, true},
		{"pin_busy", panel.PinBusy, false},
		{"pin_bl", light.PinBL, true},
	}
	tp := []namedPin{
		{"tp_sclk", touch.PinSCLK, true},
		{"tp_mosi", touch.PinMOSI, true},
		{"tp_miso", touch.PinMISO, false},
		{"tp_cs", touch.PinCS, true},
		{"tp_int", touch.PinInt, false},
	}
	errs = append(errs, checkPins("display", display, b)...)
	errs = append(errs, checkPins("touch", tp, b)...)
	if touch.SPIHost == SoftSPI || touch.SPIHost != bus.SPIHost {
		// separate buses must not share any GPIO
		errs = append(errs, checkCross(display, tp)...)
	} else {
		// a shared host shares the clock and data lines only
		errs = append(errs, checkCross(display, tp[3:])...)
	}

	if panel.OffsetRotation > 7 {
		errs = append(errs, outOfRange("panel", "offset_rotation", int64(panel.OffsetRotation)))
	}
	if touch.OffsetRotation > 7 {
		errs = append(errs, outOfRange("touch", "offset_rotation", int64(touch.OffsetRotation)))
	}
	if panel.PanelWidth <= 0 || panel.PanelHeight <= 0 ||
		panel.PanelWidth+panel.OffsetX > panel.MemoryWidth ||
		panel.PanelHeight+panel.OffsetY > panel.MemoryHeight {
		errs = append(errs, errcode.New(errcode.GeometryMismatch, "panel",
			"panel "+dims(panel.PanelWidth, panel.PanelHeight)+" memory "+dims(panel.MemoryWidth, panel.MemoryHeight)))
	}

	for _, f := range []struct {
		op, name string
		hz       uint32
	}{
		{"bus", "freq_write", bus.FreqWrite},
		{"bus", "freq_read", bus.FreqRead},
		{"touch", "freq", touch.Freq},
	} {
		if !mathx.Between(f.hz, 1, b.MaxSPIHz) {
			errs = append(errs, outOfRange(f.op, f.name, int64(f.hz)))
		}
	}
	if int(light.PWMChannel) >= b.PWMChannels {
		errs = append(errs, outOfRange("backlight", "pwm_channel", int64(light.PWMChannel)))
	}
	if light.Freq == 0 {
		errs = append(errs, outOfRange("backlight", "freq", 0))
	}
	return errs
}

func checkPins(op string, pins []namedPin, b board.Board) []error {
	var errs []error
	seen := map[int]string{}
	for _, p := range pins {
		if p.pin == NoPin {
			continue
		}
		if !b.ValidGPIO(p.pin) {
			errs = append(errs, errcode.New(errcode.InvalidPin, op, p.name+" "+conv.Itoa(p.pin)))
			continue
		}
		if p.output && b.IsInputOnly(p.pin) {
			errs = append(errs, errcode.New(errcode.InputOnlyPin, op, p.name+" "+conv.Itoa(p.pin)))
		}
		if other, dup := seen[p.pin]; dup {
			errs = append(errs, errcode.New(errcode.PinConflict, op, p.name+" and "+other+" share GPIO"+conv.Itoa(p.pin)))
			continue
		}
		seen[p.pin] = p.name
	}
	return errs
}

func checkCross(a, b []namedPin) []error {
	var errs []error
	for _, x := range a {
		if x.pin == NoPin {
			continue
		}
		for _, y := range b {
			if x.pin == y.pin {
				errs = append(errs, errcode.New(errcode.PinConflict, "board", x.name+" and "+y.name+" share GPIO"+conv.Itoa(x.pin)))
			}
		}
	}
	return errs
}

func outOfRange(op, name string, v int64) error {
	return errcode.New(errcode.OutOfRange, op, name+" "+conv.Itoa(v))
}

func dims(w, h int) string { return conv.Itoa(w) + "x" + conv.Itoa(h) }
