package cyd

import "cyd-go/errcode"

// Variant is one of the two hardware revisions of the ESP32-2432S028R.
// It is the runtime form of the DISPLAY_CYD_2USB build flag.
type Variant uint8

const (
	// ILI9341OneUSB has a single micro-USB port (DISPLAY_CYD_2USB = false).
	ILI9341OneUSB Variant = iota
	// ST7789TwoUSB has micro-USB plus USB-C (DISPLAY_CYD_2USB = true).
	ST7789TwoUSB
)

// Variants lists every variant in flag order (false, true).
var Variants = []Variant{ILI9341OneUSB, ST7789TwoUSB}

// TwoUSB is the value of DISPLAY_CYD_2USB for v.
func (v Variant) TwoUSB() bool { return v == ST7789TwoUSB }

// Driver is the panel controller fitted to v.
func (v Variant) Driver() Driver {
	if v.TwoUSB() {
		return ST7789
	}
	return ILI9341
}

func (v Variant) String() string {
	if v.TwoUSB() {
		return "2usb"
	}
	return "1usb"
}

// ParseVariant accepts the tag names ("1usb", "2usb", "cyd_1usb", "cyd_2usb"),
// the driver names ("ili9341", "st7789") and the flag values ("false", "true").
func ParseVariant(s string) (Variant, error) {
	switch s {
	case "1usb", "cyd_1usb", "ili9341", "ILI9341", "false", "0":
		return ILI9341OneUSB, nil
	case "2usb", "cyd_2usb", "st7789", "ST7789", "true", "1":
		return ST7789TwoUSB, nil
	}
	return 0, errcode.New(errcode.UnknownVariant, "parse_variant", s)
}

// Driver names a panel controller.
type Driver string

const (
	ILI9341 Driver = "ILI9341"
	ST7789  Driver = "ST7789"
)
