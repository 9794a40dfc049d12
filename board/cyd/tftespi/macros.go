// Package tftespi is the TFT_eSPI User_Setup macro table for the CYD board.
//
// The table is flat and exhaustive: every macro the library reads is listed
// with its value, and a macro absent from the table is undefined. One table
// exists per variant; WriteHeader folds the two back into a single
// User_Setup.h keyed on DISPLAY_CYD_2USB.
package tftespi

import (
	"cyd-go/board/cyd"
	"cyd-go/x/conv"
)

// Section groups macros the way User_Setup.h does.
type Section uint8

const (
	SectionInfo Section = iota
	SectionDriver
	SectionPins
	SectionFonts
	SectionOther
)

// Macro is one #define. Value is empty for flag macros.
type Macro struct {
	Section Section
	Name    string
	Value   string
	Comment string
}

// Color order values understood by TFT_RGB_ORDER.
const (
	TFT_RGB = 0
	TFT_BGR = 1
)

// Flag-independent values.
const (
	UserSetupInfo = "User_Setup_CYD"

	TFTWidth  = 240
	TFTHeight = 320

	TFTBL   = cyd.CYD_TFT_BL
	TFTMOSI = cyd.CYD_TFT_MOSI
	TFTSCLK = cyd.CYD_TFT_SCK
	TFTCS   = cyd.CYD_TFT_CS
	TFTDC   = cyd.CYD_TFT_DC
	TFTRST  = cyd.NoPin
	// TFT_eSPI cannot drive a touch controller on a separate SPI bus.
	TouchCS = cyd.NoPin

	SPIReadFrequency  = 20_000_000
	SPITouchFrequency = 2_500_000
)

// SPIFrequency is the write clock for v.
func SPIFrequency(v cyd.Variant) uint32 {
	if v.TwoUSB() {
		return 80_000_000
	}
	return 40_000_000
}

// Driver macro names.
const (
	MacroILI9341 = "ILI9341_2_DRIVER"
	MacroST7789  = "ST7789_DRIVER"
)

var driverMacros = []string{
	"ILI9341_DRIVER", MacroILI9341, MacroST7789, "ST7735_DRIVER", "ILI9163_DRIVER",
	"S6D02A1_DRIVER", "HX8357D_DRIVER", "ILI9481_DRIVER", "ILI9486_DRIVER",
	"ILI9488_DRIVER", "ST7789_2_DRIVER", "R61581_DRIVER", "RM68140_DRIVER",
	"ST7796_DRIVER", "SSD1351_DRIVER", "SSD1963_480_DRIVER", "GC9A01_DRIVER",
	"ILI9225_DRIVER",
}

// Table returns the defined macros for v in header order.
func Table(v cyd.Variant) []Macro {
	two := v.TwoUSB()
	t := []Macro{
		{SectionInfo, "USER_SETUP_INFO", `"` + UserSetupInfo + `"`, ""},
	}

	if two {
		t = append(t,
			Macro{SectionDriver, MacroST7789, "", ""},
			Macro{SectionDriver, "TFT_RGB_ORDER", "TFT_BGR", "Colour order Blue-Green-Red"},
		)
	} else {
		t = append(t, Macro{SectionDriver, MacroILI9341, "", "Alternative ILI9341 driver, see https://github.com/Bodmer/TFT_eSPI/issues/1172"})
	}
	t = append(t,
		Macro{SectionDriver, "TFT_WIDTH", conv.Itoa(TFTWidth), "ST7789 240 x 240 and 240 x 320"},
		Macro{SectionDriver, "TFT_HEIGHT", conv.Itoa(TFTHeight), "ST7789 240 x 320"},
	)
	if two {
		t = append(t, Macro{SectionDriver, "TFT_INVERSION_OFF", "", ""})
	}

	t = append(t,
		Macro{SectionPins, "TFT_BL", conv.Itoa(TFTBL), "LED back-light control pin"},
		Macro{SectionPins, "TFT_BACKLIGHT_ON", "HIGH", "Level to turn ON back-light (HIGH or LOW)"},
		Macro{SectionPins, "TFT_MOSI", conv.Itoa(TFTMOSI), ""},
		Macro{SectionPins, "TFT_SCLK", conv.Itoa(TFTSCLK), ""},
		Macro{SectionPins, "TFT_CS", conv.Itoa(TFTCS), "Chip select control pin"},
		Macro{SectionPins, "TFT_DC", conv.Itoa(TFTDC), "Data Command control pin"},
		Macro{SectionPins, "TFT_RST", conv.Itoa(TFTRST), "display RESET is connected to ESP32 board RST"},
		Macro{SectionPins, "TOUCH_CS", conv.Itoa(TouchCS), "touch screen is on a different SPI bus (use XPT2046_Touchscreen)"},

		Macro{SectionFonts, "LOAD_GLCD", "", "Font 1. Original Adafruit 8 pixel font needs ~1820 bytes in FLASH"},
		Macro{SectionFonts, "LOAD_FONT2", "", "Font 2. Small 16 pixel high font, needs ~3534 bytes in FLASH, 96 characters"},
		Macro{SectionFonts, "LOAD_FONT4", "", "Font 4. Medium 26 pixel high font, needs ~5848 bytes in FLASH, 96 characters"},
		Macro{SectionFonts, "LOAD_FONT6", "", "Font 6. Large 48 pixel font, needs ~2666 bytes in FLASH, only characters 1234567890:-.apm"},
		Macro{SectionFonts, "LOAD_FONT7", "", "Font 7. 7 segment 48 pixel font, needs ~2438 bytes in FLASH, only characters 1234567890:-."},
		Macro{SectionFonts, "LOAD_FONT8", "", "Font 8. Large 75 pixel font needs ~3256 bytes in FLASH, only characters 1234567890:-."},
		Macro{SectionFonts, "LOAD_GFXFF", "", "FreeFonts. Include access to the 48 Adafruit_GFX free fonts FF1 to FF48 and custom fonts"},
		Macro{SectionFonts, "SMOOTH_FONT", "", ""},

		Macro{SectionOther, "SPI_FREQUENCY", conv.Utoa(SPIFrequency(v)), ""},
		Macro{SectionOther, "SPI_READ_FREQUENCY", conv.Itoa(SPIReadFrequency), "Optional reduced SPI frequency for reading TFT"},
		Macro{SectionOther, "SPI_TOUCH_FREQUENCY", conv.Itoa(SPITouchFrequency), "The XPT2046 requires a lower SPI clock rate of 2.5MHz"},
	)
	return t
}

// Lookup returns the macro called name.
func Lookup(t []Macro, name string) (Macro, bool) {
	for _, m := range t {
		if m.Name == name {
			return m, true
		}
	}
	return Macro{}, false
}

// Defined reports whether name is defined in t.
func Defined(t []Macro, name string) bool {
	_, ok := Lookup(t, name)
	return ok
}

// DriverMacros lists the panel driver macros defined in t.
func DriverMacros(t []Macro) []string {
	var out []string
	for _, name := range driverMacros {
		if Defined(t, name) {
			out = append(out, name)
		}
	}
	return out
}
