//go:build (cyd_1usb && !cyd_2usb) || (cyd_2usb && !cyd_1usb)

package selected

import (
	"cyd-go/board/cyd"
	"cyd-go/board/cyd/tftespi"
)

// Descriptor is the bus/panel/backlight/touch configuration for this build.
var Descriptor = cyd.New(Variant)

// Macros is the TFT_eSPI macro table for this build.
var Macros = tftespi.Table(Variant)

// Flag-independent values, repeated here so one import covers a build.
const (
	TFT_WIDTH           = tftespi.TFTWidth
	TFT_HEIGHT          = tftespi.TFTHeight
	TFT_BL              = tftespi.TFTBL
	TFT_MOSI            = tftespi.TFTMOSI
	TFT_SCLK            = tftespi.TFTSCLK
	TFT_CS              = tftespi.TFTCS
	TFT_DC              = tftespi.TFTDC
	TFT_RST             = tftespi.TFTRST
	TOUCH_CS            = tftespi.TouchCS
	SPI_READ_FREQUENCY  = tftespi.SPIReadFrequency
	SPI_TOUCH_FREQUENCY = tftespi.SPITouchFrequency
)
