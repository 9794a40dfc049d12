//go:build cyd_2usb && !cyd_1usb

package selected

import (
	"cyd-go/board/cyd"
	"cyd-go/board/cyd/tftespi"
)

// DISPLAY_CYD_2USB = true: ST7789, micro-USB x 1 + USB-C x 1.
const (
	TwoUSB  = true
	Variant = cyd.ST7789TwoUSB
)

const (
	ST7789_DRIVER = true

	TFT_RGB_ORDER     = tftespi.TFT_BGR
	TFT_INVERSION_OFF = true

	SPI_FREQUENCY = 80_000_000
)
