//go:build cyd_1usb && !cyd_2usb

package selected

import "cyd-go/board/cyd"

// DISPLAY_CYD_2USB = false: ILI9341, micro-USB x 1.
const (
	TwoUSB  = false
	Variant = cyd.ILI9341OneUSB
)

const (
	ILI9341_2_DRIVER = true

	SPI_FREQUENCY = 40_000_000
)
