package cyd

// NoPin marks an unconnected or unused signal.
const NoPin = -1

// Display (HSPI)
const (
	CYD_TFT_SCK  = 14
	CYD_TFT_MOSI = 13
	CYD_TFT_MISO = 12
	CYD_TFT_DC   = 2
	CYD_TFT_CS   = 15
	CYD_TFT_BL   = 21

	// RESET is tied to the board reset line.
	CYD_TFT_RST = NoPin
)

// Resistive touch (XPT2046, bit-banged)
const (
	CYD_TP_IRQ  = 36
	CYD_TP_MOSI = 32
	CYD_TP_MISO = 39
	CYD_TP_CLK  = 25
	CYD_TP_CS   = 33
)
