// Package selected holds the board configuration chosen at build time.
//
// Exactly one of the build tags cyd_1usb (ILI9341, micro-USB only) or
// cyd_2usb (ST7789, micro-USB + USB-C) must be set; it plays the role of
// the DISPLAY_CYD_2USB flag. Without a tag, or with both, the package
// does not compile and the undefined identifier in the error names the fix:
//
//	tinygo flash -target esp32 -tags cyd_2usb .
//
// Constants that only exist for one variant (ST7789_DRIVER, TFT_RGB_ORDER,
// TFT_INVERSION_OFF) are declared only in that variant's file, so code that
// refers to them fails to build for the other one.
package selected
