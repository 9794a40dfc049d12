//go:build cyd_1usb && cyd_2usb

package selected

var _ = cyd_1usb_and_cyd_2usb_are_mutually_exclusive
