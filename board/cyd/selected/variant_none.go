//go:build !cyd_1usb && !cyd_2usb

package selected

var _ = DISPLAY_CYD_2USB_should_be_defined_build_with_tag_cyd_1usb_or_cyd_2usb
