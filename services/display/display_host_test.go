//go:build !esp32

package display

import (
	"testing"

	"cyd-go/board/cyd"
	"cyd-go/errcode"
)

func TestOpenUnsupportedOffTarget(t *testing.T) {
	dev, err := Open(cyd.New(cyd.ST7789TwoUSB))
	if dev != nil || errcode.Of(err) != errcode.Unsupported {
		t.Fatalf("Open = %v, %v", dev, err)
	}
}
