//go:build !esp32

package display

import (
	"cyd-go/board/cyd"
	"cyd-go/errcode"
)

// Open has no hardware to drive off-target.
func Open(d *cyd.Descriptor) (*Device, error) {
	return nil, errcode.New(errcode.Unsupported, "display", "open "+d.Variant().String()+" needs esp32")
}
