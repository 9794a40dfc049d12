//go:build esp32

package main

import (
	"image/color"
	"runtime"
	"time"

	"cyd-go/board"
	"cyd-go/board/cyd"
	"cyd-go/board/cyd/selected"
	"cyd-go/services/display"
)

// console forwards report lines to the USB-serial console.
type console struct{}

func (console) Write(p []byte) (int, error) {
	print(string(p))
	return len(p), nil
}

func main() {
	// Allow the USB-serial bridge to enumerate before we print.
	time.Sleep(2 * time.Second)
	println("[main] boot", selected.Variant.String(), "DISPLAY_CYD_2USB =", selected.TwoUSB)

	d := selected.Descriptor
	if errs := cyd.Check(d, board.ESP32); len(errs) > 0 {
		for _, err := range errs {
			println("[main] check:", err.Error())
		}
	}
	if err := cyd.WriteReport(console{}, d); err != nil {
		println("[main] report error:", err.Error())
	}

	println("[main] opening display …")
	dev, err := display.Open(d)
	if err != nil {
		println("[main] display error:", err.Error())
		for {
			time.Sleep(time.Second)
		}
	}
	dev.Panel().FillScreen(color.RGBA{A: 0xff})
	if bl := dev.Backlight(); bl != nil {
		bl.Set(true)
		println("[main] backlight on")
	}

	tick := time.NewTicker(50 * time.Millisecond)
	defer tick.Stop()
	n := 0
	for range tick.C {
		if t := dev.Touch(); t != nil {
			if x, y, ok := t.Read(); ok {
				println("[touch]", x, y)
				dev.Panel().SetPixel(int16(x), int16(y), color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff})
				if err := dev.Panel().Display(); err != nil {
					println("[main] display error:", err.Error())
				}
			}
		}
		if n++; n%200 == 0 {
			printMem()
		}
	}
}

// printMem prints a compact snapshot of TinyGo runtime memory stats.
func printMem() {
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)

	println(
		"[mem]",
		"alloc:", uint32(ms.Alloc),
		"heapInuse:", uint32(ms.HeapInuse),
		"mallocs:", uint32(ms.Mallocs),
		"frees:", uint32(ms.Frees),
	)
}
