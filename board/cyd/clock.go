package cyd

import (
	"cyd-go/board"
	"cyd-go/x/mathx"
)

// EffectiveSPIClock is the clock the ESP32 SPI peripheral actually produces
// for a requested frequency: the APB clock divided by the smallest integer
// that does not exceed the request.
func EffectiveSPIClock(freq uint32) uint32 {
	apb := board.ESP32.MaxSPIHz
	if freq == 0 {
		return 0
	}
	if freq >= apb {
		return apb
	}
	return apb / mathx.CeilDiv(apb, freq)
}
