package board

import "testing"

func TestESP32GPIOs(t *testing.T) {
	for _, n := range []int{0, 2, 12, 13, 14, 15, 21, 25, 32, 33, 36, 39} {
		if !ESP32.ValidGPIO(n) {
			t.Fatalf("GPIO%d should be valid", n)
		}
	}
	for _, n := range []int{-1, 20, 24, 28, 31, 40} {
		if ESP32.ValidGPIO(n) {
			t.Fatalf("GPIO%d should be invalid", n)
		}
	}
}

func TestESP32InputOnly(t *testing.T) {
	for _, n := range []int{34, 35, 36, 37, 38, 39} {
		if !ESP32.IsInputOnly(n) {
			t.Fatalf("GPIO%d should be input-only", n)
		}
	}
	for _, n := range []int{2, 13, 14, 15, 21, 25, 32, 33} {
		if ESP32.IsInputOnly(n) {
			t.Fatalf("GPIO%d should drive outputs", n)
		}
	}
}

func TestESP32SPIHosts(t *testing.T) {
	if !ESP32.HasSPIHost("spi2") || !ESP32.HasSPIHost("spi3") {
		t.Fatal("expected spi2 and spi3")
	}
	if ESP32.HasSPIHost("spi1") {
		t.Fatal("spi1 is reserved for flash")
	}
}
