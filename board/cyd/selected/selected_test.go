//go:build (cyd_1usb && !cyd_2usb) || (cyd_2usb && !cyd_1usb)

package selected

import (
	"testing"

	"cyd-go/board/cyd"
	"cyd-go/board/cyd/tftespi"
)

func TestSelectedAgreesWithTables(t *testing.T) {
	if Variant.TwoUSB() != TwoUSB {
		t.Fatalf("Variant %v disagrees with TwoUSB=%v", Variant, TwoUSB)
	}
	if Descriptor.Variant() != Variant {
		t.Fatalf("Descriptor built for %v, want %v", Descriptor.Variant(), Variant)
	}
	if got := Descriptor.Bus().FreqWrite; got != SPI_FREQUENCY {
		t.Fatalf("freq_write %d != SPI_FREQUENCY %d", got, SPI_FREQUENCY)
	}
	if got := tftespi.SPIFrequency(Variant); got != SPI_FREQUENCY {
		t.Fatalf("table SPI_FREQUENCY %d != const %d", got, SPI_FREQUENCY)
	}
	p := Descriptor.Panel()
	if p.PanelWidth != TFT_WIDTH || p.PanelHeight != TFT_HEIGHT {
		t.Fatalf("panel %dx%d != TFT %dx%d", p.PanelWidth, p.PanelHeight, TFT_WIDTH, TFT_HEIGHT)
	}
	if got := tftespi.DriverMacros(Macros); len(got) != 1 {
		t.Fatalf("driver macros %v, want exactly one", got)
	}
	if (p.Driver == cyd.ST7789) != TwoUSB {
		t.Fatalf("panel driver %s for TwoUSB=%v", Descriptor.Panel().Driver, TwoUSB)
	}
}
