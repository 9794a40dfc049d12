package tftespi

import (
	"bytes"
	"strconv"
	"strings"
	"testing"

	"cyd-go/board/cyd"
)

func TestExactlyOneDriverMacro(t *testing.T) {
	want := map[cyd.Variant]string{
		cyd.ILI9341OneUSB: MacroILI9341,
		cyd.ST7789TwoUSB:  MacroST7789,
	}
	for _, v := range cyd.Variants {
		got := DriverMacros(Table(v))
		if len(got) != 1 || got[0] != want[v] {
			t.Fatalf("%v: driver macros %v, want [%s]", v, got, want[v])
		}
	}
}

func TestNoDuplicateMacros(t *testing.T) {
	for _, v := range cyd.Variants {
		seen := map[string]bool{}
		for _, m := range Table(v) {
			if seen[m.Name] {
				t.Fatalf("%v: %s defined twice", v, m.Name)
			}
			seen[m.Name] = true
		}
	}
}

func TestVariantOnlyMacros(t *testing.T) {
	one, two := Table(cyd.ILI9341OneUSB), Table(cyd.ST7789TwoUSB)
	for _, name := range []string{"TFT_RGB_ORDER", "TFT_INVERSION_OFF"} {
		if Defined(one, name) {
			t.Fatalf("1usb must not define %s", name)
		}
		if !Defined(two, name) {
			t.Fatalf("2usb must define %s", name)
		}
	}
	if m, _ := Lookup(two, "TFT_RGB_ORDER"); m.Value != "TFT_BGR" {
		t.Fatalf("TFT_RGB_ORDER = %q, want TFT_BGR", m.Value)
	}
	for _, tbl := range [][]Macro{one, two} {
		if Defined(tbl, "TFT_MISO") || Defined(tbl, "TFT_INVERSION_ON") {
			t.Fatal("TFT_MISO and TFT_INVERSION_ON stay undefined")
		}
	}
}

func TestTableAgreesWithDescriptor(t *testing.T) {
	for _, v := range cyd.Variants {
		tbl := Table(v)
		d := cyd.New(v)
		bus, panel, light := d.Bus(), d.Panel(), d.Light()

		expect := map[string]int{
			"TFT_WIDTH":     panel.PanelWidth,
			"TFT_HEIGHT":    panel.PanelHeight,
			"TFT_BL":        light.PinBL,
			"TFT_MOSI":      bus.PinMOSI,
			"TFT_SCLK":      bus.PinSCLK,
			"TFT_CS":        panel.PinCS,
			"TFT_DC":        bus.PinDC,
			"TFT_RST":       panel.PinRST,
			"SPI_FREQUENCY": int(bus.FreqWrite),
		}
		for name, want := range expect {
			m, ok := Lookup(tbl, name)
			if !ok {
				t.Fatalf("%v: %s undefined", v, name)
			}
			if m.Value != strconv.Itoa(want) {
				t.Fatalf("%v: %s = %s, descriptor has %d", v, name, m.Value, want)
			}
		}
	}
}

func TestSPIFrequencyPerVariant(t *testing.T) {
	if SPIFrequency(cyd.ST7789TwoUSB) != 80_000_000 {
		t.Fatal("2usb should write at 80 MHz")
	}
	if SPIFrequency(cyd.ILI9341OneUSB) != 40_000_000 {
		t.Fatal("1usb should write at 40 MHz")
	}
}

func TestWriteHeader(t *testing.T) {
	for _, v := range cyd.Variants {
		var buf bytes.Buffer
		if err := WriteHeader(&buf, v); err != nil {
			t.Fatalf("%v: %v", v, err)
		}
		h := buf.String()

		flag := "#define DISPLAY_CYD_2USB  false"
		if v.TwoUSB() {
			flag = "#define DISPLAY_CYD_2USB  true"
		}
		if !strings.Contains(h, flag+"\n") {
			t.Fatalf("%v: missing %q", v, flag)
		}

		// Every override is preceded by its #undef inside the conditional block.
		for _, pair := range [][2]string{
			{"#undef  ILI9341_2_DRIVER", "#define ST7789_DRIVER"},
			{"#undef  SPI_FREQUENCY", "#define SPI_FREQUENCY 80000000"},
		} {
			u, d := strings.Index(h, pair[0]), strings.Index(h, pair[1])
			if u < 0 || d < 0 || u > d {
				t.Fatalf("%v: expected %q before %q", v, pair[0], pair[1])
			}
			if c := strings.LastIndex(h[:u], "#if DISPLAY_CYD_2USB"); c < 0 {
				t.Fatalf("%v: %q outside conditional block", v, pair[0])
			}
		}
		if strings.Count(h, "#if DISPLAY_CYD_2USB") != strings.Count(h, "#endif") {
			t.Fatalf("%v: unbalanced conditionals", v)
		}
		if !strings.Contains(h, "#define SPI_FREQUENCY 40000000\n") {
			t.Fatalf("%v: default SPI_FREQUENCY missing", v)
		}
		if !strings.Contains(h, "#define TFT_RST -1") {
			t.Fatalf("%v: TFT_RST missing", v)
		}
	}
}
