// Package lgfx renders the LovyanGFX device class for the CYD board from
// the Go descriptors, so the C++ and Go views of the board cannot drift.
package lgfx

import (
	"io"
	"text/template"

	"cyd-go/board/cyd"
	"cyd-go/x/conv"
)

// ClassName is the name of the generated LGFX_Device subclass.
const ClassName = "LGFX"

type field struct {
	Name    string
	Value   string
	Comment string
}

// line is one assignment, or a pair that differs between variants.
type line struct {
	Same     *field
	One, Two *field
}

type block struct {
	Title  string
	Source string // instance the config is fetched from
	Lines  []line
	Attach string // panel association call, if any
}

type classData struct {
	Class    string
	Variant  string // set for a single-variant class
	PanelOne string
	PanelTwo string
	Blocks   []block
}

var tmpl = template.Must(template.New("lgfx").Parse(`{{define "field"}}      cfg.{{.Name}} = {{.Value}};{{if .Comment}}  // {{.Comment}}{{end}}
{{end}}#pragma once

#include <LovyanGFX.hpp>

// Generated by cydgen for the ESP32-2432S028R (CYD).
// https://github.com/espressif/arduino-esp32/blob/master/variants/jczn_2432s028r/pins_arduino.h

{{if .Variant}}// Variant: {{.Variant}} ({{.PanelOne}})

class {{.Class}} : public lgfx::LGFX_Device
{
  lgfx::{{.PanelOne}} _panel_instance;
{{else}}// false: Panel driver: ILI9341 (micro-USB x 1 type)
// true : Panel driver: ST7789  (micro-USB x 1 + USB-C x 1 type)
#ifndef DISPLAY_CYD_2USB
#error DISPLAY_CYD_2USB should be defined.
#endif

class {{.Class}} : public lgfx::LGFX_Device
{
#if DISPLAY_CYD_2USB
  lgfx::{{.PanelTwo}} _panel_instance;
#else
  lgfx::{{.PanelOne}} _panel_instance;
#endif
{{end}}  lgfx::Bus_SPI       _bus_instance;
  lgfx::Light_PWM     _light_instance;
  lgfx::Touch_XPT2046 _touch_instance;

public:
  {{.Class}}(void)
  {
{{range .Blocks}}    { // {{.Title}}
      auto cfg = {{.Source}}.config();
{{range .Lines}}{{if .Same}}{{template "field" .Same}}{{else}}#if DISPLAY_CYD_2USB
{{template "field" .Two}}#else
{{template "field" .One}}#endif
{{end}}{{end}}      {{.Source}}.config(cfg);
{{if .Attach}}      {{.Attach}}
{{end}}    }

{{end}}    setPanel(&_panel_instance);
  }
};
`))

// WriteHeader renders the full LGFX header covering both variants,
// selected on the C++ side by DISPLAY_CYD_2USB.
func WriteHeader(w io.Writer) error {
	return tmpl.Execute(w, classFor(cyd.New(cyd.ILI9341OneUSB), cyd.New(cyd.ST7789TwoUSB)))
}

// WriteClass renders the class for d alone. Every value is written
// unconditionally and DISPLAY_CYD_2USB is not consulted.
func WriteClass(w io.Writer, d *cyd.Descriptor) error {
	data := classFor(d, d)
	data.Variant = d.Variant().String()
	return tmpl.Execute(w, data)
}

func classFor(one, two *cyd.Descriptor) classData {
	return classData{
		Class:    ClassName,
		PanelOne: panelClass(one.Panel().Driver),
		PanelTwo: panelClass(two.Panel().Driver),
		Blocks: []block{
			{"bus", "_bus_instance", merge(busFields(one), busFields(two)), "_panel_instance.setBus(&_bus_instance);"},
			{"panel", "_panel_instance", merge(panelFields(one), panelFields(two)), ""},
			{"backlight", "_light_instance", merge(lightFields(one), lightFields(two)), "_panel_instance.setLight(&_light_instance);"},
			{"touch", "_touch_instance", merge(touchFields(one), touchFields(two)), "_panel_instance.setTouch(&_touch_instance);"},
		},
	}
}

func panelClass(d cyd.Driver) string { return "Panel_" + string(d) }

// merge pairs up two field lists of identical shape.
func merge(one, two []field) []line {
	out := make([]line, len(one))
	for i := range one {
		a, b := one[i], two[i]
		if a == b {
			out[i] = line{Same: &a}
		} else {
			out[i] = line{One: &a, Two: &b}
		}
	}
	return out
}

func busFields(d *cyd.Descriptor) []field {
	b := d.Bus()
	return []field{
		{"spi_host", spiHost(b.SPIHost), "ESP32: VSPI_HOST or HSPI_HOST"},
		{"spi_mode", num(int(b.SPIMode)), "SPI communication mode (0 to 3)"},
		{"freq_write", unum(b.FreqWrite), "SPI clock for transmit"},
		{"freq_read", unum(b.FreqRead), "SPI clock for receive"},
		{"spi_3wire", boolean(b.ThreeWire), "receive on the MOSI pin"},
		{"use_lock", boolean(b.UseLock), "transaction lock"},
		{"dma_channel", dma(b.DMAChannel), ""},
		{"pin_sclk", num(b.PinSCLK), "CYD_TFT_SCK"},
		{"pin_mosi", num(b.PinMOSI), "CYD_TFT_MOSI"},
		{"pin_miso", num(b.PinMISO), "CYD_TFT_MISO"},
		{"pin_dc", num(b.PinDC), "CYD_TFT_DC"},
	}
}

func panelFields(d *cyd.Descriptor) []field {
	p := d.Panel()
	return []field{
		{"pin_cs", num(p.PinCS), "CYD_TFT_CS"},
		{"pin_rst", num(p.PinRST), "RESET is connected to board RST"},
		{"pin_busy", num(p.PinBusy), ""},
		{"panel_width", num(p.PanelWidth), ""},
		{"panel_height", num(p.PanelHeight), ""},
		{"offset_x", num(p.OffsetX), ""},
		{"offset_y", num(p.OffsetY), ""},
		{"offset_rotation", num(int(p.OffsetRotation)), "0~7 (4~7 are upside down)"},
		{"dummy_read_pixel", num(int(p.DummyReadPixel)), "dummy read bits before pixel read"},
		{"dummy_read_bits", num(int(p.DummyReadBits)), "dummy read bits before non-pixel read"},
		{"readable", boolean(p.Readable), ""},
		{"invert", boolean(p.Invert), ""},
		{"rgb_order", boolean(p.RGBOrder), ""},
		{"dlen_16bit", boolean(p.DLen16Bit), ""},
		{"bus_shared", boolean(p.BusShared), "shared with the SD card"},
		{"memory_width", num(p.MemoryWidth), ""},
		{"memory_height", num(p.MemoryHeight), ""},
	}
}

func lightFields(d *cyd.Descriptor) []field {
	l := d.Light()
	return []field{
		{"pin_bl", num(l.PinBL), "CYD_TFT_BL"},
		{"invert", boolean(l.Invert), ""},
		{"freq", unum(l.Freq), "backlight PWM frequency"},
		{"pwm_channel", num(int(l.PWMChannel)), ""},
	}
}

func touchFields(d *cyd.Descriptor) []field {
	t := d.Touch()
	return []field{
		{"x_min", num(t.XMin), "raw"},
		{"x_max", num(t.XMax), "raw"},
		{"y_min", num(t.YMin), "raw"},
		{"y_max", num(t.YMax), "raw"},
		{"pin_int", num(t.PinInt), "CYD_TP_IRQ"},
		{"bus_shared", boolean(t.BusShared), ""},
		{"offset_rotation", num(int(t.OffsetRotation)), "0~7"},
		{"spi_host", spiHost(t.SPIHost), "-1: software SPI (XPT2046 only)"},
		{"freq", unum(t.Freq), ""},
		{"pin_sclk", num(t.PinSCLK), "CYD_TP_CLK"},
		{"pin_mosi", num(t.PinMOSI), "CYD_TP_MOSI"},
		{"pin_miso", num(t.PinMISO), "CYD_TP_MISO"},
		{"pin_cs", num(t.PinCS), "CYD_TP_CS"},
	}
}

func spiHost(h cyd.SPIHost) string {
	switch h {
	case cyd.HSPI:
		return "HSPI_HOST"
	case cyd.VSPI:
		return "VSPI_HOST"
	}
	return "-1"
}

func dma(c cyd.DMAChannel) string {
	if c == cyd.DMAAuto {
		return "SPI_DMA_CH_AUTO"
	}
	return num(int(c))
}

func num(n int) string     { return conv.Itoa(n) }
func unum(n uint32) string { return conv.Utoa(n) }

func boolean(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
