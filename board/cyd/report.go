package cyd

import (
	"io"

	"cyd-go/x/conv"
)

// WriteReport writes one "key = value" line per setting of d. It avoids fmt
// so the firmware can print it over the serial console.
func WriteReport(w io.Writer, d *Descriptor) error {
	r := reporter{w: w}
	bus, panel, light, touch := d.Bus(), d.Panel(), d.Light(), d.Touch()

	r.str("variant", d.Variant().String())
	r.bool("display_cyd_2usb", d.Variant().TwoUSB())
	r.str("panel_driver", string(panel.Driver))

	r.str("bus.protocol", bus.Protocol.String())
	r.str("bus.spi_host", string(bus.SPIHost))
	r.uint("bus.spi_mode", uint64(bus.SPIMode))
	r.uint("bus.freq_write", uint64(bus.FreqWrite))
	r.uint("bus.freq_write_effective", uint64(EffectiveSPIClock(bus.FreqWrite)))
	r.uint("bus.freq_read", uint64(bus.FreqRead))
	r.uint("bus.freq_read_effective", uint64(EffectiveSPIClock(bus.FreqRead)))
	r.bool("bus.spi_3wire", bus.ThreeWire)
	r.bool("bus.use_lock", bus.UseLock)
	r.uint("bus.dma_channel", uint64(bus.DMAChannel))
	r.int("bus.pin_sclk", bus.PinSCLK)
	r.int("bus.pin_mosi", bus.PinMOSI)
	r.int("bus.pin_miso", bus.PinMISO)
	r.int("bus.pin_dc", bus.PinDC)

	r.int("panel.pin_cs", panel.PinCS)
	r.int("panel.pin_rst", panel.PinRST)
	r.int("panel.pin_busy", panel.PinBusy)
	r.int("panel.panel_width", panel.PanelWidth)
	r.int("panel.panel_height", panel.PanelHeight)
	r.int("panel.memory_width", panel.MemoryWidth)
	r.int("panel.memory_height", panel.MemoryHeight)
	r.int("panel.offset_x", panel.OffsetX)
	r.int("panel.offset_y", panel.OffsetY)
	r.uint("panel.offset_rotation", uint64(panel.OffsetRotation))
	r.uint("panel.dummy_read_pixel", uint64(panel.DummyReadPixel))
	r.uint("panel.dummy_read_bits", uint64(panel.DummyReadBits))
	r.bool("panel.readable", panel.Readable)
	r.bool("panel.invert", panel.Invert)
	r.bool("panel.rgb_order", panel.RGBOrder)
	r.bool("panel.dlen_16bit", panel.DLen16Bit)
	r.bool("panel.bus_shared", panel.BusShared)

	r.int("light.pin_bl", light.PinBL)
	r.bool("light.invert", light.Invert)
	r.uint("light.freq", uint64(light.Freq))
	r.uint("light.pwm_channel", uint64(light.PWMChannel))

	r.int("touch.x_min", touch.XMin)
	r.int("touch.x_max", touch.XMax)
	r.int("touch.y_min", touch.YMin)
	r.int("touch.y_max", touch.YMax)
	r.int("touch.pin_int", touch.PinInt)
	r.bool("touch.bus_shared", touch.BusShared)
	r.uint("touch.offset_rotation", uint64(touch.OffsetRotation))
	if touch.SPIHost == SoftSPI {
		r.str("touch.spi_host", "soft")
	} else {
		r.str("touch.spi_host", string(touch.SPIHost))
	}
	r.uint("touch.freq", uint64(touch.Freq))
	r.int("touch.pin_sclk", touch.PinSCLK)
	r.int("touch.pin_mosi", touch.PinMOSI)
	r.int("touch.pin_miso", touch.PinMISO)
	r.int("touch.pin_cs", touch.PinCS)
	return r.err
}

type reporter struct {
	w   io.Writer
	buf []byte
	num [20]byte
	err error
}

func (r *reporter) line(key string, val []byte) {
	if r.err != nil {
		return
	}
	r.buf = append(r.buf[:0], key...)
	r.buf = append(r.buf, " = "...)
	r.buf = append(r.buf, val...)
	r.buf = append(r.buf, '\n')
	_, r.err = r.w.Write(r.buf)
}

func (r *reporter) str(key, v string)         { r.line(key, []byte(v)) }
func (r *reporter) int(key string, v int)     { r.line(key, conv.AppendInt(r.num[:0], v)) }
func (r *reporter) uint(key string, v uint64) { r.line(key, conv.AppendUint(r.num[:0], v)) }

func (r *reporter) bool(key string, v bool) {
	if v {
		r.str(key, "true")
	} else {
		r.str(key, "false")
	}
}
