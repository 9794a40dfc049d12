//go:build esp32

package display

import (
	"machine"

	"cyd-go/board/cyd"
	"cyd-go/errcode"

	"tinygo.org/x/drivers"
	"tinygo.org/x/drivers/ili9341"
	"tinygo.org/x/drivers/st7789"
	"tinygo.org/x/drivers/xpt2046"
)

// Open configures the SPI host, panel, backlight and touch controller
// described by d. The backlight is left off.
func Open(d *cyd.Descriptor) (*Device, error) {
	bc, ok := d.PanelBus()
	if !ok {
		return nil, errcode.New(errcode.UnknownBus, "display", "panel has no bus")
	}
	pc := d.Panel()

	spi, err := spiHost(bc.SPIHost)
	if err != nil {
		return nil, err
	}
	if err := spi.Configure(machine.SPIConfig{
		Frequency: bc.FreqWrite,
		SCK:       pin(bc.PinSCLK),
		SDO:       pin(bc.PinMOSI),
		SDI:       pin(bc.PinMISO),
		Mode:      bc.SPIMode,
	}); err != nil {
		return nil, &errcode.E{C: errcode.Error, Op: "display", Msg: "spi configure", Err: err}
	}
	println("[display] spi", string(bc.SPIHost), "configured")

	dev := &Device{variant: d.Variant()}
	rot := drivers.Rotation(pc.OffsetRotation)

	switch pc.Driver {
	case cyd.ILI9341:
		p := ili9341.NewSPI(spi, pin(bc.PinDC), pin(pc.PinCS), pin(pc.PinRST))
		p.Configure(ili9341.Config{
			Width:            int16(pc.PanelWidth),
			Height:           int16(pc.PanelHeight),
			Rotation:         rot,
			DisplayInversion: pc.Invert,
		})
		dev.panel = p
	case cyd.ST7789:
		p := st7789.New(spi, pin(pc.PinRST), pin(bc.PinDC), pin(pc.PinCS), machine.NoPin)
		p.Configure(st7789.Config{
			Width:        int16(pc.PanelWidth),
			Height:       int16(pc.PanelHeight),
			Rotation:     rot,
			RowOffset:    int16(pc.OffsetY),
			ColumnOffset: int16(pc.OffsetX),
		})
		// Configure always inverts and assumes RGB; MADCTL is rewritten by SetRotation.
		p.InvertColors(pc.Invert)
		p.IsBGR(!pc.RGBOrder)
		if err := p.SetRotation(rot); err != nil {
			return nil, &errcode.E{C: errcode.Error, Op: "display", Msg: "st7789 rotation", Err: err}
		}
		dev.panel = &p
	default:
		return nil, errcode.New(errcode.Unsupported, "display", "driver "+string(pc.Driver))
	}
	println("[display] panel", string(pc.Driver), "ready")

	if lc, ok := d.PanelLight(); ok && lc.PinBL != cyd.NoPin {
		bl := pin(lc.PinBL)
		bl.Configure(machine.PinConfig{Mode: machine.PinOutput})
		dev.light = NewBacklight(bl, lc)
	}

	if tc, ok := d.PanelTouch(); ok {
		if tc.SPIHost != cyd.SoftSPI {
			return nil, errcode.New(errcode.Unsupported, "display", "touch on hardware spi")
		}
		t := xpt2046.New(pin(tc.PinSCLK), pin(tc.PinCS), pin(tc.PinMOSI), pin(tc.PinMISO), pin(tc.PinInt))
		if err := t.Configure(&xpt2046.Config{}); err != nil {
			return nil, &errcode.E{C: errcode.Error, Op: "display", Msg: "touch configure", Err: err}
		}
		dev.touch = NewTouch(&t, NewCalibration(tc, pc))
		println("[display] touch ready")
	}
	return dev, nil
}

func spiHost(h cyd.SPIHost) (*machine.SPI, error) {
	switch h {
	case cyd.HSPI:
		return machine.SPI2, nil
	case cyd.VSPI:
		return machine.SPI3, nil
	}
	return nil, errcode.New(errcode.UnknownBus, "display", "spi host "+string(h))
}

func pin(n int) machine.Pin {
	if n == cyd.NoPin {
		return machine.NoPin
	}
	return machine.Pin(n)
}
