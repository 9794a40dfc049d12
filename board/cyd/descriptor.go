package cyd

// The instance types below hold one committed config each. Construction
// fetches a copy with config(), assigns fields, and commits it back with
// apply(). Nothing outside New calls apply.

type busInstance struct{ cfg BusConfig }

func (b *busInstance) config() BusConfig   { return b.cfg }
func (b *busInstance) apply(cfg BusConfig) { b.cfg = cfg }

type lightInstance struct{ cfg BacklightConfig }

func (l *lightInstance) config() BacklightConfig   { return l.cfg }
func (l *lightInstance) apply(cfg BacklightConfig) { l.cfg = cfg }

type touchInstance struct{ cfg TouchConfig }

func (t *touchInstance) config() TouchConfig   { return t.cfg }
func (t *touchInstance) apply(cfg TouchConfig) { t.cfg = cfg }

type panelInstance struct {
	cfg   PanelConfig
	bus   *busInstance
	light *lightInstance
	touch *touchInstance
}

func (p *panelInstance) config() PanelConfig   { return p.cfg }
func (p *panelInstance) apply(cfg PanelConfig) { p.cfg = cfg }

func (p *panelInstance) setBus(b *busInstance)     { p.bus = b }
func (p *panelInstance) setLight(l *lightInstance) { p.light = l }
func (p *panelInstance) setTouch(t *touchInstance) { p.touch = t }

// Descriptor is the assembled bus, panel, backlight and touch configuration
// for one board variant. It is built once and never changes.
type Descriptor struct {
	variant Variant

	bus   busInstance
	panel panelInstance
	light lightInstance
	touch touchInstance
}

// New assembles the descriptor for v. It cannot fail: a wrong pin is a
// wiring mistake that only the hardware will report.
func New(v Variant) *Descriptor {
	if v != ST7789TwoUSB {
		v = ILI9341OneUSB
	}
	d := &Descriptor{variant: v}
	d.panel.cfg = defaultPanelConfig(v.Driver())
	d.bus.cfg = defaultBusConfig()
	d.light.cfg = defaultBacklightConfig()
	d.touch.cfg = defaultTouchConfig()

	{ // bus
		cfg := d.bus.config()
		cfg.Protocol = SPI
		cfg.SPIHost = HSPI
		cfg.SPIMode = 0
		if v.TwoUSB() {
			cfg.FreqWrite = 80_000_000
		} else {
			cfg.FreqWrite = 40_000_000
		}
		cfg.FreqRead = 16_000_000
		cfg.ThreeWire = false
		cfg.UseLock = true
		cfg.DMAChannel = DMAAuto
		cfg.PinSCLK = CYD_TFT_SCK
		cfg.PinMOSI = CYD_TFT_MOSI
		cfg.PinMISO = CYD_TFT_MISO
		cfg.PinDC = CYD_TFT_DC
		d.bus.apply(cfg)
		d.panel.setBus(&d.bus)
	}

	{ // panel
		cfg := d.panel.config()
		cfg.PinCS = CYD_TFT_CS
		cfg.PinRST = CYD_TFT_RST
		cfg.PinBusy = NoPin

		cfg.PanelWidth = 240
		cfg.PanelHeight = 320
		cfg.OffsetX = 0
		cfg.OffsetY = 0
		if v.TwoUSB() {
			cfg.OffsetRotation = 0
			cfg.DummyReadPixel = 16
		} else {
			cfg.OffsetRotation = 2
			cfg.DummyReadPixel = 8
		}
		cfg.DummyReadBits = 1
		cfg.Readable = true
		cfg.Invert = false
		cfg.RGBOrder = false
		cfg.DLen16Bit = false
		cfg.BusShared = false

		cfg.MemoryWidth = 240
		cfg.MemoryHeight = 320
		d.panel.apply(cfg)
	}

	{ // backlight
		cfg := d.light.config()
		cfg.PinBL = CYD_TFT_BL
		cfg.Invert = false
		cfg.Freq = 12000
		cfg.PWMChannel = 7
		d.light.apply(cfg)
		d.panel.setLight(&d.light)
	}

	{ // touch
		cfg := d.touch.config()
		cfg.XMin = 240
		cfg.XMax = 3800
		cfg.YMin = 3700
		cfg.YMax = 200
		cfg.PinInt = CYD_TP_IRQ
		cfg.BusShared = false
		if v.TwoUSB() {
			cfg.OffsetRotation = 2
		} else {
			cfg.OffsetRotation = 0
		}

		cfg.SPIHost = SoftSPI
		cfg.Freq = 1_000_000
		cfg.PinSCLK = CYD_TP_CLK
		cfg.PinMOSI = CYD_TP_MOSI
		cfg.PinMISO = CYD_TP_MISO
		cfg.PinCS = CYD_TP_CS
		d.touch.apply(cfg)
		d.panel.setTouch(&d.touch)
	}

	return d
}

func (d *Descriptor) Variant() Variant       { return d.variant }
func (d *Descriptor) Bus() BusConfig         { return d.bus.cfg }
func (d *Descriptor) Panel() PanelConfig     { return d.panel.cfg }
func (d *Descriptor) Light() BacklightConfig { return d.light.cfg }
func (d *Descriptor) Touch() TouchConfig     { return d.touch.cfg }

// PanelBus follows the panel's bus association. ok is false when the
// panel has no bus.
func (d *Descriptor) PanelBus() (cfg BusConfig, ok bool) {
	if d.panel.bus == nil {
		return BusConfig{}, false
	}
	return d.panel.bus.cfg, true
}

// PanelLight follows the panel's backlight association.
func (d *Descriptor) PanelLight() (cfg BacklightConfig, ok bool) {
	if d.panel.light == nil {
		return BacklightConfig{}, false
	}
	return d.panel.light.cfg, true
}

// PanelTouch follows the panel's touch association.
func (d *Descriptor) PanelTouch() (cfg TouchConfig, ok bool) {
	if d.panel.touch == nil {
		return TouchConfig{}, false
	}
	return d.panel.touch.cfg, true
}

// Defaults before board-specific assignment. Unused signals are NoPin.

func defaultBusConfig() BusConfig {
	return BusConfig{
		Protocol:   SPI,
		SPIHost:    VSPI,
		FreqWrite:  40_000_000,
		FreqRead:   16_000_000,
		UseLock:    true,
		DMAChannel: DMAAuto,
		PinSCLK:    NoPin,
		PinMOSI:    NoPin,
		PinMISO:    NoPin,
		PinDC:      NoPin,
	}
}

func defaultPanelConfig(drv Driver) PanelConfig {
	return PanelConfig{
		Driver:         drv,
		PinCS:          NoPin,
		PinRST:         NoPin,
		PinBusy:        NoPin,
		PanelWidth:     240,
		PanelHeight:    320,
		MemoryWidth:    240,
		MemoryHeight:   320,
		DummyReadPixel: 8,
		DummyReadBits:  1,
		Readable:       true,
	}
}

func defaultBacklightConfig() BacklightConfig {
	return BacklightConfig{PinBL: NoPin, Freq: 1200, PWMChannel: 7}
}

func defaultTouchConfig() TouchConfig {
	return TouchConfig{
		XMin: 0, XMax: 4095,
		YMin: 0, YMax: 4095,
		PinInt:  NoPin,
		SPIHost: SoftSPI,
		Freq:    1_000_000,
		PinSCLK: NoPin,
		PinMOSI: NoPin,
		PinMISO: NoPin,
		PinCS:   NoPin,
	}
}
