package cyd

// Protocol selects the bus variant. Exactly one is active per bus.
type Protocol uint8

const (
	SPI Protocol = iota
	I2C
	Parallel8
)

func (p Protocol) String() string {
	switch p {
	case SPI:
		return "spi"
	case I2C:
		return "i2c"
	case Parallel8:
		return "parallel8"
	}
	return "unknown"
}

// SPIHost names an SPI controller. The empty host drives the pins in software.
type SPIHost string

const (
	HSPI    SPIHost = "spi2"
	VSPI    SPIHost = "spi3"
	SoftSPI SPIHost = ""
)

// DMAChannel follows the ESP-IDF numbering (SPI_DMA_CH_AUTO = 3).
type DMAChannel uint8

const (
	DMADisabled DMAChannel = 0
	DMAChannel1 DMAChannel = 1
	DMAChannel2 DMAChannel = 2
	DMAAuto     DMAChannel = 3
)

// BusConfig is the transport between the host and the panel.
type BusConfig struct {
	Protocol   Protocol
	SPIHost    SPIHost
	SPIMode    uint8 // 0..3
	FreqWrite  uint32
	FreqRead   uint32
	ThreeWire  bool // receive on MOSI
	UseLock    bool // transaction lock, honoured by the consumer
	DMAChannel DMAChannel

	PinSCLK int
	PinMOSI int
	PinMISO int // NoPin disables reads
	PinDC   int
}

// PanelConfig is the geometry and electrical behaviour of the display controller.
type PanelConfig struct {
	Driver Driver

	PinCS   int
	PinRST  int
	PinBusy int

	PanelWidth     int
	PanelHeight    int
	MemoryWidth    int
	MemoryHeight   int
	OffsetX        int
	OffsetY        int
	OffsetRotation uint8 // 0..7, 4..7 are mirrored

	DummyReadPixel uint8 // dummy bits before a pixel read
	DummyReadBits  uint8 // dummy bits before any other read

	Readable  bool
	Invert    bool
	RGBOrder  bool // red and blue swapped
	DLen16Bit bool
	BusShared bool // bus shared with the SD card
}

// BacklightConfig drives the LED backlight.
type BacklightConfig struct {
	PinBL      int
	Invert     bool
	Freq       uint32 // PWM frequency in Hz
	PWMChannel uint8
}

// TouchConfig is the resistive touch controller and its raw calibration.
// XMin > XMax or YMin > YMax describe a flipped axis and are kept as given.
type TouchConfig struct {
	XMin, XMax int
	YMin, YMax int

	PinInt         int
	BusShared      bool
	OffsetRotation uint8 // 0..7

	SPIHost SPIHost // SoftSPI: bit-banged
	Freq    uint32

	PinSCLK int
	PinMOSI int
	PinMISO int
	PinCS   int
}
