package board

// Board describes what the SoC can do: controllers present, GPIO range and
// capability limits such as the fastest SPI clock. It holds no wiring or
// operating choices (pins in use, configured clock rates).
type Board struct {
	Name             string
	GPIOMin, GPIOMax int

	// GPIOs without an output driver. They may carry inputs only
	// (MISO, interrupt lines).
	InputOnly []int

	// GPIO numbers that do not exist on the package.
	Missing []int

	// Controllers present (identities only, e.g. "spi2", "spi3").
	SPI []string

	PWMChannels int    // LEDC channels
	MaxSPIHz    uint32 // APB clock; SPI clocks are integer divisions of it
}

// ESP32 is the ESP32-D0WD found on the 2432S028R module.
var ESP32 = Board{
	Name:    "esp32",
	GPIOMin: 0,
	GPIOMax: 39,

	InputOnly: []int{34, 35, 36, 37, 38, 39},
	Missing:   []int{20, 24, 28, 29, 30, 31},

	SPI: []string{"spi2", "spi3"},

	PWMChannels: 16,
	MaxSPIHz:    80_000_000,
}

// ValidGPIO reports whether n names a GPIO present on the SoC.
func (b Board) ValidGPIO(n int) bool {
	if n < b.GPIOMin || n > b.GPIOMax {
		return false
	}
	for _, m := range b.Missing {
		if m == n {
			return false
		}
	}
	return true
}

// IsInputOnly reports whether n cannot drive an output.
func (b Board) IsInputOnly(n int) bool {
	for _, p := range b.InputOnly {
		if p == n {
			return true
		}
	}
	return false
}

// HasSPIHost reports whether the SPI controller id exists.
func (b Board) HasSPIHost(id string) bool {
	for _, s := range b.SPI {
		if s == id {
			return true
		}
	}
	return false
}
