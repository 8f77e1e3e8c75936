package gpio

import (
	"fmt"
	"time"

	"github.com/ardubridge/go-ardubridge/bus"
)

// MAX3700 register map. The pin and port register banks start eight
// registers into their pages; the offset is folded in here once.
const (
	max3700ModeReg       = 0x04
	max3700BankModeReg   = 0x09
	max3700PinReg        = 0x24
	max3700PortReg       = 0x44
	max3700PinZeroOffset = 8

	max3700MaxPorts = 7
	max3700MaxPins  = 20
)

// Mode is the MAX3700 operating mode.
type Mode int

const (
	ModeShutdown Mode = 0
	ModeNormal   Mode = 1
)

// Bank mode value configuring a port's four pin pairs as outputs.
const bankAllOutput = 0x55

// MAX3700 drives a MAX3700-family I2C GPIO expander.
type MAX3700 struct {
	bus   bus.RegisterAccessible
	dev   byte
	delay time.Duration
}

// MAX3700Option configures the driver.
type MAX3700Option func(*MAX3700)

// WithReadDelay sets a settle time between register select and read for
// slow bus clocks. The chip itself needs none.
func WithReadDelay(d time.Duration) MAX3700Option {
	return func(m *MAX3700) {
		m.delay = d
	}
}

// NewMAX3700 creates a driver for the expander at device address dev.
func NewMAX3700(b bus.RegisterAccessible, dev byte, opts ...MAX3700Option) *MAX3700 {
	if b == nil {
		panic("bus cannot be nil")
	}
	m := &MAX3700{bus: b, dev: dev}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// SetMode sets the operating mode, optionally enabling transition detection
// on the upper pins.
func (m *MAX3700) SetMode(mode Mode, transitionDetection bool) error {
	val := byte(0)
	if mode != ModeShutdown {
		val = 1
	}
	if transitionDetection {
		val |= 1 << 7
	}
	return m.bus.WriteRegister(m.dev, max3700ModeReg, []byte{val})
}

// GetMode reads back the operating mode and transition detection flag.
func (m *MAX3700) GetMode() (Mode, bool, error) {
	reply, err := m.readRegisters(max3700ModeReg, 1)
	if err != nil {
		return ModeShutdown, false, err
	}
	return Mode(reply[0] & 1), reply[0]&(1<<7) != 0, nil
}

// SetBankMode writes pin-pair direction configuration for consecutive banks
// starting at bank. Values past the last bank are dropped.
func (m *MAX3700) SetBankMode(bank int, vals []byte) error {
	if bank < 0 || bank >= max3700MaxPorts {
		return fmt.Errorf("bank %d out of range 0-%d", bank, max3700MaxPorts-1)
	}
	if n := max3700MaxPorts - bank; len(vals) > n {
		vals = vals[:n]
	}
	return m.bus.WriteRegister(m.dev, max3700BankModeReg+byte(bank), vals)
}

// GetBankMode reads direction configuration for n consecutive banks starting
// at bank, clamped to the last bank.
func (m *MAX3700) GetBankMode(bank, n int) ([]byte, error) {
	if bank < 0 || bank >= max3700MaxPorts {
		return nil, fmt.Errorf("bank %d out of range 0-%d", bank, max3700MaxPorts-1)
	}
	if limit := max3700MaxPorts - bank; n > limit {
		n = limit
	}
	return m.readRegisters(max3700BankModeReg+byte(bank), n)
}

// SetAllPinsToOutput powers the chip up and configures every pin pair as an
// output.
func (m *MAX3700) SetAllPinsToOutput() error {
	if err := m.SetMode(ModeNormal, false); err != nil {
		return err
	}
	vals := make([]byte, max3700MaxPorts)
	for i := range vals {
		vals[i] = bankAllOutput
	}
	return m.SetBankMode(0, vals)
}

// SetPort writes the eight pins starting at pin offset port in one access.
func (m *MAX3700) SetPort(port int, val byte) error {
	reg, err := m.portRegister(max3700PortReg, port)
	if err != nil {
		return err
	}
	return m.bus.WriteRegister(m.dev, reg, []byte{val})
}

// GetPort reads the eight pins starting at pin offset port in one access.
func (m *MAX3700) GetPort(port int) (byte, error) {
	reg, err := m.portRegister(max3700PortReg, port)
	if err != nil {
		return 0, err
	}
	reply, err := m.readRegisters(reg, 1)
	if err != nil {
		return 0, err
	}
	return reply[0], nil
}

// SetPin drives a single pin.
func (m *MAX3700) SetPin(pin int, on bool) error {
	reg, err := m.portRegister(max3700PinReg, pin)
	if err != nil {
		return err
	}
	val := byte(0)
	if on {
		val = 1
	}
	return m.bus.WriteRegister(m.dev, reg, []byte{val})
}

// GetPin reads a single pin.
func (m *MAX3700) GetPin(pin int) (bool, error) {
	reg, err := m.portRegister(max3700PinReg, pin)
	if err != nil {
		return false, err
	}
	reply, err := m.readRegisters(reg, 1)
	if err != nil {
		return false, err
	}
	return reply[0] != 0, nil
}

// ClearAllPins drives every output low, one 8-pin port per access.
func (m *MAX3700) ClearAllPins() error {
	for port := 0; port < max3700MaxPins+max3700PinZeroOffset; port += 8 {
		if err := m.SetPort(port, 0x00); err != nil {
			return err
		}
	}
	return nil
}

// MaxPins returns the number of pins the chip exposes.
func (m *MAX3700) MaxPins() int {
	return max3700MaxPins
}

func (m *MAX3700) portRegister(base byte, pin int) (byte, error) {
	if pin < 0 || pin > max3700MaxPins+max3700PinZeroOffset {
		return 0, fmt.Errorf("pin %d out of range", pin)
	}
	return base + max3700PinZeroOffset + byte(pin), nil
}

func (m *MAX3700) readRegisters(reg byte, n int) ([]byte, error) {
	return m.bus.ReadRegister(m.dev, reg, n, m.delay)
}

var _ ExtendedGPIO = (*MAX3700)(nil)
