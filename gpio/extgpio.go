// Package gpio implements drivers for GPIO expander chips attached to the
// I2C bus.
//
// Drivers compose against bus.RegisterAccessible instead of knowing anything
// about packets or transports, so any register-capable bus (or a test
// double) can sit underneath them.
package gpio

// ExtendedGPIO is the device-independent surface of an expander chip.
type ExtendedGPIO interface {
	// ClearAllPins drives every output low.
	ClearAllPins() error

	// SetAllPinsToOutput powers the device up with every pin configured as
	// an output.
	SetAllPinsToOutput() error

	// SetPort writes an 8-pin port in one register access.
	SetPort(port int, val byte) error

	// GetPort reads an 8-pin port in one register access.
	GetPort(port int) (byte, error)

	// SetPin drives a single pin.
	SetPin(pin int, on bool) error

	// GetPin reads a single pin.
	GetPin(pin int) (bool, error)
}

// PinPortMask splits an absolute pin number into its position within a port,
// the port number and the pin's bit mask.
func PinPortMask(pin, pinsPerPort int) (pinInPort, port int, mask byte) {
	port = pin / pinsPerPort
	pinInPort = pin % pinsPerPort
	mask = 1 << pinInPort
	return pinInPort, port, mask
}
