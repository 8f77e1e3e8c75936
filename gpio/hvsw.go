package gpio

import (
	"fmt"

	"github.com/ardubridge/go-ardubridge/bus"
)

// HVSwitchBoard drives the high-voltage switch board: two stacked MAX3700
// expanders at consecutive device addresses, addressed as one contiguous pin
// space.
type HVSwitchBoard struct {
	devs [2]*MAX3700
}

// NewHVSwitchBoard creates a driver for the board whose first expander sits
// at device address dev; the second is at dev+1.
func NewHVSwitchBoard(b bus.RegisterAccessible, dev byte, opts ...MAX3700Option) *HVSwitchBoard {
	return &HVSwitchBoard{
		devs: [2]*MAX3700{
			NewMAX3700(b, dev, opts...),
			NewMAX3700(b, dev+1, opts...),
		},
	}
}

// InitBoard clears both expanders and configures every pin as an output.
func (h *HVSwitchBoard) InitBoard() error {
	for _, dev := range h.devs {
		if err := dev.ClearAllPins(); err != nil {
			return err
		}
		if err := dev.SetAllPinsToOutput(); err != nil {
			return err
		}
	}
	return nil
}

// ClearAllPins drives every switch off.
func (h *HVSwitchBoard) ClearAllPins() error {
	for _, dev := range h.devs {
		if err := dev.ClearAllPins(); err != nil {
			return err
		}
	}
	return nil
}

// SetAllPinsToOutput configures every pin on both expanders as an output.
func (h *HVSwitchBoard) SetAllPinsToOutput() error {
	for _, dev := range h.devs {
		if err := dev.SetAllPinsToOutput(); err != nil {
			return err
		}
	}
	return nil
}

// MaxPins returns the size of the combined pin space.
func (h *HVSwitchBoard) MaxPins() int {
	return h.devs[0].MaxPins() + h.devs[1].MaxPins()
}

// SetPin drives a single switch anywhere in the combined pin space.
func (h *HVSwitchBoard) SetPin(pin int, on bool) error {
	dev, pin, err := h.route(pin)
	if err != nil {
		return err
	}
	return dev.SetPin(pin, on)
}

// GetPin reads a single switch anywhere in the combined pin space.
func (h *HVSwitchBoard) GetPin(pin int) (bool, error) {
	dev, pin, err := h.route(pin)
	if err != nil {
		return false, err
	}
	return dev.GetPin(pin)
}

// SetPort writes an 8-pin port; ports do not straddle the two expanders.
func (h *HVSwitchBoard) SetPort(port int, val byte) error {
	dev, port, err := h.route(port)
	if err != nil {
		return err
	}
	return dev.SetPort(port, val)
}

// GetPort reads an 8-pin port.
func (h *HVSwitchBoard) GetPort(port int) (byte, error) {
	dev, port, err := h.route(port)
	if err != nil {
		return 0, err
	}
	return dev.GetPort(port)
}

// route maps a combined pin number onto the expander that owns it.
func (h *HVSwitchBoard) route(pin int) (*MAX3700, int, error) {
	if pin < 0 || pin >= h.MaxPins() {
		return nil, 0, fmt.Errorf("pin %d out of range 0-%d", pin, h.MaxPins()-1)
	}
	if first := h.devs[0].MaxPins(); pin >= first {
		return h.devs[1], pin - first, nil
	}
	return h.devs[0], pin, nil
}

var _ ExtendedGPIO = (*HVSwitchBoard)(nil)
