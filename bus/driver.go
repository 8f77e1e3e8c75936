package bus

import (
	"errors"
	"fmt"

	"golang.org/x/exp/io/i2c/driver"
)

// Opener adapts a Bus to the golang.org/x/exp/io/i2c driver model, so device
// code written against that package can run unchanged over an ArduBridge.
//
// Example:
//
//	dev, err := i2c.Open(bus.Opener{Bus: b}, 0x39)
type Opener struct {
	Bus *Bus
}

// Open implements driver.Opener. The bridge firmware has a single bus, so
// the bus number is ignored. 10-bit addressing is not supported.
func (o Opener) Open(busNum, addr int, tenbit bool) (driver.Conn, error) {
	if o.Bus == nil {
		return nil, errors.New("bus is nil")
	}
	if tenbit {
		return nil, errors.New("10-bit addresses are not supported")
	}
	if addr < 0 || addr > 0xFF {
		return nil, fmt.Errorf("address 0x%X out of range", addr)
	}
	return &conn{bus: o.Bus, dev: byte(addr)}, nil
}

type conn struct {
	bus *Bus
	dev byte
}

func (c *conn) Read(buf []byte) error {
	data, err := c.bus.ReadRaw(c.dev, len(buf))
	if err != nil {
		return err
	}
	copy(buf, data)
	return nil
}

func (c *conn) Write(buf []byte) error {
	return c.bus.WriteRaw(c.dev, buf)
}

func (c *conn) Close() error {
	return nil
}
