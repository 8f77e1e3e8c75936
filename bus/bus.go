package bus

import (
	"fmt"
	"time"

	"github.com/ardubridge/go-ardubridge/protocol"
)

// RegisterAccessible is the capability chip drivers compose against. A Bus
// satisfies it; so does any test double.
type RegisterAccessible interface {
	// WriteRegister writes payload starting at reg of device dev.
	WriteRegister(dev, reg byte, payload []byte) error

	// ReadRegister reads n bytes starting at reg of device dev, waiting
	// delay between the register select and the read phase.
	ReadRegister(dev, reg byte, n int, delay time.Duration) ([]byte, error)
}

// Bus drives I2C peripherals behind an ArduBridge over a Transport.
//
// A Bus is synchronous: each operation completes its full send/receive
// sequence before returning and must not overlap with another operation on
// the same transport.
type Bus struct {
	transport Transport
	config    Config
}

// New creates a Bus over the given transport.
func New(t Transport, opts ...Option) *Bus {
	if t == nil {
		panic("transport cannot be nil")
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Bus{
		transport: t,
		config:    cfg,
	}
}

// WriteRaw sends payload to device dev as-is, with no register addressing.
func (b *Bus) WriteRaw(dev byte, payload []byte) error {
	start := time.Now()

	err := b.writeRaw(dev, payload)

	b.trace(Trace{Op: "write", Device: dev, Data: payload, Err: err, Elapsed: time.Since(start)})
	return err
}

func (b *Bus) writeRaw(dev byte, payload []byte) error {
	pkt, err := protocol.BuildWrite(dev, payload)
	if err != nil {
		return err
	}
	return b.roundTripStatus(pkt)
}

// WriteRegister writes payload starting at register reg of device dev.
func (b *Bus) WriteRegister(dev, reg byte, payload []byte) error {
	start := time.Now()

	err := b.writeRegister(dev, reg, payload)

	b.trace(Trace{Op: "write-register", Device: dev, Register: reg, Data: payload, Err: err, Elapsed: time.Since(start)})
	return err
}

func (b *Bus) writeRegister(dev, reg byte, payload []byte) error {
	pkt, err := protocol.BuildWriteRegister(dev, reg, payload)
	if err != nil {
		return err
	}
	return b.roundTripStatus(pkt)
}

// ReadRaw reads n bytes from device dev's current position.
func (b *Bus) ReadRaw(dev byte, n int) ([]byte, error) {
	start := time.Now()

	data, err := b.readRaw(dev, n)

	b.trace(Trace{Op: "read", Device: dev, Data: data, Err: err, Elapsed: time.Since(start)})
	return data, err
}

func (b *Bus) readRaw(dev byte, n int) ([]byte, error) {
	pkt, err := protocol.BuildReadRequest(dev, n)
	if err != nil {
		return nil, err
	}
	if err := b.transport.Send(pkt); err != nil {
		return nil, fmt.Errorf("send read request: %w", err)
	}
	return b.receiveCounted()
}

// ReadRegister reads n bytes starting at register reg of device dev.
//
// With a zero delay the register select and the read request go out in one
// combined send. With a positive delay the register select is sent and
// acknowledged first, the bus sleeps for delay (the peripheral's conversion
// or settle time), then the read request follows.
//
// In both cases a rejected or missing register-select acknowledgment aborts
// the call before any read-phase receive, so the transport's byte stream
// stays aligned for subsequent operations.
func (b *Bus) ReadRegister(dev, reg byte, n int, delay time.Duration) ([]byte, error) {
	start := time.Now()

	data, err := b.readRegister(dev, reg, n, delay)

	b.trace(Trace{Op: "read-register", Device: dev, Register: reg, Data: data, Err: err, Elapsed: time.Since(start)})
	return data, err
}

func (b *Bus) readRegister(dev, reg byte, n int, delay time.Duration) ([]byte, error) {
	sel := protocol.BuildRegisterSelect(dev, reg)
	rd, err := protocol.BuildReadContinue(n)
	if err != nil {
		return nil, err
	}

	if delay <= 0 {
		combined := make([]byte, 0, len(sel)+len(rd))
		combined = append(combined, sel...)
		combined = append(combined, rd...)
		if err := b.roundTripStatus(combined); err != nil {
			return nil, fmt.Errorf("register select: %w", err)
		}
	} else {
		if err := b.roundTripStatus(sel); err != nil {
			return nil, fmt.Errorf("register select: %w", err)
		}
		b.config.sleep(delay)
		if err := b.transport.Send(rd); err != nil {
			return nil, fmt.Errorf("send read request: %w", err)
		}
	}

	return b.receiveCounted()
}

// SetFrequency sets the bus clock, truncated to a whole 10 kHz step, then
// issues a link reset so the firmware leaves I2C packet mode. The firmware
// sends no reply; failures are reported to the logger and trace callback
// only, never to the caller.
func (b *Bus) SetFrequency(hz int) {
	start := time.Now()

	pkt := protocol.BuildSetFrequency(hz)
	err := b.transport.Send(pkt)
	if err != nil {
		b.logError("set frequency", "hz", hz, "error", err.Error())
	} else if r, ok := b.transport.(Resetter); ok {
		if err = r.Reset(); err != nil {
			b.logError("link reset after frequency change", "error", err.Error())
		}
	}

	b.trace(Trace{Op: "set-frequency", Data: pkt[2:], Err: err, Elapsed: time.Since(start)})
}

// roundTripStatus sends one packet and decodes the single status byte the
// firmware replies with after a write.
func (b *Bus) roundTripStatus(pkt []byte) error {
	if err := b.transport.Send(pkt); err != nil {
		return fmt.Errorf("send: %w", err)
	}
	reply, err := b.transport.Receive(1)
	if err != nil {
		return fmt.Errorf("receive status: %w", err)
	}
	return protocol.DecodeStatus(reply)
}

// receiveCounted receives the count byte of a read reply, then exactly that
// many payload bytes. A zero or error count returns without attempting the
// payload receive: those bytes will never arrive and waiting for them would
// desynchronize the stream.
func (b *Bus) receiveCounted() ([]byte, error) {
	reply, err := b.transport.Receive(1)
	if err != nil {
		return nil, fmt.Errorf("receive count: %w", err)
	}
	count, err := protocol.DecodeCount(reply)
	if err != nil {
		return nil, err
	}
	data, err := b.transport.Receive(count)
	if err != nil {
		return nil, fmt.Errorf("receive payload: %w", err)
	}
	return data, nil
}

// trace calls the trace callback if configured, and mirrors the outcome to
// the logger.
func (b *Bus) trace(t Trace) {
	if b.config.Trace != nil {
		b.config.Trace(t)
	}
	if b.config.Logger == nil {
		return
	}
	if t.Err != nil {
		b.config.Logger.Error("bus "+t.Op, "device", t.Device, "register", t.Register, "error", t.Err.Error())
	} else {
		b.config.Logger.Debug("bus "+t.Op, "device", t.Device, "register", t.Register, "bytes", len(t.Data))
	}
}

// logError logs an error message if a logger is configured.
func (b *Bus) logError(msg string, keysAndValues ...interface{}) {
	if b.config.Logger != nil {
		b.config.Logger.Error(msg, keysAndValues...)
	}
}
