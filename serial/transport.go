// Package serial provides the concrete bus.Transport over a serial port or
// any byte stream.
//
// The ArduBridge link is a plain byte stream: this transport does no framing
// of its own, it only guarantees the exact-count receive semantics the bus
// requires. Open it on a real port:
//
//	t, err := serial.Open("/dev/ttyUSB0", 115200)
//	if err != nil {
//	    return err
//	}
//	defer t.Close()
//	b := bus.New(t)
package serial

import (
	"errors"
	"fmt"
	"io"
	"time"

	serialport "go.bug.st/serial"
)

// ErrReadTimeout indicates fewer bytes than requested arrived before the
// port's read timeout elapsed.
var ErrReadTimeout = errors.New("serial: read timed out")

// DefaultReadTimeout bounds a single Receive wait. Bus replies are a handful
// of bytes; anything slower than this means the firmware is gone.
const DefaultReadTimeout = 500 * time.Millisecond

// Transport implements bus.Transport over a byte stream.
type Transport struct {
	rw       io.ReadWriter
	closer   io.Closer
	resetSeq []byte
}

// TransportOption configures a Transport.
type TransportOption func(*Transport)

// WithResetSequence sets the bytes Reset writes to the link. The sequence is
// firmware-build specific; without one, Reset is a no-op on the wire.
func WithResetSequence(seq []byte) TransportOption {
	return func(t *Transport) {
		t.resetSeq = append([]byte(nil), seq...)
	}
}

// New wraps an already-open byte stream. The stream's own read timeout
// governs how long Receive blocks; a reader that returns zero bytes signals
// a timeout.
func New(rw io.ReadWriter, opts ...TransportOption) *Transport {
	t := &Transport{rw: rw}
	for _, opt := range opts {
		opt(t)
	}
	if c, ok := rw.(io.Closer); ok {
		t.closer = c
	}
	return t
}

// Open opens a serial port at the given baud rate with the default read
// timeout and wraps it in a Transport.
func Open(portName string, baud int, opts ...TransportOption) (*Transport, error) {
	port, err := serialport.Open(portName, &serialport.Mode{BaudRate: baud})
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", portName, err)
	}
	if err := port.SetReadTimeout(DefaultReadTimeout); err != nil {
		port.Close()
		return nil, fmt.Errorf("set read timeout: %w", err)
	}
	return New(port, opts...), nil
}

// Send writes the packet bytes to the link.
func (t *Transport) Send(p []byte) error {
	n, err := t.rw.Write(p)
	if err != nil {
		return fmt.Errorf("serial write: %w", err)
	}
	if n != len(p) {
		return io.ErrShortWrite
	}
	return nil
}

// Receive blocks until exactly n bytes arrive. A read that makes no progress
// within the port's timeout fails with ErrReadTimeout; partial data is never
// returned as success.
func (t *Transport) Receive(n int) ([]byte, error) {
	buf := make([]byte, n)
	got := 0
	for got < n {
		m, err := t.rw.Read(buf[got:])
		if err != nil {
			return nil, fmt.Errorf("serial read: %w", err)
		}
		if m == 0 {
			return nil, fmt.Errorf("%w: %d of %d bytes", ErrReadTimeout, got, n)
		}
		got += m
	}
	return buf, nil
}

// Reset writes the configured reset sequence, dropping the firmware out of
// any lingering packet mode, and discards input buffered on the port.
func (t *Transport) Reset() error {
	if len(t.resetSeq) > 0 {
		if err := t.Send(t.resetSeq); err != nil {
			return err
		}
	}
	if p, ok := t.rw.(serialport.Port); ok {
		return p.ResetInputBuffer()
	}
	return nil
}

// Close closes the underlying port when it supports closing.
func (t *Transport) Close() error {
	if t.closer == nil {
		return nil
	}
	return t.closer.Close()
}
