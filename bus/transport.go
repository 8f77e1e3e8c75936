package bus

// Transport moves raw bytes between the host and the bridge firmware.
// Implementations own the link: framing, escaping, timeouts and reconnection
// all happen below this interface.
type Transport interface {
	// Send writes the packet bytes to the link.
	Send(p []byte) error

	// Receive blocks until exactly n bytes arrive or the link's read timeout
	// elapses. A timeout is an error; a short read is never returned as
	// success.
	Receive(n int) ([]byte, error)
}

// Resetter is implemented by transports that can issue the bridge's
// link-level reset. The bus uses it after a frequency change to drop the
// firmware out of I2C packet mode.
type Resetter interface {
	Reset() error
}
