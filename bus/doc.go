// Package bus implements register-level access to I2C peripherals behind an
// ArduBridge.
//
// A Bus composes packets from package protocol, hands them to a Transport and
// decodes the firmware's reply bytes into typed results. Every operation is a
// strictly ordered send/receive sequence that completes before the call
// returns; the ordering is what keeps a peripheral's internal register
// pointer consistent, so a Bus holds no lock of its own. Callers sharing one
// transport across goroutines must serialize whole operations externally.
//
// Example:
//
//	b := bus.New(transport, bus.WithLogger(logger))
//	if err := b.WriteRegister(0x14, 0x10, []byte{0x00, 0x01, 0x02}); err != nil {
//	    return err
//	}
//	data, err := b.ReadRegister(0x14, 0x10, 3, 0)
//
// The delay argument of ReadRegister covers peripherals that need settle time
// between the register select and the read, such as ADCs with a conversion
// period. With a zero delay both halves go out in a single send.
package bus
