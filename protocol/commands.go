package protocol

import "fmt"

// BuildWrite constructs a raw bus write packet. The payload is sent to the
// device as-is, with no register addressing.
//
// Packet structure:
//
//	['2']['A'][DEV]['L'][n]['W'][DATA...]
func BuildWrite(dev byte, payload []byte) ([]byte, error) {
	if len(payload) > MaxPayload {
		return nil, fmt.Errorf("%w: payload is %d bytes, maximum is %d", ErrPayloadTooLarge, len(payload), MaxPayload)
	}

	pkt := make([]byte, 0, 6+len(payload))
	pkt = append(pkt, PacketID, CmdAddress, dev, CmdLength, byte(len(payload)), CmdWrite)
	pkt = append(pkt, payload...)

	return pkt, nil
}

// BuildWriteRegister constructs a register write packet. The register byte is
// prefixed to the payload and counts against the length prefix.
//
// Packet structure:
//
//	['2']['A'][DEV]['L'][n+1]['W'][REG][DATA...]
func BuildWriteRegister(dev, reg byte, payload []byte) ([]byte, error) {
	if len(payload) > MaxRegisterPayload {
		return nil, fmt.Errorf("%w: payload is %d bytes, maximum is %d with a register byte", ErrPayloadTooLarge, len(payload), MaxRegisterPayload)
	}

	pkt := make([]byte, 0, 7+len(payload))
	pkt = append(pkt, PacketID, CmdAddress, dev, CmdLength, byte(len(payload)+1), CmdWrite, reg)
	pkt = append(pkt, payload...)

	return pkt, nil
}

// BuildReadRequest constructs a raw bus read packet asking for n bytes from
// the device's current position.
//
// Packet structure:
//
//	['2']['A'][DEV]['L'][n]['R']
func BuildReadRequest(dev byte, n int) ([]byte, error) {
	if n < 0 || n > MaxPayload {
		return nil, fmt.Errorf("%w: read length %d, maximum is %d", ErrPayloadTooLarge, n, MaxPayload)
	}

	return []byte{PacketID, CmdAddress, dev, CmdLength, byte(n), CmdRead}, nil
}

// BuildRegisterSelect constructs the write-restart half of a register read:
// the register number is written and the bus is held with a repeated start.
//
// Packet structure:
//
//	['2']['A'][DEV]['L'][1]['w'][REG]
func BuildRegisterSelect(dev, reg byte) []byte {
	return []byte{PacketID, CmdAddress, dev, CmdLength, 1, CmdWriteRestart, reg}
}

// BuildReadContinue constructs the read half of a register read. The device
// address is still latched from the preceding register select, so the packet
// carries no address segment. It may be concatenated directly onto a register
// select packet for a zero-delay combined send.
//
// Packet structure:
//
//	['2']['L'][n]['R']
func BuildReadContinue(n int) ([]byte, error) {
	if n < 0 || n > MaxPayload {
		return nil, fmt.Errorf("%w: read length %d, maximum is %d", ErrPayloadTooLarge, n, MaxPayload)
	}

	return []byte{PacketID, CmdLength, byte(n), CmdRead}, nil
}

// BuildSetFrequency constructs a bus clock packet. The frequency is truncated
// to a whole 10 kHz step and masked to 8 bits, exactly as the firmware
// expects; values above 2.55 MHz wrap silently.
//
// Packet structure:
//
//	['2']['F'][HZ/10000]
func BuildSetFrequency(hz int) []byte {
	return []byte{PacketID, CmdFrequency, byte(hz / FrequencyUnit)}
}
