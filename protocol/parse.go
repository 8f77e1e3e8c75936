package protocol

import "fmt"

// WritePacket is the decoded form of a write or register select packet.
// The register byte of a register write is payload[0] on the wire, so
// Payload for such packets starts with the register number.
type WritePacket struct {
	// Device is the addressed I2C peripheral
	Device byte

	// Restart is true for write-restart ('w') packets
	Restart bool

	// Payload is the data sent to the device, register byte included
	Payload []byte
}

// ParseWrite decodes a packet built by BuildWrite, BuildWriteRegister or
// BuildRegisterSelect. It validates the structural invariants: packet kind,
// sub-command order and the length prefix matching the payload.
//
// It exists for the inverse direction of the codec: firmware simulators and
// tests that need to recover what a host sent.
func ParseWrite(pkt []byte) (*WritePacket, error) {
	if len(pkt) < 6 {
		return nil, fmt.Errorf("packet too short: %d bytes", len(pkt))
	}
	if pkt[0] != PacketID {
		return nil, fmt.Errorf("not an I2C packet: kind 0x%02X", pkt[0])
	}
	if pkt[1] != CmdAddress || pkt[3] != CmdLength {
		return nil, fmt.Errorf("malformed header % X", pkt[:6])
	}

	w := &WritePacket{Device: pkt[2]}
	switch pkt[5] {
	case CmdWrite:
	case CmdWriteRestart:
		w.Restart = true
	default:
		return nil, fmt.Errorf("not a write packet: command 0x%02X", pkt[5])
	}

	if int(pkt[4]) != len(pkt)-6 {
		return nil, fmt.Errorf("length prefix %d does not match %d payload bytes", pkt[4], len(pkt)-6)
	}
	w.Payload = pkt[6:]

	return w, nil
}

// ParseReadRequest decodes a packet built by BuildReadRequest, returning the
// addressed device and the requested byte count.
func ParseReadRequest(pkt []byte) (dev byte, n int, err error) {
	if len(pkt) != 6 {
		return 0, 0, fmt.Errorf("read request must be 6 bytes, got %d", len(pkt))
	}
	if pkt[0] != PacketID || pkt[1] != CmdAddress || pkt[3] != CmdLength || pkt[5] != CmdRead {
		return 0, 0, fmt.Errorf("not a read request: % X", pkt)
	}
	return pkt[2], int(pkt[4]), nil
}
