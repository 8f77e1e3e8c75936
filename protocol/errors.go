package protocol

import (
	"errors"
	"fmt"
)

var (
	// ErrNoReply indicates the firmware sent no status byte, or a zero byte,
	// where a reply was expected.
	ErrNoReply = errors.New("no reply from firmware")

	// ErrNoData indicates a read reply announced a zero-byte payload.
	ErrNoData = errors.New("firmware reported no data")

	// ErrPayloadTooLarge indicates a payload or read length that does not fit
	// the packet's one-byte length prefix.
	ErrPayloadTooLarge = errors.New("length does not fit one length byte")
)

// DeviceError wraps an error code reported by the bridge firmware.
type DeviceError struct {
	// Kind is the error code from the status byte
	Kind ErrorKind
}

func (e *DeviceError) Error() string {
	return fmt.Sprintf("firmware error: %s (0x%02X)", kindName(e.Kind), byte(e.Kind))
}

// IsDeviceError returns true if the error is a DeviceError.
func IsDeviceError(err error) bool {
	var de *DeviceError
	return errors.As(err, &de)
}

// kindName returns a human-readable name for a firmware error code.
func kindName(kind ErrorKind) string {
	switch kind {
	case ErrorNone:
		return "none"
	case ErrorUnescape:
		return "unescape"
	case ErrorLength:
		return "length"
	case ErrorRead:
		return "read"
	case ErrorWriteData:
		return "write-data"
	case ErrorSendData:
		return "send-data"
	default:
		return fmt.Sprintf("unknown code 0x%02X", byte(kind))
	}
}
