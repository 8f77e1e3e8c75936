package protocol

// DecodeStatus interprets the status byte the firmware sends after a write.
//
// An empty reply or a zero byte means no acknowledgment arrived and decodes
// to ErrNoReply. One of the five real firmware error codes decodes to a
// DeviceError. Every other byte, ErrorNone included, is success: the firmware
// is not strict about its success byte, so anything outside the defined error
// set is accepted.
func DecodeStatus(reply []byte) error {
	if len(reply) == 0 || reply[0] == 0 {
		return ErrNoReply
	}
	if kind, ok := errorCode(reply[0]); ok {
		return &DeviceError{Kind: kind}
	}
	return nil
}

// DecodeCount interprets the count byte that precedes a read payload. It
// returns the number of payload bytes the firmware is about to send.
//
// The count byte carries the same status semantics as a write acknowledgment:
// a zero count decodes to ErrNoData and a firmware error code decodes to a
// DeviceError, in both cases without touching the payload that will never
// arrive.
func DecodeCount(reply []byte) (int, error) {
	if len(reply) == 0 {
		return 0, ErrNoReply
	}
	if reply[0] == 0 {
		return 0, ErrNoData
	}
	if kind, ok := errorCode(reply[0]); ok {
		return 0, &DeviceError{Kind: kind}
	}
	return int(reply[0]), nil
}

// errorCode reports whether b is one of the firmware's real error codes.
// ErrorNone is excluded: it signals success.
func errorCode(b byte) (ErrorKind, bool) {
	switch kind := ErrorKind(b); kind {
	case ErrorUnescape, ErrorLength, ErrorRead, ErrorWriteData, ErrorSendData:
		return kind, true
	}
	return 0, false
}
