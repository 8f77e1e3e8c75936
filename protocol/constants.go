package protocol

// PacketID is the packet-kind identifier byte that precedes every I2C bus
// packet ('2', 0x32).
const PacketID byte = '2'

// Sub-command bytes. ASCII characters chosen by the firmware so packets are
// human-readable on a wire trace.
const (
	// CmdAddress announces that the next byte is the I2C device address
	CmdAddress byte = 'A'

	// CmdLength announces that the next byte is the segment data length
	CmdLength byte = 'L'

	// CmdFrequency announces that the next byte is the bus clock in 10 kHz units
	CmdFrequency byte = 'F'

	// CmdWrite sends the following bytes to the addressed device
	CmdWrite byte = 'W'

	// CmdWriteRestart writes the following bytes, then holds the bus with a
	// repeated start so a read can follow without releasing the device
	CmdWriteRestart byte = 'w'

	// CmdRead starts a read sequence of the previously announced length
	CmdRead byte = 'R'

	// CmdReadRestart starts a read sequence ending in a repeated start
	CmdReadRestart byte = 'r'
)

// ErrorKind is an error code reported by the bridge firmware in a status byte.
type ErrorKind byte

// Firmware error codes. ErrorNone is reported on success and is not an error.
const (
	ErrorNone      ErrorKind = 'N'
	ErrorUnescape  ErrorKind = 'U'
	ErrorLength    ErrorKind = 'L'
	ErrorRead      ErrorKind = 'R'
	ErrorWriteData ErrorKind = 'W'
	ErrorSendData  ErrorKind = 'S'
)

// FrequencyUnit is the granularity of the firmware's bus clock encoding.
// Requested frequencies are truncated to a whole multiple of it.
const FrequencyUnit = 10000

// MaxPayload is the largest payload expressible with a one-byte length prefix.
const MaxPayload = 255

// MaxRegisterPayload is the largest payload of a register write. The register
// byte counts against the length prefix.
const MaxRegisterPayload = MaxPayload - 1
