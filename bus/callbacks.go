package bus

import "time"

// Trace describes one completed bus operation. Passed to the TraceFunc
// configured with WithTrace after every operation, successful or not.
type Trace struct {
	// Op is the operation name:
	//   "write"          - WriteRaw
	//   "read"           - ReadRaw
	//   "write-register" - WriteRegister
	//   "read-register"  - ReadRegister
	//   "set-frequency"  - SetFrequency
	Op string

	// Device is the addressed peripheral (zero for bus-wide operations)
	Device byte

	// Register is the register number for register operations
	Register byte

	// Data is the payload written or read
	Data []byte

	// Err is the operation outcome, nil on success
	Err error

	// Elapsed is the round-trip duration
	Elapsed time.Duration
}

// TraceFunc observes completed operations. Implementations should return
// quickly; they run on the calling goroutine between bus operations.
type TraceFunc func(Trace)

// Logger is an optional logging interface the bus reports to. It allows
// integration with any logging framework.
//
// Example with zerolog:
//
//	type ZLogger struct{}
//	func (ZLogger) Debug(msg string, kv ...interface{}) { log.Debug().Fields(kv).Msg(msg) }
//	func (ZLogger) Error(msg string, kv ...interface{}) { log.Error().Fields(kv).Msg(msg) }
type Logger interface {
	// Debug logs a debug message with optional key-value pairs
	Debug(msg string, keysAndValues ...interface{})

	// Error logs an error message with optional key-value pairs
	Error(msg string, keysAndValues ...interface{})
}
