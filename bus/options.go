package bus

import "time"

// Config holds the bus configuration.
type Config struct {
	// Trace is called after each completed operation (optional)
	Trace TraceFunc

	// Logger is used for logging operations (optional)
	Logger Logger

	// sleep implements the inter-phase delay of ReadRegister; replaced in tests
	sleep func(time.Duration)
}

// defaultConfig returns the default configuration.
func defaultConfig() Config {
	return Config{
		sleep: time.Sleep,
	}
}

// Option is a functional option for configuring the Bus.
type Option func(*Config)

// WithTrace sets a callback invoked once per completed operation.
//
// Example:
//
//	b := bus.New(transport, bus.WithTrace(func(t bus.Trace) {
//	    fmt.Printf("%s dev=0x%02X err=%v\n", t.Op, t.Device, t.Err)
//	}))
func WithTrace(fn TraceFunc) Option {
	return func(c *Config) {
		c.Trace = fn
	}
}

// WithLogger sets a logger for bus operations.
func WithLogger(logger Logger) Option {
	return func(c *Config) {
		c.Logger = logger
	}
}
