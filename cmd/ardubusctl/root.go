package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/ardubridge/go-ardubridge/bus"
	"github.com/ardubridge/go-ardubridge/serial"
)

var (
	// Global flags
	cfgFile  string
	portFlag string
	baudFlag int
	verbose  bool

	// Shared state set during PersistentPreRunE
	cfg       fileConfig
	link      *serial.Transport
	busHandle *bus.Bus
)

// rootCmd is the base command for ardubusctl.
var rootCmd = &cobra.Command{
	Use:           "ardubusctl",
	Short:         "ArduBridge I2C bus CLI — read/write registers, scan, set bus clock",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
		zerolog.SetGlobalLevel(zerolog.InfoLevel)

		path := cfgFile
		if path == "" {
			path = defaultConfigPath()
		}
		var err error
		cfg, err = loadConfig(path, cfgFile != "")
		if err != nil {
			return err
		}

		// Flags override the config file
		if portFlag != "" {
			cfg.Port = portFlag
		}
		if baudFlag != 0 {
			cfg.Baud = baudFlag
		}
		if verbose {
			cfg.Verbose = true
		}
		if cfg.Verbose {
			zerolog.SetGlobalLevel(zerolog.DebugLevel)
		}

		if cfg.Port == "" {
			return fmt.Errorf("no serial port configured (use --port or %s)", defaultConfigPath())
		}

		link, err = serial.Open(cfg.Port, cfg.Baud)
		if err != nil {
			return err
		}
		busHandle = bus.New(link, bus.WithLogger(busLogger{}))

		if cfg.FrequencyHz > 0 {
			busHandle.SetFrequency(cfg.FrequencyHz)
		}
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if link != nil {
			return link.Close()
		}
		return nil
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.ardubridge/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&portFlag, "port", "", "serial port of the bridge, e.g. /dev/ttyUSB0")
	rootCmd.PersistentFlags().IntVar(&baudFlag, "baud", 0, "serial baud rate (default 115200)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log every bus operation")
}

// busLogger forwards bus logging to zerolog.
type busLogger struct{}

func (busLogger) Debug(msg string, kv ...interface{}) {
	log.Debug().Fields(kv).Msg(msg)
}

func (busLogger) Error(msg string, kv ...interface{}) {
	log.Error().Fields(kv).Msg(msg)
}

// parseByteArg parses a device address or register number, accepting 0x
// prefixed hex or decimal.
func parseByteArg(name, arg string) (byte, error) {
	v, err := strconv.ParseUint(arg, 0, 8)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: must be 0-255", name, arg)
	}
	return byte(v), nil
}
