package main

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/ardubridge/go-ardubridge/protocol"
)

var readDelayMs int

var readCmd = &cobra.Command{
	Use:   "read <dev> <reg> <n>",
	Short: "Read n bytes starting at a register",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		dev, err := parseByteArg("device address", args[0])
		if err != nil {
			return err
		}
		reg, err := parseByteArg("register", args[1])
		if err != nil {
			return err
		}
		n, err := strconv.Atoi(args[2])
		if err != nil || n < 1 || n > protocol.MaxPayload {
			return fmt.Errorf("invalid byte count %q: must be 1-%d", args[2], protocol.MaxPayload)
		}

		delay := time.Duration(readDelayMs) * time.Millisecond
		if readDelayMs == 0 {
			delay = time.Duration(cfg.ReadDelayMs) * time.Millisecond
		}

		data, err := busHandle.ReadRegister(dev, reg, n, delay)
		if err != nil {
			return fmt.Errorf("read dev 0x%02X reg 0x%02X: %w", dev, reg, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "% X\n", data)
		return nil
	},
}

var writeCmd = &cobra.Command{
	Use:   "write <dev> <reg> <byte>...",
	Short: "Write bytes starting at a register",
	Args:  cobra.MinimumNArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		dev, err := parseByteArg("device address", args[0])
		if err != nil {
			return err
		}
		reg, err := parseByteArg("register", args[1])
		if err != nil {
			return err
		}
		payload := make([]byte, 0, len(args)-2)
		for _, arg := range args[2:] {
			b, err := parseByteArg("data byte", arg)
			if err != nil {
				return err
			}
			payload = append(payload, b)
		}

		if err := busHandle.WriteRegister(dev, reg, payload); err != nil {
			return fmt.Errorf("write dev 0x%02X reg 0x%02X: %w", dev, reg, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %d bytes to dev 0x%02X reg 0x%02X\n", len(payload), dev, reg)
		return nil
	},
}

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Probe every 7-bit address and list responding devices",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		found := 0
		for dev := byte(0x03); dev <= 0x77; dev++ {
			err := busHandle.WriteRaw(dev, nil)
			if err == nil {
				fmt.Fprintf(cmd.OutOrStdout(), "device at 0x%02X\n", dev)
				found++
				continue
			}
			// no ack means nothing lives there; link errors end the scan
			if !protocol.IsDeviceError(err) && !errors.Is(err, protocol.ErrNoReply) {
				return err
			}
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%d device(s) found\n", found)
		return nil
	},
}

var freqCmd = &cobra.Command{
	Use:   "freq <hz>",
	Short: "Set the bus clock (truncated to 10 kHz steps)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		hz, err := strconv.Atoi(args[0])
		if err != nil || hz < 0 {
			return fmt.Errorf("invalid frequency %q", args[0])
		}
		busHandle.SetFrequency(hz)
		fmt.Fprintf(cmd.OutOrStdout(), "bus clock set to %d Hz\n", (hz/protocol.FrequencyUnit)%256*protocol.FrequencyUnit)
		return nil
	},
}

func init() {
	readCmd.Flags().IntVar(&readDelayMs, "delay", 0, "milliseconds between register select and read")
	rootCmd.AddCommand(readCmd)
	rootCmd.AddCommand(writeCmd)
	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(freqCmd)
}
