package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"swr-meter.klederson.com/internal/app"
	"swr-meter.klederson.com/internal/config"
	"swr-meter.klederson.com/internal/display"
	"swr-meter.klederson.com/internal/sensor"
	"swr-meter.klederson.com/internal/window"
)

var (
	flagDemo     bool
	flagSerial   string
	flagBaud     int
	flagParity   string
	flagRangePin string
	flagHeadless bool
	flagTicks    int
	flagWindow   bool
	flagZoom     int
	flagLogLevel string
	flagLogFile  string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "swr-meter",
		Short: "SWR Meter - forward power and SWR display with auto-ranging",
		Long: `SWR Meter samples forward and reflected RF power, derives the standing
wave ratio and draws both on a 170x136 RGB565 screen with peak hold and
automatic 50 W / 200 W ranging.

The screen is mirrored in the terminal by default, in a desktop window with
--window, or not at all with --headless.
Use --demo for a simulated transmitter or --serial to read an ADC bridge.`,
		SilenceUsage: true,
		RunE:         run,
	}

	rootCmd.Flags().BoolVar(&flagDemo, "demo", false, "Use a simulated transmitter (no hardware required)")
	rootCmd.Flags().StringVar(&flagSerial, "serial", "", "Serial port of the ADC bridge, e.g. /dev/ttyUSB0")
	rootCmd.Flags().IntVar(&flagBaud, "baud", config.DefaultBaud, "Serial baud rate")
	rootCmd.Flags().StringVar(&flagParity, "parity", "N", "Serial parity: N, E or O")
	rootCmd.Flags().StringVar(&flagRangePin, "range-pin", "", "GPIO pin driving the range-select relay, e.g. GPIO17")
	rootCmd.Flags().BoolVar(&flagHeadless, "headless", false, "Run the control loop without a display mirror")
	rootCmd.Flags().IntVar(&flagTicks, "ticks", 0, "Stop after this many cycles in headless mode (0 runs until interrupted)")
	rootCmd.Flags().BoolVar(&flagWindow, "window", false, "Mirror the screen in a desktop window")
	rootCmd.Flags().IntVar(&flagZoom, "zoom", 4, "Window zoom factor")
	rootCmd.Flags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.Flags().StringVar(&flagLogFile, "log-file", config.DefaultLogFile, "Append logs to this file")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	if flagHeadless && flagWindow {
		return errors.New("--headless and --window are mutually exclusive")
	}

	log, closeLog, err := newLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	sampler, source, closeSampler, err := openSampler(log)
	if err != nil {
		if errors.Is(err, errNoSource) {
			fmt.Fprintf(os.Stderr, "\nError: %v\n\n", err)
			fmt.Fprintln(os.Stderr, "Try one of:")
			fmt.Fprintln(os.Stderr, "  ./swr-meter --demo                      (simulated transmitter)")
			fmt.Fprintln(os.Stderr, "  ./swr-meter --serial /dev/ttyUSB0       (ADC bridge)")
		}
		return err
	}
	defer closeSampler()

	rangeOut, err := openRangeSelect()
	if err != nil {
		fmt.Fprintf(os.Stderr, "\nError: %v\n\n", err)
		fmt.Fprintln(os.Stderr, "GPIO access usually needs root or membership of the gpio group.")
		fmt.Fprintln(os.Stderr, "Omit --range-pin to use a virtual range-select line.")
		return err
	}

	fb := display.NewFramebuffer(config.ScreenWidth, config.ScreenHeight)
	ctrl := app.NewController(sampler, rangeOut, sensor.NewRealClock(), fb, log.WithField("source", source))
	if err := ctrl.Start(); err != nil {
		return fmt.Errorf("failed to start meter: %w", err)
	}

	switch {
	case flagHeadless:
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if err := ctrl.Run(ctx, flagTicks); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		return nil

	case flagWindow:
		return window.Run(ctrl, flagZoom)
	}

	p := tea.NewProgram(
		app.New(ctrl, source),
		tea.WithAltScreen(),
		tea.WithFPS(config.TargetFPS),
	)
	_, err = p.Run()
	return err
}

var errNoSource = errors.New("no sample source selected")

func openSampler(log *logrus.Logger) (sensor.Sampler, string, func(), error) {
	switch {
	case flagSerial != "":
		s, err := sensor.OpenSerial(flagSerial, sensor.PortOptions{
			BaudRate: flagBaud,
			Parity:   flagParity,
		}, log.WithField("port", flagSerial))
		if err != nil {
			return nil, "", nil, err
		}
		closeFn := func() {
			if err := s.Close(); err != nil {
				log.WithError(err).Warn("closing serial port")
			}
			lines, bad := s.Counts()
			log.WithFields(logrus.Fields{"lines": lines, "bad": bad}).Info("serial sampler closed")
		}
		return s, "serial " + flagSerial, closeFn, nil

	case flagDemo:
		return sensor.NewTransmitter(config.DemoSeed), "demo", func() {}, nil
	}
	return nil, "", nil, errNoSource
}

func openRangeSelect() (sensor.RangeSelect, error) {
	if flagRangePin == "" {
		return &sensor.VirtualPin{}, nil
	}
	return sensor.OpenGPIORangeSelect(flagRangePin)
}

// newLogger writes to --log-file when given, otherwise to stderr. The terminal
// mirror owns the screen, so without a file its logs are discarded.
func newLogger() (*logrus.Logger, func(), error) {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	level, err := logrus.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}
	log.SetLevel(level)

	switch {
	case flagLogFile != "":
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		log.SetOutput(f)
		return log, func() { _ = f.Close() }, nil
	case flagHeadless || flagWindow:
		log.SetOutput(os.Stderr)
	default:
		log.SetOutput(io.Discard)
	}
	return log, func() {}, nil
}
