package sensor

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
	"go.bug.st/serial"

	"swr-meter.klederson.com/internal/config"
)

// PortOptions are the serial parameters of the ADC bridge.
type PortOptions struct {
	BaudRate int
	DataBits int
	StopBits int
	Parity   string
}

// Normalize validates the options and fills defaults.
func (o PortOptions) Normalize() (PortOptions, error) {
	if o.BaudRate <= 0 {
		o.BaudRate = config.DefaultBaud
	}
	if o.DataBits == 0 {
		o.DataBits = 8
	}
	if o.DataBits < 5 || o.DataBits > 8 {
		return o, fmt.Errorf("invalid data bits %d: must be between 5 and 8", o.DataBits)
	}
	if o.StopBits == 0 {
		o.StopBits = 1
	}
	if o.StopBits != 1 && o.StopBits != 2 {
		return o, fmt.Errorf("invalid stop bits %d: supported values are 1 or 2", o.StopBits)
	}

	switch strings.ToUpper(strings.TrimSpace(o.Parity)) {
	case "", "N", "NONE":
		o.Parity = "N"
	case "E", "EVEN":
		o.Parity = "E"
	case "O", "ODD":
		o.Parity = "O"
	default:
		return o, fmt.Errorf("unsupported parity %q: expected N, E, or O", o.Parity)
	}
	return o, nil
}

// SerialMode converts the options for serial.Open.
func (o PortOptions) SerialMode() (*serial.Mode, error) {
	opts, err := o.Normalize()
	if err != nil {
		return nil, err
	}

	mode := &serial.Mode{
		BaudRate: opts.BaudRate,
		DataBits: opts.DataBits,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	}
	if opts.StopBits == 2 {
		mode.StopBits = serial.TwoStopBits
	}
	switch opts.Parity {
	case "E":
		mode.Parity = serial.EvenParity
	case "O":
		mode.Parity = serial.OddParity
	}
	return mode, nil
}

// SerialSampler reads "<forward>,<reflected>" lines from an external ADC board
// and serves the most recent pair. Malformed lines are counted and skipped.
type SerialSampler struct {
	port io.ReadCloser
	log  logrus.FieldLogger

	mu        sync.Mutex
	forward   int
	reflected int
	lines     int
	bad       int
	err       error

	done chan struct{}
}

// OpenSerial opens the port at path and starts reading.
func OpenSerial(path string, opts PortOptions, log logrus.FieldLogger) (*SerialSampler, error) {
	mode, err := opts.SerialMode()
	if err != nil {
		return nil, err
	}
	port, err := serial.Open(path, mode)
	if err != nil {
		return nil, fmt.Errorf("failed to open serial port %s: %w", path, err)
	}
	s := NewSerialSampler(port, log)
	s.Start()
	return s, nil
}

// NewSerialSampler wraps an open stream. Call Start to begin reading.
func NewSerialSampler(port io.ReadCloser, log logrus.FieldLogger) *SerialSampler {
	return &SerialSampler{
		port: port,
		log:  log,
		done: make(chan struct{}),
	}
}

// Start reads lines in a goroutine until the stream ends or Close is called.
func (s *SerialSampler) Start() {
	go func() {
		defer close(s.done)

		sc := bufio.NewScanner(s.port)
		for sc.Scan() {
			fwd, ref, err := ParseSampleLine(sc.Text())
			if err != nil {
				s.log.WithError(err).Debug("skipping sample line")
			}
			s.mu.Lock()
			s.lines++
			if err != nil {
				s.bad++
			} else {
				s.forward, s.reflected = fwd, ref
			}
			s.mu.Unlock()
		}
		if err := sc.Err(); err != nil {
			s.mu.Lock()
			s.err = err
			s.mu.Unlock()
			s.log.WithError(err).Warn("serial sampler stopped")
		}
	}()
}

// ReadChannel returns the latest sample for ch, 0 before the first line.
func (s *SerialSampler) ReadChannel(ch Channel) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if ch == ChannelReflected {
		return s.reflected
	}
	return s.forward
}

// Sample returns the latest forward and reflected counts from the same line.
func (s *SerialSampler) Sample() (forward, reflected int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.forward, s.reflected
}

// Counts reports lines received and lines rejected.
func (s *SerialSampler) Counts() (lines, bad int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lines, s.bad
}

// Err returns the read error that stopped the sampler, if any.
func (s *SerialSampler) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// Close closes the port and waits for the reader to exit.
func (s *SerialSampler) Close() error {
	err := s.port.Close()
	<-s.done
	return err
}

// ParseSampleLine parses "<forward>,<reflected>" raw counts. Whitespace and a
// trailing carriage return are ignored; negative counts are rejected.
func ParseSampleLine(line string) (forward, reflected int, err error) {
	a, b, ok := strings.Cut(strings.TrimSpace(line), ",")
	if !ok {
		return 0, 0, fmt.Errorf("sample line %q: missing separator", line)
	}
	forward, err = strconv.Atoi(strings.TrimSpace(a))
	if err != nil {
		return 0, 0, fmt.Errorf("sample line %q: forward: %w", line, err)
	}
	reflected, err = strconv.Atoi(strings.TrimSpace(b))
	if err != nil {
		return 0, 0, fmt.Errorf("sample line %q: reflected: %w", line, err)
	}
	if forward < 0 || reflected < 0 {
		return 0, 0, fmt.Errorf("sample line %q: negative count", line)
	}
	return forward, reflected, nil
}
