package sensor

import (
	"fmt"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.bug.st/serial"

	"swr-meter.klederson.com/internal/config"
)

func TestPortOptionsNormalize(t *testing.T) {
	opts, err := PortOptions{}.Normalize()
	require.NoError(t, err)
	assert.Equal(t, PortOptions{BaudRate: config.DefaultBaud, DataBits: 8, StopBits: 1, Parity: "N"}, opts)

	opts, err = PortOptions{BaudRate: 9600, Parity: " even "}.Normalize()
	require.NoError(t, err)
	assert.Equal(t, "E", opts.Parity)

	for _, bad := range []PortOptions{
		{DataBits: 9},
		{StopBits: 3},
		{Parity: "mark"},
	} {
		_, err := bad.Normalize()
		assert.Error(t, err, "%+v", bad)
	}
}

func TestPortOptionsSerialMode(t *testing.T) {
	mode, err := PortOptions{BaudRate: 57600, StopBits: 2, Parity: "O"}.SerialMode()
	require.NoError(t, err)
	assert.Equal(t, &serial.Mode{
		BaudRate: 57600,
		DataBits: 8,
		Parity:   serial.OddParity,
		StopBits: serial.TwoStopBits,
	}, mode)

	_, err = PortOptions{DataBits: 4}.SerialMode()
	assert.Error(t, err)
}

func TestParseSampleLine(t *testing.T) {
	tests := []struct {
		line     string
		fwd, ref int
		wantErr  bool
	}{
		{line: "250,40", fwd: 250, ref: 40},
		{line: " 1000 , 0 \r", fwd: 1000, ref: 0},
		{line: "250", wantErr: true},
		{line: "x,40", wantErr: true},
		{line: "250,", wantErr: true},
		{line: "-1,3", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			fwd, ref, err := ParseSampleLine(tt.line)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.fwd, fwd)
			assert.Equal(t, tt.ref, ref)
		})
	}
}

func TestSerialSampler(t *testing.T) {
	pr, pw := io.Pipe()
	log, hook := logtest.NewNullLogger()
	log.SetLevel(logrus.DebugLevel)

	s := NewSerialSampler(pr, log)
	s.Start()

	assert.Zero(t, s.ReadChannel(ChannelForward))

	_, err := io.WriteString(pw, "250,40\ngarbage\n")
	require.NoError(t, err)

	assert.Eventually(t, func() bool {
		lines, _ := s.Counts()
		return lines == 2
	}, time.Second, 5*time.Millisecond)

	assert.Equal(t, 250, s.ReadChannel(ChannelForward))
	assert.Equal(t, 40, s.ReadChannel(ChannelReflected))
	_, bad := s.Counts()
	assert.Equal(t, 1, bad)
	assert.Equal(t, "skipping sample line", hook.LastEntry().Message)

	require.NoError(t, pw.Close())
	require.NoError(t, s.Close())
	assert.NoError(t, s.Err())
}

func TestSerialSamplerPairsComeFromOneLine(t *testing.T) {
	pr, pw := io.Pipe()
	log, _ := logtest.NewNullLogger()
	s := NewSerialSampler(pr, log)
	s.Start()

	const n = 500
	go func() {
		for i := 1; i <= n; i++ {
			if _, err := fmt.Fprintf(pw, "%d,%d\n", i, i); err != nil {
				return
			}
		}
		pw.Close()
	}()

	for {
		in := Read(s)
		require.Equal(t, in.Forward, in.Reflected, "forward and reflected from different lines")
		if lines, _ := s.Counts(); lines == n {
			break
		}
	}

	fwd, ref := s.Sample()
	assert.Equal(t, n, fwd)
	assert.Equal(t, n, ref)
	require.NoError(t, s.Close())
}
