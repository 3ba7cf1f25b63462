package main

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/phanxgames/keyframe/internal/sink"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fadeClip = `
name: fade
tracks:
  - property: alpha
    type: float
    duration: 100
    interpolate: true
    keys:
      - {time: 0, value: 0}
      - {time: 100, value: 1}
`

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

type frame struct {
	Time       uint32             `json:"time"`
	Properties map[string]float64 `json:"properties"`
}

func decodeFrames(t *testing.T, b []byte) []frame {
	t.Helper()
	var frames []frame
	sc := bufio.NewScanner(bytes.NewReader(b))
	for sc.Scan() {
		var f frame
		require.NoError(t, json.Unmarshal(sc.Bytes(), &f))
		frames = append(frames, f)
	}
	return frames
}

func TestRunSamplesOneLoop(t *testing.T) {
	clipPath := writeFile(t, "fade.yaml", fadeClip)
	var stdout, stderr bytes.Buffer

	require.NoError(t, run([]string{"-clip", clipPath, "-step", "25"}, &stdout, &stderr))

	frames := decodeFrames(t, stdout.Bytes())
	require.Len(t, frames, 5)
	for i, f := range frames {
		assert.Equal(t, uint32(i*25), f.Time)
		assert.InDelta(t, float64(i)*0.25, f.Properties["alpha"], 1e-9)
	}
	assert.Contains(t, stderr.String(), "sampling clip")
}

func TestRunFramesFlagWraps(t *testing.T) {
	clipPath := writeFile(t, "fade.yaml", fadeClip)
	var stdout, stderr bytes.Buffer

	require.NoError(t, run([]string{"-clip", clipPath, "-step", "101", "-frames", "3"}, &stdout, &stderr))

	frames := decodeFrames(t, stdout.Bytes())
	require.Len(t, frames, 3)
	for _, f := range frames {
		assert.InDelta(t, 0, f.Properties["alpha"], 1e-9, "time %d is a multiple of the loop period", f.Time)
	}
}

func TestRunConfigFile(t *testing.T) {
	clipPath := writeFile(t, "fade.yaml", fadeClip)
	cfgPath := writeFile(t, "dump.yaml", "clip: "+clipPath+"\nstep: 50\n")
	var stdout, stderr bytes.Buffer

	require.NoError(t, run([]string{"-config", cfgPath}, &stdout, &stderr))
	assert.Len(t, decodeFrames(t, stdout.Bytes()), 3)
}

func TestRunErrors(t *testing.T) {
	var stdout, stderr bytes.Buffer

	err := run(nil, &stdout, &stderr)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no clip")

	err = run([]string{"-clip", filepath.Join(t.TempDir(), "missing.yaml")}, &stdout, &stderr)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load clip")

	cfgPath := writeFile(t, "bad.yaml", "clip: x\nunknown: 1\n")
	err = run([]string{"-config", cfgPath}, &stdout, &stderr)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read config")
}

func TestConfigValidate(t *testing.T) {
	cfg := defaultConfig()
	cfg.Clip = "a.yaml"
	require.NoError(t, cfg.validate())

	cfg.Step = 0
	assert.Error(t, cfg.validate())

	cfg = defaultConfig()
	cfg.Clip = "a.yaml"
	require.NoError(t, readConfig(writeFile(t, "c.yaml", "mqtt:\n  topic: anim\n"), &cfg))
	assert.ErrorContains(t, cfg.validate(), "mqtt: url required")
}

func TestFrameCount(t *testing.T) {
	cfg := Config{Step: 16}
	assert.Equal(t, 63, cfg.frameCount(1000))
	cfg.Frames = 4
	assert.Equal(t, 4, cfg.frameCount(1000))
}

func TestRunRejectsOversizedStep(t *testing.T) {
	clipPath := writeFile(t, "fade.yaml", fadeClip)
	var stdout, stderr bytes.Buffer

	err := run([]string{"-clip", clipPath, "-step", "4294967297"}, &stdout, &stderr)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "step")
	assert.Empty(t, stdout.String())
}

type failingCloseSink struct {
	frames int
	err    error
}

func (s *failingCloseSink) Write(sink.Frame) error {
	s.frames++
	return nil
}

func (s *failingCloseSink) Close() error { return s.err }

func TestRunReturnsCloseError(t *testing.T) {
	clipPath := writeFile(t, "fade.yaml", fadeClip)
	disconnect := errors.New("disconnect failed")
	out := &failingCloseSink{err: disconnect}

	orig := openSink
	openSink = func(Config, io.Writer) (sink.Sink, error) { return out, nil }
	t.Cleanup(func() { openSink = orig })

	var stdout, stderr bytes.Buffer
	err := run([]string{"-clip", clipPath, "-step", "50"}, &stdout, &stderr)
	require.ErrorIs(t, err, disconnect)
	assert.Contains(t, err.Error(), "close sink")
	assert.Equal(t, 3, out.frames)
}
