// Command keyframedump samples a clip at a fixed step and writes each frame's
// property values as JSON lines to stdout, or publishes them to MQTT.
//
//	keyframedump -clip spin.yaml -step 33 -frames 90
//	keyframedump -config dump.yaml -v
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/phanxgames/keyframe"
	"github.com/phanxgames/keyframe/clip"
	"github.com/phanxgames/keyframe/internal/sink"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		fmt.Fprintln(os.Stderr, "keyframedump:", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) (err error) {
	fs := flag.NewFlagSet("keyframedump", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "YAML config file.")
	clipPath := fs.String("clip", "", "Clip file to sample.")
	var step uint32
	fs.Func("step", "Sample step in milliseconds (default 16).", func(s string) error {
		v, err := strconv.ParseUint(s, 10, 32)
		if err != nil {
			return fmt.Errorf("step %q: %w", s, err)
		}
		step = uint32(v)
		return nil
	})
	frames := fs.Int("frames", 0, "Number of frames (default one loop).")
	verbose := fs.Bool("v", false, "Debug logging.")
	if err := fs.Parse(args); err != nil {
		return err
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	cfg := defaultConfig()
	if *configPath != "" {
		if err := readConfig(*configPath, &cfg); err != nil {
			return err
		}
	}
	if *clipPath != "" {
		cfg.Clip = *clipPath
	}
	if step != 0 {
		cfg.Step = step
	}
	if *frames != 0 {
		cfg.Frames = *frames
	}
	if err := cfg.validate(); err != nil {
		return err
	}

	c, err := clip.Load(cfg.Clip)
	if err != nil {
		return err
	}
	props := keyframe.NewContainer()
	anim, err := c.Animation(props)
	if err != nil {
		return err
	}
	anim.SetLogger(logger)

	out, err := openSink(cfg, stdout)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close sink: %w", cerr)
		}
	}()

	n := cfg.frameCount(anim.Duration())
	logger.Info("sampling clip",
		slog.String("clip", c.Name),
		slog.Int("tracks", len(anim.Tracks())),
		slog.Uint64("duration", uint64(anim.Duration())),
		slog.Int("frames", n),
		slog.Uint64("step", uint64(cfg.Step)))

	return sample(anim, props, cfg.Step, n, out)
}

// openSink picks the frame destination; tests replace it.
var openSink = func(cfg Config, stdout io.Writer) (sink.Sink, error) {
	if cfg.Mqtt != nil {
		return sink.NewMQTT(*cfg.Mqtt)
	}
	// stdout is not ours to close.
	return sink.NewWriter(struct{ io.Writer }{stdout}), nil
}

// sample writes n frames spaced step ms apart starting at time 0.
func sample(anim *keyframe.Animation, props *keyframe.Container, step uint32, n int, out sink.Sink) error {
	for i := 0; i < n; i++ {
		t := uint32(i) * step
		anim.Seek(t)
		if err := anim.Update(0); err != nil {
			return fmt.Errorf("frame %d: %w", i, err)
		}
		f := sink.Frame{Time: t, Properties: make(map[string]any, len(props.Names()))}
		for _, name := range props.Names() {
			f.Properties[name], _ = props.Get(name)
		}
		if err := out.Write(f); err != nil {
			return err
		}
	}
	return nil
}
