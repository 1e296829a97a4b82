package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Jon-Bright/wokwigen/pixarray"
	"github.com/Jon-Bright/wokwigen/wokwi"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var top = flag.Int("top", 180, "The top coordinate of the first pixel of the switchback")
var left = flag.Int("left", 0, "The left coordinate of the first pixel of the switchback")
var first = flag.Int("first", 11, "The number of the first pixel of the switchback, pixels before it are laid out by hand")
var pixels = flag.Int("pixels", 50, "The number of pixels in the switchback")
var lights = flag.Int("lights", 60, "The total number of pixels to wire up, starting at rgb1")
var board = flag.String("board", "esp32", "The board to place in a complete diagram: one of "+strings.Join(wokwi.BoardNames(), ", "))

const usage = `usage: wokwigen [flags] <command>

Commands:
  layout       print part fragments for the switchback pixels
  connections  print connection fragments for all pixels
  diagram      print a complete diagram.json

Flags:
`

func run(cmd string, w io.Writer) error {
	switch cmd {
	case "layout":
		if *pixels < 0 {
			return fmt.Errorf("invalid pixel count %d", *pixels)
		}
		n, err := wokwi.WriteParts(w, pixarray.NewSwitchbackAt(*top, *left, *first, *pixels))
		if err != nil {
			return err
		}
		if n == 0 {
			zap.S().Debug("wrote no parts")
		} else {
			zap.S().Debugf("wrote %d parts, rgb%d to rgb%d", n, *first, *first+n-1)
		}
		return nil
	case "connections":
		if *lights < 0 {
			return fmt.Errorf("invalid light count %d", *lights)
		}
		n, err := wokwi.WriteConnections(w, rails().Connections(1, *lights))
		if err != nil {
			return err
		}
		zap.S().Debugf("wrote %d connections for %d lights", n, *lights)
		return nil
	case "diagram":
		if *lights < 0 {
			return fmt.Errorf("invalid light count %d", *lights)
		}
		b, err := wokwi.LookupBoard(*board)
		if err != nil {
			return err
		}
		r := rails()
		err = checkRails(r, wokwi.BoardID)
		if err != nil {
			return err
		}
		ps := pixarray.NewSwitchbackAt(*top, *left, 1, *lights).Pixels()
		d := wokwi.NewDiagram(b, ps, r.Connections(1, *lights))
		zap.S().Debugw("writing diagram", "board", b.Type, "parts", len(d.Parts), "connections", len(d.Connections))
		return d.Write(w)
	}
	return fmt.Errorf("unknown command: %s", cmd)
}

// generate runs cmd with its output buffered, flushing it only on success.
func generate(cmd string, out io.Writer) error {
	w := bufio.NewWriter(out)
	err := run(cmd, w)
	if err != nil {
		return fmt.Errorf("%s: %w", cmd, err)
	}
	err = w.Flush()
	if err != nil {
		return fmt.Errorf("couldn't flush output: %w", err)
	}
	return nil
}

func newLogger(level zapcore.Level) (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(level)
	return cfg.Build()
}

func main() {
	os.Exit(realMain())
}

func realMain() int {
	level := zap.LevelFlag("log-level", zap.InfoLevel, "set log level")
	flag.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), usage)
		flag.PrintDefaults()
	}
	flag.Parse()
	dev, err := newLogger(*level)
	if err != nil {
		panic(err)
	}
	zap.ReplaceGlobals(dev)
	defer dev.Sync()

	if flag.NArg() != 1 {
		flag.Usage()
		return 2
	}
	err = generate(flag.Arg(0), os.Stdout)
	if err != nil {
		zap.S().Error(err)
		return 1
	}
	return 0
}
