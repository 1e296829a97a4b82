// Package wokwi writes pixel strips in the formats used by the Wokwi
// simulator's diagram.json.
//
// Fragments are single lines with a trailing comma, meant to be pasted into
// the "parts" or "connections" array of an existing diagram by hand. They are
// not valid JSON on their own. Diagram produces a complete document instead.
package wokwi

import (
	"fmt"
	"io"

	"github.com/Jon-Bright/wokwigen/pixarray"
	"github.com/Jon-Bright/wokwigen/wiring"
)

const NeopixelType = "wokwi-neopixel"

// PixelSource is satisfied by *pixarray.Switchback.
type PixelSource interface {
	Next() (pixarray.Pixel, bool)
}

func WritePart(w io.Writer, p pixarray.Pixel) error {
	_, err := fmt.Fprintf(w, "{ \"type\": \"%s\", \"id\": \"%s\", \"top\": %d, \"left\": %d, \"attrs\": {}},\n", NeopixelType, p.Name(), p.Top, p.Left)
	return err
}

func WriteConnection(w io.Writer, c wiring.Connection) error {
	_, err := fmt.Fprintf(w, "[ \"%s\", \"%s\", \"\", [ \"\" ] ],\n", c.From, c.To)
	return err
}

// WriteParts writes a fragment for every pixel src produces and returns how
// many were written.
func WriteParts(w io.Writer, src PixelSource) (int, error) {
	n := 0
	for {
		p, ok := src.Next()
		if !ok {
			return n, nil
		}
		err := WritePart(w, p)
		if err != nil {
			return n, fmt.Errorf("couldn't write part %s: %w", p.Name(), err)
		}
		n++
	}
}

func WriteConnections(w io.Writer, cs []wiring.Connection) (int, error) {
	for i, c := range cs {
		err := WriteConnection(w, c)
		if err != nil {
			return i, fmt.Errorf("couldn't write connection %d (%s): %w", i, c, err)
		}
	}
	return len(cs), nil
}
