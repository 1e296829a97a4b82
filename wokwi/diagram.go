package wokwi

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/Jon-Bright/wokwigen/pixarray"
	"github.com/Jon-Bright/wokwigen/wiring"
)

type Diagram struct {
	Version      int               `json:"version"`
	Author       string            `json:"author"`
	Editor       string            `json:"editor"`
	Parts        []Part            `json:"parts"`
	Connections  []Wire            `json:"connections"`
	Dependencies map[string]string `json:"dependencies"`
}

type Part struct {
	Type  string            `json:"type"`
	ID    string            `json:"id"`
	Top   int               `json:"top"`
	Left  int               `json:"left"`
	Attrs map[string]string `json:"attrs"`
}

func PixelPart(p pixarray.Pixel) Part {
	return Part{Type: NeopixelType, ID: p.Name(), Top: p.Top, Left: p.Left, Attrs: map[string]string{}}
}

// Wire is encoded the way Wokwi stores connections: as the array
// [from, to, color, [route...]].
type Wire struct {
	From  string
	To    string
	Color string
	Route []string
}

func ConnectionWire(c wiring.Connection) Wire {
	return Wire{From: c.From, To: c.To, Route: []string{""}}
}

func (w Wire) MarshalJSON() ([]byte, error) {
	route := w.Route
	if route == nil {
		route = []string{}
	}
	return json.Marshal([]interface{}{w.From, w.To, w.Color, route})
}

func (w *Wire) UnmarshalJSON(b []byte) error {
	var raw []json.RawMessage
	err := json.Unmarshal(b, &raw)
	if err != nil {
		return err
	}
	if len(raw) != 4 {
		return fmt.Errorf("connection has %d elements, want 4", len(raw))
	}
	var v Wire
	for i, dst := range []interface{}{&v.From, &v.To, &v.Color, &v.Route} {
		err = json.Unmarshal(raw[i], dst)
		if err != nil {
			return fmt.Errorf("connection element %d: %w", i, err)
		}
	}
	*w = v
	return nil
}

// NewDiagram builds a complete diagram: the board with ID BoardID at the
// origin, then every pixel and every connection in order.
func NewDiagram(board Board, pixels []pixarray.Pixel, conns []wiring.Connection) *Diagram {
	d := &Diagram{
		Version:      1,
		Editor:       "wokwi",
		Parts:        make([]Part, 0, len(pixels)+1),
		Connections:  make([]Wire, 0, len(conns)),
		Dependencies: map[string]string{},
	}
	d.Parts = append(d.Parts, Part{Type: board.Type, ID: BoardID, Attrs: map[string]string{}})
	for _, p := range pixels {
		d.Parts = append(d.Parts, PixelPart(p))
	}
	for _, c := range conns {
		d.Connections = append(d.Connections, ConnectionWire(c))
	}
	return d
}

func (d *Diagram) Write(w io.Writer) error {
	b, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return fmt.Errorf("couldn't marshal diagram: %w", err)
	}
	b = append(b, '\n')
	_, err = w.Write(b)
	return err
}
