// Package wiring generates the connections of a chain of addressable pixels:
// the data line from each pixel to the next and every pixel's supply rails.
package wiring

import (
	"fmt"
)

type Pin string

const (
	DOUT Pin = "DOUT"
	DIN  Pin = "DIN"
	VSS  Pin = "VSS"
	VDD  Pin = "VDD"
)

type Connection struct {
	From string
	To   string
}

func (c Connection) String() string {
	return fmt.Sprintf("%s → %s", c.From, c.To)
}

// Rails names the pins every pixel's VSS and VDD are wired to.
type Rails struct {
	Ground string
	Supply string
}

var DefaultRails = Rails{Ground: "esp:GND", Supply: "esp:3V3"}

func PinName(id int, pin Pin) string {
	return fmt.Sprintf("rgb%d:%s", id, pin)
}

// NumConnections is the number of connections Connections returns for
// numPixels pixels.
func NumConnections(numPixels int) int {
	if numPixels <= 0 {
		return 0
	}
	return 3*numPixels - 1
}

func Connections(numPixels int) []Connection {
	return DefaultRails.Connections(1, numPixels)
}

// Connections wires pixels firstID to firstID+numPixels-1. For each pixel in
// turn it returns the data link to the following pixel (absent for the last
// one), then the ground and supply connections.
func (r Rails) Connections(firstID int, numPixels int) []Connection {
	cs := make([]Connection, 0, NumConnections(numPixels))
	last := firstID + numPixels - 1
	for id := firstID; id <= last; id++ {
		if id < last {
			cs = append(cs, Connection{PinName(id, DOUT), PinName(id+1, DIN)})
		}
		cs = append(cs, Connection{PinName(id, VSS), r.Ground})
		cs = append(cs, Connection{PinName(id, VDD), r.Supply})
	}
	return cs
}
