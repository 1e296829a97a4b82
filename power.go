package main

import (
	"flag"
	"fmt"
	"strings"

	"github.com/Jon-Bright/wokwigen/wiring"
)

var groundPin = flag.String("ground", wiring.DefaultRails.Ground, "The board pin every pixel's VSS is connected to. For diagram, it must be a pin of the board part \"esp\"")
var supplyPin = flag.String("supply", wiring.DefaultRails.Supply, "The board pin every pixel's VDD is connected to. For diagram, it must be a pin of the board part \"esp\"")

func rails() wiring.Rails {
	return wiring.Rails{Ground: *groundPin, Supply: *supplyPin}
}

// checkRails fails unless both rails are pins of part.
func checkRails(r wiring.Rails, part string) error {
	for _, pin := range []string{r.Ground, r.Supply} {
		if !strings.HasPrefix(pin, part+":") || len(pin) == len(part)+1 {
			return fmt.Errorf("rail %q is not a pin of part %q", pin, part)
		}
	}
	return nil
}
