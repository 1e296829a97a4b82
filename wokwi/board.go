package wokwi

import (
	"errors"
	"fmt"

	"golang.org/x/exp/slices"
)

// BoardID is the part ID the power rails in wiring.DefaultRails refer to.
const BoardID = "esp"

var ErrUnknownBoard = errors.New("unknown board")

type Board struct {
	Name string
	// Type is the Wokwi part type.
	Type string
}

var Boards = []Board{
	{"esp32", "board-esp32-devkit-c-v4"},
	{"esp32s3", "board-esp32-s3-devkitc-1"},
}

func LookupBoard(name string) (Board, error) {
	i := slices.IndexFunc(Boards, func(b Board) bool { return b.Name == name })
	if i == -1 {
		return Board{}, fmt.Errorf("%w: %q", ErrUnknownBoard, name)
	}
	return Boards[i], nil
}

func BoardNames() []string {
	names := make([]string, len(Boards))
	for i, b := range Boards {
		names[i] = b.Name
	}
	return names
}
