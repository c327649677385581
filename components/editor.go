package components

import (
	"github.com/automoto/hexwall/shared/hexgrid"
	"github.com/yohamta/donburi"
)

// EditorData is the state of the mouse tile editor.
type EditorData struct {
	Hover    hexgrid.Hex
	HasHover bool
	// Unsaved is set when the layout changed since the last save.
	Unsaved bool
	Toggles int
}

var Editor = donburi.NewComponentType[EditorData]()
