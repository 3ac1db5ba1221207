package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-playroom/internal/core"
)

// KeyMapper translates Bubble Tea key and mouse messages to scene input.
// This centralizes bindings and makes them testable.
type KeyMapper struct {
	cfg core.RuntimeConfig
}

// NewKeyMapper creates a new key mapper for a viewport.
func NewKeyMapper(cfg core.RuntimeConfig) *KeyMapper {
	return &KeyMapper{cfg: cfg}
}

// SetConfig updates the viewport used for mouse coordinates.
func (km *KeyMapper) SetConfig(cfg core.RuntimeConfig) {
	km.cfg = cfg
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	case "left", "a":
		return core.ActionTiltLeft, false
	case "right", "d":
		return core.ActionTiltRight, false
	case "up", "w":
		return core.ActionTiltUp, false
	case "down", "s":
		return core.ActionTiltDown, false
	case "u":
		return core.ActionLockTap, false
	case "esc", "b":
		return core.ActionBack, false
	}
	return core.ActionNone, false
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	if action != core.ActionNone {
		frame.Set(action)
	}
	return isQuit
}

// MapMouse converts a mouse message into a pointer event at the centre of
// the clicked cell. Only the left button is a finger.
func (km *KeyMapper) MapMouse(msg tea.MouseMsg) (core.PointerEvent, bool) {
	pos := km.cfg.ToPixel(msg.X, msg.Y)
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return core.PointerEvent{}, false
		}
		return core.PointerEvent{Kind: core.PointerDown, Pos: pos}, true
	case tea.MouseActionMotion:
		return core.PointerEvent{Kind: core.PointerMove, Pos: pos}, true
	case tea.MouseActionRelease:
		return core.PointerEvent{Kind: core.PointerUp, Pos: pos}, true
	}
	return core.PointerEvent{}, false
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	}
	return MenuActionNone
}
