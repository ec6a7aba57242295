// Package input is the device-independent view of player input. The
// simulation only ever asks whether a logical action is held and where the
// player is aiming; which key or button maps to which action is decided by
// the keybind table.
package input

import (
	"fmt"
	"strings"

	"lasthuman/internal/geom"
)

type Action int

const (
	MoveUp Action = iota
	MoveDown
	MoveLeft
	MoveRight
	Dash
	Attack
	Scream
	Pause
	ToggleAuto
	ReloadBalance
	actionCount
)

var actionNames = [actionCount]string{
	MoveUp:        "move_up",
	MoveDown:      "move_down",
	MoveLeft:      "move_left",
	MoveRight:     "move_right",
	Dash:          "dash",
	Attack:        "attack",
	Scream:        "scream",
	Pause:         "pause",
	ToggleAuto:    "toggle_auto",
	ReloadBalance: "reload_balance",
}

func (a Action) String() string {
	if a < 0 || a >= actionCount {
		return fmt.Sprintf("Action(%d)", int(a))
	}
	return actionNames[a]
}

// Actions lists every bindable action.
func Actions() []Action {
	out := make([]Action, actionCount)
	for i := range out {
		out[i] = Action(i)
	}
	return out
}

// State is what the simulation reads each step.
type State interface {
	Held(a Action) bool
	// Aim is the world-space point the player points at; ok is false when
	// no pointer is available.
	Aim() (p geom.Vec, ok bool)
}

// Snapshot is a frozen State, captured once per rendered frame and reused
// for every fixed step inside it.
type Snapshot struct {
	held   [actionCount]bool
	aim    geom.Vec
	hasAim bool
}

func (s *Snapshot) Set(a Action, down bool) {
	if a >= 0 && a < actionCount {
		s.held[a] = down
	}
}

func (s *Snapshot) SetAim(p geom.Vec) {
	s.aim = p
	s.hasAim = true
}

func (s Snapshot) Held(a Action) bool {
	if a < 0 || a >= actionCount {
		return false
	}
	return s.held[a]
}

func (s Snapshot) Aim() (geom.Vec, bool) { return s.aim, s.hasAim }

// Device says where a binding comes from.
type Device int

const (
	Keyboard Device = iota
	Mouse
)

// Binding is a parsed keybind entry. Code is the key name for Keyboard
// bindings ("W", "Space", "F5") and the button name for Mouse bindings
// ("left", "right", "middle").
type Binding struct {
	Device Device
	Code   string
}

func ParseBinding(s string) (Binding, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Binding{}, fmt.Errorf("empty binding")
	}
	if btn, ok := strings.CutPrefix(strings.ToLower(s), "mouse_"); ok {
		switch btn {
		case "left", "right", "middle":
			return Binding{Device: Mouse, Code: btn}, nil
		}
		return Binding{}, fmt.Errorf("unknown mouse button %q", s)
	}
	return Binding{Device: Keyboard, Code: s}, nil
}

// Bindings resolves a keybind table (action name -> binding string) against
// defaults. Entries that fail to parse or name unknown actions are reported
// and the default is kept.
func Bindings(table, defaults map[string]string) (map[Action]Binding, []error) {
	out := make(map[Action]Binding, actionCount)
	var errs []error
	for _, a := range Actions() {
		name := a.String()
		raw, ok := table[name]
		if !ok {
			raw = defaults[name]
		}
		b, err := ParseBinding(raw)
		if err != nil {
			errs = append(errs, fmt.Errorf("keybind %s: %w", name, err))
			if b, err = ParseBinding(defaults[name]); err != nil {
				continue
			}
		}
		out[a] = b
	}
	for name := range table {
		if !known(name) {
			errs = append(errs, fmt.Errorf("keybind %s: unknown action", name))
		}
	}
	return out, errs
}

func known(name string) bool {
	for _, n := range actionNames {
		if n == name {
			return true
		}
	}
	return false
}
