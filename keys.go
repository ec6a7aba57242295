package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"

	"lasthuman/internal/geom"
	"lasthuman/internal/input"
	"lasthuman/internal/settings"
)

var mouseButtons = map[string]ebiten.MouseButton{
	"left":   ebiten.MouseButtonLeft,
	"right":  ebiten.MouseButtonRight,
	"middle": ebiten.MouseButtonMiddle,
}

// binding is an input.Binding resolved to an ebiten key or button.
type binding struct {
	mouse  bool
	key    ebiten.Key
	button ebiten.MouseButton
}

// keys turns the player's keybinds into input snapshots each tick.
type keys struct {
	bound map[input.Action]binding
	snap  input.Snapshot
}

// newKeys resolves the keybind table. Bad entries are logged and fall back
// to the default binding for that action.
func newKeys(table map[string]string, log *zap.Logger) *keys {
	defaults := settings.Default().Keybinds
	parsed, errs := input.Bindings(table, defaults)
	for _, err := range errs {
		log.Warn("keybind ignored", zap.Error(err))
	}

	k := &keys{bound: make(map[input.Action]binding, len(parsed))}
	for a, b := range parsed {
		r, ok := resolve(b)
		if !ok {
			log.Warn("unknown key, using default", zap.Stringer("action", a), zap.String("key", b.Code))
			def, err := input.ParseBinding(defaults[a.String()])
			if err != nil {
				continue
			}
			if r, ok = resolve(def); !ok {
				continue
			}
		}
		k.bound[a] = r
	}
	return k
}

func resolve(b input.Binding) (binding, bool) {
	if b.Device == input.Mouse {
		btn, ok := mouseButtons[b.Code]
		return binding{mouse: true, button: btn}, ok
	}
	var key ebiten.Key
	if err := key.UnmarshalText([]byte(b.Code)); err != nil {
		return binding{}, false
	}
	return binding{key: key}, true
}

func (k *keys) held(a input.Action) bool {
	b, ok := k.bound[a]
	switch {
	case !ok:
		return false
	case b.mouse:
		return ebiten.IsMouseButtonPressed(b.button)
	default:
		return ebiten.IsKeyPressed(b.key)
	}
}

func (k *keys) pressed(a input.Action) bool {
	b, ok := k.bound[a]
	switch {
	case !ok:
		return false
	case b.mouse:
		return inpututil.IsMouseButtonJustPressed(b.button)
	default:
		return inpututil.IsKeyJustPressed(b.key)
	}
}

// poll samples every action plus the cursor, which is converted to world
// coordinates through view.
func (k *keys) poll(view geom.Rect) input.State {
	k.snap = input.Snapshot{}
	for _, a := range input.Actions() {
		k.snap.Set(a, k.held(a))
	}
	x, y := ebiten.CursorPosition()
	k.snap.SetAim(geom.Vec{X: view.X + float64(x), Y: view.Y + float64(y)})
	return &k.snap
}
