package input

import (
	"fmt"
	"strings"
)

// KeyCode identifies a physical keyboard key. Values match GLFW key codes so
// the window layer converts with a plain cast.
type KeyCode int

// KeyCodeCount is the size of the recognised key domain [0, KeyCodeCount).
const KeyCodeCount = 349

const (
	KeySpace        KeyCode = 32
	KeyApostrophe   KeyCode = 39
	KeyComma        KeyCode = 44
	KeyMinus        KeyCode = 45
	KeyPeriod       KeyCode = 46
	KeySlash        KeyCode = 47
	Key0            KeyCode = 48
	Key1            KeyCode = 49
	Key2            KeyCode = 50
	Key3            KeyCode = 51
	Key4            KeyCode = 52
	Key5            KeyCode = 53
	Key6            KeyCode = 54
	Key7            KeyCode = 55
	Key8            KeyCode = 56
	Key9            KeyCode = 57
	KeySemicolon    KeyCode = 59
	KeyEqual        KeyCode = 61
	KeyA            KeyCode = 65
	KeyB            KeyCode = 66
	KeyC            KeyCode = 67
	KeyD            KeyCode = 68
	KeyE            KeyCode = 69
	KeyF            KeyCode = 70
	KeyG            KeyCode = 71
	KeyH            KeyCode = 72
	KeyI            KeyCode = 73
	KeyJ            KeyCode = 74
	KeyK            KeyCode = 75
	KeyL            KeyCode = 76
	KeyM            KeyCode = 77
	KeyN            KeyCode = 78
	KeyO            KeyCode = 79
	KeyP            KeyCode = 80
	KeyQ            KeyCode = 81
	KeyR            KeyCode = 82
	KeyS            KeyCode = 83
	KeyT            KeyCode = 84
	KeyU            KeyCode = 85
	KeyV            KeyCode = 86
	KeyW            KeyCode = 87
	KeyX            KeyCode = 88
	KeyY            KeyCode = 89
	KeyZ            KeyCode = 90
	KeyLeftBracket  KeyCode = 91
	KeyBackslash    KeyCode = 92
	KeyRightBracket KeyCode = 93
	KeyGraveAccent  KeyCode = 96
	KeyEscape       KeyCode = 256
	KeyEnter        KeyCode = 257
	KeyTab          KeyCode = 258
	KeyBackspace    KeyCode = 259
	KeyInsert       KeyCode = 260
	KeyDelete       KeyCode = 261
	KeyRight        KeyCode = 262
	KeyLeft         KeyCode = 263
	KeyDown         KeyCode = 264
	KeyUp           KeyCode = 265
	KeyPageUp       KeyCode = 266
	KeyPageDown     KeyCode = 267
	KeyHome         KeyCode = 268
	KeyEnd          KeyCode = 269
	KeyF1           KeyCode = 290
	KeyF2           KeyCode = 291
	KeyF3           KeyCode = 292
	KeyF4           KeyCode = 293
	KeyF5           KeyCode = 294
	KeyF6           KeyCode = 295
	KeyF7           KeyCode = 296
	KeyF8           KeyCode = 297
	KeyF9           KeyCode = 298
	KeyF10          KeyCode = 299
	KeyF11          KeyCode = 300
	KeyF12          KeyCode = 301
	KeyLeftShift    KeyCode = 340
	KeyLeftControl  KeyCode = 341
	KeyLeftAlt      KeyCode = 342
	KeyRightShift   KeyCode = 344
	KeyRightControl KeyCode = 345
	KeyRightAlt     KeyCode = 346
	KeyMenu         KeyCode = 348
)

// named keys accepted in config files, lowercase
var keyNames = map[string]KeyCode{
	"space": KeySpace, "apostrophe": KeyApostrophe, "comma": KeyComma,
	"minus": KeyMinus, "period": KeyPeriod, "slash": KeySlash,
	"semicolon": KeySemicolon, "equal": KeyEqual,
	"leftbracket": KeyLeftBracket, "backslash": KeyBackslash,
	"rightbracket": KeyRightBracket, "graveaccent": KeyGraveAccent,
	"escape": KeyEscape, "enter": KeyEnter, "tab": KeyTab,
	"backspace": KeyBackspace, "insert": KeyInsert, "delete": KeyDelete,
	"right": KeyRight, "left": KeyLeft, "down": KeyDown, "up": KeyUp,
	"pageup": KeyPageUp, "pagedown": KeyPageDown, "home": KeyHome, "end": KeyEnd,
	"leftshift": KeyLeftShift, "leftcontrol": KeyLeftControl, "leftalt": KeyLeftAlt,
	"rightshift": KeyRightShift, "rightcontrol": KeyRightControl, "rightalt": KeyRightAlt,
	"menu": KeyMenu,
}

// keyLabels is keyNames inverted, filled by init.
var keyLabels [KeyCodeCount]string

func init() {
	for c := KeyA; c <= KeyZ; c++ {
		keyNames[strings.ToLower(string(rune(c)))] = c
	}
	for c := Key0; c <= Key9; c++ {
		keyNames[string(rune(c))] = c
	}
	for i := 0; i < 12; i++ {
		keyNames[fmt.Sprintf("f%d", i+1)] = KeyF1 + KeyCode(i)
	}
	for name, code := range keyNames {
		if len(name) == 1 {
			name = strings.ToUpper(name)
		}
		keyLabels[code] = name
	}
}

// Valid reports whether k lies inside the recognised key domain.
func (k KeyCode) Valid() bool {
	return k >= 0 && k < KeyCodeCount
}

func (k KeyCode) String() string {
	if k.Valid() && keyLabels[k] != "" {
		return keyLabels[k]
	}
	return fmt.Sprintf("key(%d)", int(k))
}

// ParseKey resolves a case-insensitive key name such as "W", "escape" or "f5".
func ParseKey(name string) (KeyCode, error) {
	k, ok := keyNames[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, fmt.Errorf("%w: unknown key name %q", ErrInvalidKey, name)
	}
	return k, nil
}
