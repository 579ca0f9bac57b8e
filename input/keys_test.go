package input

import (
	"errors"
	"testing"
)

func TestParseKey(t *testing.T) {
	tests := []struct {
		name string
		want KeyCode
	}{
		{"W", KeyW},
		{"w", KeyW},
		{" l ", KeyL},
		{"Escape", KeyEscape},
		{"f5", KeyF5},
		{"F12", KeyF12},
		{"7", Key7},
		{"left", KeyLeft},
		{"space", KeySpace},
	}
	for _, tt := range tests {
		got, err := ParseKey(tt.name)
		if err != nil {
			t.Errorf("ParseKey(%q): unexpected error %v", tt.name, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseKey(%q): expected %d, got %d", tt.name, tt.want, got)
		}
	}
}

func TestParseKeyUnknown(t *testing.T) {
	for _, name := range []string{"", "hyper", "f13"} {
		if _, err := ParseKey(name); !errors.Is(err, ErrInvalidKey) {
			t.Errorf("ParseKey(%q): expected ErrInvalidKey, got %v", name, err)
		}
	}
}

func TestKeyCodeString(t *testing.T) {
	if s := KeyW.String(); s != "W" {
		t.Errorf("String: expected W, got %q", s)
	}
	if s := KeyEscape.String(); s != "escape" {
		t.Errorf("String: expected escape, got %q", s)
	}
	if s := KeyCode(1000).String(); s != "key(1000)" {
		t.Errorf("String: expected key(1000), got %q", s)
	}
	// inside the domain but without a name
	if s := KeyCode(1).String(); s != "key(1)" {
		t.Errorf("String: expected key(1), got %q", s)
	}
}

func TestKeyCodeStringRoundTrip(t *testing.T) {
	for name, code := range keyNames {
		got, err := ParseKey(code.String())
		if err != nil || got != code {
			t.Errorf("%q: String %q parsed back to %v, %v", name, code.String(), got, err)
		}
	}
}

func TestKeyCodeValid(t *testing.T) {
	if !KeyMenu.Valid() {
		t.Error("KeyMenu: expected valid")
	}
	if KeyCode(-1).Valid() || KeyCode(KeyCodeCount).Valid() {
		t.Error("out-of-range codes must be invalid")
	}
}
