package core

import "testing"

func TestKeyFromName(t *testing.T) {
	tests := []struct {
		name     string
		expected Key
	}{
		{"up", KeyUp},
		{"w", KeyUp},
		{"ArrowUp", KeyUp},
		{"down", KeyDown},
		{"s", KeyDown},
		{"ArrowDown", KeyDown},
		{"W", KeyUp},
		{"S", KeyDown},
		{"left", KeyNone},
		{"enter", KeyNone},
		{"", KeyNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := KeyFromName(tc.name); got != tc.expected {
				t.Errorf("KeyFromName(%q) = %s, expected %s", tc.name, got, tc.expected)
			}
		})
	}
}

func TestKeyString(t *testing.T) {
	if KeyUp.String() != "Up" || KeyDown.String() != "Down" || KeyNone.String() != "None" {
		t.Error("unexpected key names")
	}
	if Key(42).String() != "Unknown" {
		t.Error("out of range key should be Unknown")
	}
}
