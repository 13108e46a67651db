package main

import (
	"reflect"
	"strings"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestParseKeyCombination(t *testing.T) {
	mapping := getKeyMapping()
	tests := []struct {
		name        string
		keyStr      string
		expected    *KeyCombination
		expectError bool
	}{
		{"Plain key", "Escape", &KeyCombination{Key: ebiten.KeyEscape}, false},
		{"Letter", "KeyQ", &KeyCombination{Key: ebiten.KeyQ}, false},
		{"Digit", "Key7", &KeyCombination{Key: ebiten.KeyDigit7}, false},
		{"Shift modifier", "Shift+Slash", &KeyCombination{Key: ebiten.KeySlash, Shift: true}, false},
		{"Two modifiers", "ctrl+alt+Home", &KeyCombination{Key: ebiten.KeyHome, Ctrl: true, Alt: true}, false},
		{"Unknown key", "KeyPlus", nil, true},
		{"Unknown modifier", "Super+KeyA", nil, true},
		{"Empty", "", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseKeyCombination(tt.keyStr, mapping)
			if tt.expectError {
				if err == nil {
					t.Errorf("Expected error for %q", tt.keyStr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Expected %+v, got %+v", tt.expected, got)
			}
		})
	}
}

func TestValidateKeybindings(t *testing.T) {
	tests := []struct {
		name        string
		keybindings map[string][]string
		expectError string
	}{
		{"Defaults", GetDefaultKeybindings(), ""},
		{"Conflict", map[string][]string{"next": {"Space"}, "previous": {"Space"}}, "key conflict"},
		{"Unknown key", map[string][]string{"next": {"Hyper"}}, "invalid key"},
		{"Empty binding", map[string][]string{"next": {}}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateKeybindings(tt.keybindings)
			if tt.expectError == "" {
				if err != nil {
					t.Errorf("Unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.expectError) {
				t.Errorf("Expected error containing %q, got %v", tt.expectError, err)
			}
		})
	}
}

func TestParseMouseCombination(t *testing.T) {
	mapping := getMouseMapping()
	tests := []struct {
		name        string
		mouseStr    string
		expected    *MouseCombination
		expectError bool
	}{
		{"Left click", "LeftClick", &MouseCombination{Button: ebiten.MouseButtonLeft}, false},
		{"Wheel up", "WheelUp", &MouseCombination{IsWheel: true, WheelDeltaY: 1}, false},
		{"Wheel down with shift", "Shift+WheelDown", &MouseCombination{IsWheel: true, WheelDeltaY: -1, Shift: true}, false},
		{"Unknown action", "TripleClick", nil, true},
		{"Unknown modifier", "Meta+LeftClick", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseMouseCombination(tt.mouseStr, mapping)
			if tt.expectError {
				if err == nil {
					t.Errorf("Expected error for %q", tt.mouseStr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Expected %+v, got %+v", tt.expected, got)
			}
		})
	}

	if err := validateMousebindings(GetDefaultMousebindings()); err != nil {
		t.Errorf("Default mouse bindings invalid: %v", err)
	}
}

func TestDefaultBindingsAreCopies(t *testing.T) {
	keys := GetDefaultKeybindings()
	keys["exit"][0] = "KeyZ"
	if GetDefaultKeybindings()["exit"][0] != "Escape" {
		t.Error("Modifying returned keybindings changed the defaults")
	}
}

func TestActionExecutor(t *testing.T) {
	v, _, _ := newTestViewer(t, [2]int{10, 10}, [2]int{20, 20})
	v.Start()

	if globalActionExecutor.ExecuteAction("zoom_in", v) {
		t.Error("Unknown action reported as executed")
	}
	if !globalActionExecutor.ExecuteAction("jump_last", v) {
		t.Fatal("jump_last not executed")
	}
	if v.nav.Index() != 1 {
		t.Errorf("Expected index 1, got %d", v.nav.Index())
	}
}
