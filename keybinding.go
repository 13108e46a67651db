package main

import (
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// KeybindingManager resolves configured key strings to ebiten keys and
// runs the matching actions
type KeybindingManager struct {
	keybindings map[string][]string
	keyMapping  map[string]ebiten.Key
}

// NewKeybindingManager creates a new KeybindingManager
func NewKeybindingManager(keybindings map[string][]string) *KeybindingManager {
	return &KeybindingManager{
		keybindings: keybindings,
		keyMapping:  getKeyMapping(),
	}
}

// getKeyMapping returns a mapping from key names used in the config to ebiten keys
func getKeyMapping() map[string]ebiten.Key {
	mapping := map[string]ebiten.Key{
		"Space":      ebiten.KeySpace,
		"Backspace":  ebiten.KeyBackspace,
		"Enter":      ebiten.KeyEnter,
		"Escape":     ebiten.KeyEscape,
		"Tab":        ebiten.KeyTab,
		"Home":       ebiten.KeyHome,
		"End":        ebiten.KeyEnd,
		"PageUp":     ebiten.KeyPageUp,
		"PageDown":   ebiten.KeyPageDown,
		"ArrowUp":    ebiten.KeyArrowUp,
		"ArrowDown":  ebiten.KeyArrowDown,
		"ArrowLeft":  ebiten.KeyArrowLeft,
		"ArrowRight": ebiten.KeyArrowRight,
		"Comma":      ebiten.KeyComma,
		"Period":     ebiten.KeyPeriod,
		"Slash":      ebiten.KeySlash,
		"Minus":      ebiten.KeyMinus,
		"Equal":      ebiten.KeyEqual,
	}
	for k := ebiten.KeyA; k <= ebiten.KeyZ; k++ {
		mapping["Key"+string(rune('A'+int(k-ebiten.KeyA)))] = k
	}
	for k := ebiten.KeyDigit0; k <= ebiten.KeyDigit9; k++ {
		mapping["Key"+string(rune('0'+int(k-ebiten.KeyDigit0)))] = k
	}
	return mapping
}

// KeyCombination represents a key with optional modifiers
type KeyCombination struct {
	Key   ebiten.Key
	Shift bool
	Ctrl  bool
	Alt   bool
}

// parseKeyCombination parses a key string like "Shift+Slash"
func parseKeyCombination(keyStr string, keyMapping map[string]ebiten.Key) (*KeyCombination, error) {
	parts := strings.Split(keyStr, "+")
	keyName := parts[len(parts)-1]
	key, exists := keyMapping[keyName]
	if !exists {
		return nil, fmt.Errorf("unknown key: %s", keyName)
	}

	combination := &KeyCombination{Key: key}
	for _, modifier := range parts[:len(parts)-1] {
		switch strings.ToLower(modifier) {
		case "shift":
			combination.Shift = true
		case "ctrl":
			combination.Ctrl = true
		case "alt":
			combination.Alt = true
		default:
			return nil, fmt.Errorf("unknown modifier: %s", modifier)
		}
	}
	return combination, nil
}

// validateKeybindings checks key names and reports keys bound to two actions
func validateKeybindings(keybindings map[string][]string) error {
	keyToAction := make(map[string]string)
	keyMapping := getKeyMapping()

	for action, keys := range keybindings {
		for _, keyStr := range keys {
			if _, err := parseKeyCombination(keyStr, keyMapping); err != nil {
				return fmt.Errorf("invalid key '%s' for action '%s': %v", keyStr, action, err)
			}
			if existingAction, exists := keyToAction[keyStr]; exists {
				return fmt.Errorf("key conflict: '%s' is bound to both '%s' and '%s'", keyStr, existingAction, action)
			}
			keyToAction[keyStr] = action
		}
	}
	return nil
}

// modifiersMatch checks that exactly the wanted modifiers are held
func modifiersMatch(shift, ctrl, alt bool) bool {
	return ebiten.IsKeyPressed(ebiten.KeyShift) == shift &&
		ebiten.IsKeyPressed(ebiten.KeyControl) == ctrl &&
		ebiten.IsKeyPressed(ebiten.KeyAlt) == alt
}

// isKeyPressed checks if a key combination was pressed this tick
func (km *KeybindingManager) isKeyPressed(combination *KeyCombination) bool {
	if !inpututil.IsKeyJustPressed(combination.Key) {
		return false
	}
	return modifiersMatch(combination.Shift, combination.Ctrl, combination.Alt)
}

// CheckAction checks if any keybinding for the given action is pressed
func (km *KeybindingManager) CheckAction(action string) bool {
	for _, keyStr := range km.keybindings[action] {
		combination, err := parseKeyCombination(keyStr, km.keyMapping)
		if err == nil && km.isKeyPressed(combination) {
			return true
		}
	}
	return false
}

// ExecuteAction runs action if one of its keys was pressed
func (km *KeybindingManager) ExecuteAction(action string, inputActions InputActions) bool {
	if !km.CheckAction(action) {
		return false
	}
	return globalActionExecutor.ExecuteAction(action, inputActions)
}
