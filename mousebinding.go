package main

import (
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// MouseSettings contains mouse-specific configuration
type MouseSettings struct {
	EnableMouse      bool    `json:"enable_mouse"`
	WheelInverted    bool    `json:"wheel_inverted"`
	WheelSensitivity float64 `json:"wheel_sensitivity"`
}

// GetDefaultMouseSettings returns the default mouse settings
func GetDefaultMouseSettings() MouseSettings {
	return MouseSettings{
		EnableMouse:      true,
		WheelInverted:    false,
		WheelSensitivity: 1.0,
	}
}

// MouseCombination represents a mouse action with optional modifiers
type MouseCombination struct {
	Button      ebiten.MouseButton
	IsWheel     bool
	WheelDeltaY float64
	Shift       bool
	Ctrl        bool
	Alt         bool
}

// getMouseMapping returns a mapping from mouse names used in the config to ebiten buttons
func getMouseMapping() map[string]ebiten.MouseButton {
	return map[string]ebiten.MouseButton{
		"LeftClick":   ebiten.MouseButtonLeft,
		"RightClick":  ebiten.MouseButtonRight,
		"MiddleClick": ebiten.MouseButtonMiddle,
		"Back":        ebiten.MouseButton3,
		"Forward":     ebiten.MouseButton4,
	}
}

// parseMouseCombination parses a mouse string like "Shift+LeftClick" or "WheelUp"
func parseMouseCombination(mouseStr string, mouseMapping map[string]ebiten.MouseButton) (*MouseCombination, error) {
	parts := strings.Split(mouseStr, "+")
	actionName := parts[len(parts)-1]

	combination := &MouseCombination{}
	switch actionName {
	case "WheelUp":
		combination.IsWheel = true
		combination.WheelDeltaY = 1.0
	case "WheelDown":
		combination.IsWheel = true
		combination.WheelDeltaY = -1.0
	default:
		button, exists := mouseMapping[actionName]
		if !exists {
			return nil, fmt.Errorf("unknown mouse action: %s", actionName)
		}
		combination.Button = button
	}

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

// validateMousebindings checks every configured mouse string
func validateMousebindings(mousebindings map[string][]string) error {
	mouseMapping := getMouseMapping()
	for action, mouseStrs := range mousebindings {
		for _, mouseStr := range mouseStrs {
			if _, err := parseMouseCombination(mouseStr, mouseMapping); err != nil {
				return fmt.Errorf("invalid mouse binding '%s' for action '%s': %v", mouseStr, action, err)
			}
		}
	}
	return nil
}

// MousebindingManager handles dynamic mouse binding processing
type MousebindingManager struct {
	mousebindings map[string][]string
	mouseMapping  map[string]ebiten.MouseButton
	settings      MouseSettings
}

// NewMousebindingManager creates a new MousebindingManager
func NewMousebindingManager(mousebindings map[string][]string, settings MouseSettings) *MousebindingManager {
	return &MousebindingManager{
		mousebindings: mousebindings,
		mouseMapping:  getMouseMapping(),
		settings:      settings,
	}
}

// isMouseActionTriggered checks if a mouse combination fired this tick
func (mm *MousebindingManager) isMouseActionTriggered(combination *MouseCombination) bool {
	if !mm.settings.EnableMouse {
		return false
	}
	if !modifiersMatch(combination.Shift, combination.Ctrl, combination.Alt) {
		return false
	}

	if combination.IsWheel {
		_, wheelY := ebiten.Wheel()
		if mm.settings.WheelInverted {
			wheelY = -wheelY
		}
		wheelY *= mm.settings.WheelSensitivity
		return (combination.WheelDeltaY > 0 && wheelY > 0) || (combination.WheelDeltaY < 0 && wheelY < 0)
	}

	return inpututil.IsMouseButtonJustPressed(combination.Button)
}

// CheckAction checks if any mouse binding for the given action is triggered
func (mm *MousebindingManager) CheckAction(action string) bool {
	for _, mouseStr := range mm.mousebindings[action] {
		combination, err := parseMouseCombination(mouseStr, mm.mouseMapping)
		if err == nil && mm.isMouseActionTriggered(combination) {
			return true
		}
	}
	return false
}

// ExecuteAction runs action if one of its mouse bindings fired
func (mm *MousebindingManager) ExecuteAction(action string, inputActions InputActions) bool {
	if !mm.CheckAction(action) {
		return false
	}
	return globalActionExecutor.ExecuteAction(action, inputActions)
}
