package main

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// navigationActions are checked in this order each tick
var navigationActions = []string{"next", "previous", "jump_first", "jump_last"}

// InputHandler turns one tick of keyboard, mouse and window events into actions
type InputHandler struct {
	inputActions        InputActions
	keybindingManager   *KeybindingManager
	mousebindingManager *MousebindingManager
}

// NewInputHandler creates a new InputHandler
func NewInputHandler(inputActions InputActions, keybindingManager *KeybindingManager, mousebindingManager *MousebindingManager) *InputHandler {
	return &InputHandler{
		inputActions:        inputActions,
		keybindingManager:   keybindingManager,
		mousebindingManager: mousebindingManager,
	}
}

// HandleInput processes all input for the current tick
// Returns true if any input was processed, false otherwise
func (h *InputHandler) HandleInput() bool {
	if h.handleCloseRequest() {
		return true
	}

	inputProcessed := false
	inputProcessed = h.handleToggles() || inputProcessed

	// Navigation only matters with something to navigate to
	if h.inputActions.GetTotalPagesCount() > 1 {
		inputProcessed = h.handleNavigation() || inputProcessed
	}

	return inputProcessed
}

func (h *InputHandler) handleCloseRequest() bool {
	if ebiten.IsWindowBeingClosed() {
		h.inputActions.Exit()
		return true
	}
	return h.execute("exit")
}

func (h *InputHandler) handleToggles() bool {
	inputProcessed := h.execute("info")
	inputProcessed = h.execute("help") || inputProcessed
	return inputProcessed
}

func (h *InputHandler) handleNavigation() bool {
	inputProcessed := false
	for _, action := range navigationActions {
		inputProcessed = h.execute(action) || inputProcessed
	}
	return inputProcessed
}

func (h *InputHandler) execute(action string) bool {
	if h.keybindingManager.ExecuteAction(action, h.inputActions) {
		return true
	}
	return h.mousebindingManager.ExecuteAction(action, h.inputActions)
}
