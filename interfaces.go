package main

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// RenderState provides read-only access to viewer state for the renderer
type RenderState interface {
	// Rendering data
	GetCurrentPicture() (Picture, FitResult, bool)
	GetCurrentTexture() *ebiten.Image
	ConsumeFrame() bool

	// UI state
	IsShowingHelp() bool
	IsShowingInfo() bool

	// Display data
	GetCurrentIndex() int
	GetTotalPagesCount() int
	GetFontSize() float64
	GetConfigStatus() ConfigLoadResult
	GetKeybindings() map[string][]string
	GetMousebindings() map[string][]string
}

// RenderStateSnapshot captures what was on screen when the last frame was drawn
type RenderStateSnapshot struct {
	Index        int
	ShowingHelp  bool
	ShowingInfo  bool
	WindowWidth  int
	WindowHeight int
}

// NewRenderStateSnapshot creates a snapshot of the state that affects the frame
func NewRenderStateSnapshot(state RenderState, windowWidth, windowHeight int) *RenderStateSnapshot {
	return &RenderStateSnapshot{
		Index:        state.GetCurrentIndex(),
		ShowingHelp:  state.IsShowingHelp(),
		ShowingInfo:  state.IsShowingInfo(),
		WindowWidth:  windowWidth,
		WindowHeight: windowHeight,
	}
}

// Equals checks if two snapshots are equal
func (s *RenderStateSnapshot) Equals(other *RenderStateSnapshot) bool {
	if other == nil {
		return false
	}
	return *s == *other
}

// InputActions provides action methods for the input handler
type InputActions interface {
	// Application control
	Exit()

	// Display toggles
	ToggleHelp()
	ToggleInfo()

	// Navigation
	NavigateNext()
	NavigatePrevious()
	JumpToFirst()
	JumpToLast()

	// Common data access
	GetTotalPagesCount() int
}

// InputSource processes one batch of pending input per tick.
// It returns true if any input was handled.
type InputSource interface {
	HandleInput() bool
}
