package main

// ActionDefinition defines an action with its default keybindings, mouse bindings, and description
type ActionDefinition struct {
	Name         string
	Keys         []string
	MouseActions []string
	Description  string
}

// actionDefinitions contains all action definitions with default keybindings, mouse bindings, and descriptions
var actionDefinitions = []ActionDefinition{
	{"exit", []string{"Escape", "KeyQ"}, []string{}, "Close the viewer"},
	{"next", []string{"ArrowRight"}, []string{"LeftClick", "WheelDown"}, "Next picture"},
	{"previous", []string{"ArrowLeft"}, []string{"RightClick", "WheelUp"}, "Previous picture"},
	{"jump_first", []string{"Home"}, []string{}, "Jump to first picture"},
	{"jump_last", []string{"End"}, []string{}, "Jump to last picture"},
	{"info", []string{"KeyI"}, []string{}, "Show/hide picture info"},
	{"help", []string{"Shift+Slash"}, []string{}, "Show/hide help"},
}

// ActionExecutor dispatches a named action to InputActions.
// Keyboard and mouse bindings both go through it.
type ActionExecutor struct{}

// NewActionExecutor creates a new ActionExecutor instance
func NewActionExecutor() *ActionExecutor {
	return &ActionExecutor{}
}

// ExecuteAction executes the given action using the InputActions interface
func (ae *ActionExecutor) ExecuteAction(action string, inputActions InputActions) bool {
	switch action {
	case "exit":
		inputActions.Exit()
	case "next":
		inputActions.NavigateNext()
	case "previous":
		inputActions.NavigatePrevious()
	case "jump_first":
		inputActions.JumpToFirst()
	case "jump_last":
		inputActions.JumpToLast()
	case "info":
		inputActions.ToggleInfo()
	case "help":
		inputActions.ToggleHelp()
	default:
		return false
	}

	return true
}

// globalActionExecutor is shared by the keybinding and mousebinding managers
var globalActionExecutor = NewActionExecutor()

// GetActionDescriptions returns a map of action names to their descriptions
func GetActionDescriptions() map[string]string {
	descriptions := make(map[string]string)
	for _, action := range actionDefinitions {
		descriptions[action.Name] = action.Description
	}
	return descriptions
}

// GetDefaultKeybindings returns a map of action names to their default keybindings
func GetDefaultKeybindings() map[string][]string {
	keybindings := make(map[string][]string)
	for _, action := range actionDefinitions {
		keybindings[action.Name] = append([]string(nil), action.Keys...)
	}
	return keybindings
}

// GetDefaultMousebindings returns a map of action names to their default mouse bindings
func GetDefaultMousebindings() map[string][]string {
	mousebindings := make(map[string][]string)
	for _, action := range actionDefinitions {
		mousebindings[action.Name] = append([]string(nil), action.MouseActions...)
	}
	return mousebindings
}
