package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
)

// Sort method constants
const (
	SortNatural    = 0 // Natural sort order (e.g., file1, file2, file10)
	SortSimple     = 1 // Simple string sort (lexicographical)
	SortEntryOrder = 2 // Directory or archive order (no sort)
)

const (
	defaultFontSize = 18.0
	minFontSize     = 8.0
	maxCacheSize    = 64
)

// ConfigLoadResult contains the result of loading configuration
type ConfigLoadResult struct {
	Config   Config
	HasError bool
	Warnings []string
	Status   string // "OK", "Default", "Warning", "Error"
}

// Config is read from ~/.pv.json at startup. The viewer never writes it.
type Config struct {
	SortMethod       int                 `json:"sort_method"`
	StrictExtensions bool                `json:"strict_extensions"`
	TextureCacheSize int                 `json:"texture_cache_size"`
	FontSize         float64             `json:"font_size"`
	ShowInfo         bool                `json:"show_info"`
	Keybindings      map[string][]string `json:"keybindings"`
	Mousebindings    map[string][]string `json:"mousebindings"`
	Mouse            MouseSettings       `json:"mouse"`
}

func defaultConfig() Config {
	return Config{
		SortMethod:       SortEntryOrder,
		StrictExtensions: false,
		TextureCacheSize: defaultTextureCacheSize,
		FontSize:         defaultFontSize,
		ShowInfo:         false,
		Keybindings:      GetDefaultKeybindings(),
		Mousebindings:    GetDefaultMousebindings(),
		Mouse:            GetDefaultMouseSettings(),
	}
}

func getConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "pv.json"
	}
	return filepath.Join(homeDir, ".pv.json")
}

func loadConfigFromPath(configPath string) ConfigLoadResult {
	config := defaultConfig()

	result := ConfigLoadResult{
		Config:   config,
		HasError: false,
		Warnings: []string{},
		Status:   "OK",
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		// Config file not found is not an error - use defaults
		result.Status = "Default"
		return result
	}

	if err := json.Unmarshal(data, &config); err != nil {
		log.Printf("Warning: Invalid config file %s, using defaults: %v", configPath, err)
		result.HasError = true
		result.Status = "Error"
		result.Warnings = append(result.Warnings, fmt.Sprintf("Invalid config file: %v", err))
		return result
	}

	if config.SortMethod < SortNatural || config.SortMethod > SortEntryOrder {
		config.SortMethod = SortEntryOrder
	}

	if config.TextureCacheSize < 1 {
		config.TextureCacheSize = defaultTextureCacheSize
	} else if config.TextureCacheSize > maxCacheSize {
		config.TextureCacheSize = maxCacheSize
	}

	if config.FontSize < minFontSize {
		config.FontSize = defaultFontSize
	}

	if config.Mouse.WheelSensitivity <= 0 {
		config.Mouse.WheelSensitivity = 1.0
	}

	// Fill in missing bindings with defaults, then validate
	config.Keybindings = mergeBindings(config.Keybindings, GetDefaultKeybindings())
	if err := validateKeybindings(config.Keybindings); err != nil {
		log.Printf("Warning: Invalid keybindings detected, using defaults: %v", err)
		config.Keybindings = GetDefaultKeybindings()
		result.Status = "Warning"
		result.Warnings = append(result.Warnings, fmt.Sprintf("Keybinding errors: %v", err))
	}

	config.Mousebindings = mergeBindings(config.Mousebindings, GetDefaultMousebindings())
	if err := validateMousebindings(config.Mousebindings); err != nil {
		log.Printf("Warning: Invalid mouse bindings detected, using defaults: %v", err)
		config.Mousebindings = GetDefaultMousebindings()
		result.Status = "Warning"
		result.Warnings = append(result.Warnings, fmt.Sprintf("Mouse binding errors: %v", err))
	}

	result.Config = config
	return result
}

// mergeBindings adds the default binding for every action missing from bindings.
func mergeBindings(bindings, defaults map[string][]string) map[string][]string {
	if bindings == nil {
		return defaults
	}
	for action, keys := range defaults {
		if _, exists := bindings[action]; !exists {
			bindings[action] = keys
		}
	}
	return bindings
}
