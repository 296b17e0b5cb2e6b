package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"click-to-edit/internal/tui/placement"
)

// Settings are the user-tunable options of the editor. Pointer fields tell
// "absent from the file" apart from an explicit zero.
type Settings struct {
	Placeholder    string   `json:"placeholder,omitempty"`
	MaxLength      int      `json:"maxLength,omitempty"`
	ShowButtons    *bool    `json:"showButtons,omitempty"`
	ControlWidthEm *float64 `json:"controlWidthEm,omitempty"`
	GapEm          *float64 `json:"gapEm,omitempty"`
	StateFile      string   `json:"stateFile,omitempty"`
	LogFile        string   `json:"logFile,omitempty"`
	Debug          bool     `json:"debug,omitempty"`
}

// Default returns settings matching the stock widget.
func Default() *Settings {
	show := true
	cw := float64(placement.DefaultControlWidthEm)
	gap := float64(placement.DefaultGapEm)
	return &Settings{
		Placeholder:    "New Project",
		ShowButtons:    &show,
		ControlWidthEm: &cw,
		GapEm:          &gap,
	}
}

// Load reads settings from path. Values missing from the file keep their
// defaults.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	s := Default()
	if err := json.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("parse config JSON: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// DefaultPath is settings.json under the user config directory, or "" when
// that directory is unknown.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "click-to-edit", "settings.json")
}

// LoadOrDefault is Load, except that a missing file yields Default.
func LoadOrDefault(path string) (*Settings, error) {
	s, err := Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	return s, err
}

// Validate rejects negative sizes.
func (s *Settings) Validate() error {
	if s.MaxLength < 0 {
		return fmt.Errorf("maxLength must not be negative, got %d", s.MaxLength)
	}
	if s.ControlWidthEm != nil && *s.ControlWidthEm < 0 {
		return fmt.Errorf("controlWidthEm must not be negative, got %g", *s.ControlWidthEm)
	}
	if s.GapEm != nil && *s.GapEm < 0 {
		return fmt.Errorf("gapEm must not be negative, got %g", *s.GapEm)
	}
	return nil
}

// Buttons reports whether the commit/cancel controls are shown.
func (s *Settings) Buttons() bool { return s.ShowButtons == nil || *s.ShowButtons }

// Placement returns the control layout constants.
func (s *Settings) Placement() placement.Options {
	opts := placement.DefaultOptions()
	if s.ControlWidthEm != nil {
		opts.ControlWidthEm = *s.ControlWidthEm
	}
	if s.GapEm != nil {
		opts.GapEm = *s.GapEm
	}
	return opts
}

// Save writes s to path as indented JSON, creating parent directories.
func Save(path string, s *Settings) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}
