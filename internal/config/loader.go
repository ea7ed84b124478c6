package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultPath returns the standard config file location:
// $XDG_CONFIG_HOME/glint/config.yaml, falling back to ~/.config.
func DefaultPath() (string, error) {
	if base := os.Getenv("XDG_CONFIG_HOME"); base != "" {
		return filepath.Join(base, "glint", "config.yaml"), nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", "glint", "config.yaml"), nil
}

// Load reads and validates the config at path. A missing file is not an
// error: a commented default config is written there and the defaults
// returned, so first runs leave something editable behind.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		writeDefaultFile(path)
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	// Unmarshal over the defaults so absent fields keep their values.
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

func writeDefaultFile(path string) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			fmt.Fprintf(os.Stderr, "glint: failed to create config dir: %v\n", err)
			return
		}
	}
	if err := os.WriteFile(path, []byte(defaultFileContent), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "glint: failed to write default config: %v\n", err)
	}
}

const defaultFileContent = `# glint: Wayland layer-shell desktop clock
# Generated automatically on first run. Edit values to customise;
# defaults are shown.

window:
  # Layer: background | bottom | top | overlay
  layer: top
  # Anchor edges: top | bottom | left | right (space-separated)
  anchor: top right
  # Margins from anchored edges (px)
  margin_top: 20
  margin_right: 20
  margin_bottom: 0
  margin_left: 0
  # Window opacity 0.0-1.0
  opacity: 1.0
  # Start in compact mode
  compact: false
  # Output to display on (omit for compositor default)
  # output: HDMI-A-1

clock:
  # digital | analogue
  face: digital
  # 12 | 24
  hour_format: 12
  # Show seconds on the digital face
  show_seconds: true
  # Show the date line on the digital face
  show_date: true
  # Date layout in Go reference-time form
  date_format: Monday, 02 January 2006
  # Digital: time text size in px (window auto-sizes to fit)
  font_size: 48
  # Analogue: face diameter in px (window auto-sizes to fit)
  diameter: 180

theme:
  # Colours in RRGGBB or RRGGBBAA hex
  fg_color: FFFFFFFF
  bg_color: 1A1A2ECC
  hour_hand_color: FFFFFFFF
  minute_hand_color: FFFFFFFF
  second_hand_color: EF4444FF
  # Tick mark colour on the analogue face
  tick_color: CCCCCCFF

battery:
  # Show a battery indicator row
  enabled: false
  # Display percentage text next to the icon
  show_percentage: true

# Up to 2 timezone sub-clocks. Uncomment to enable.
# timezones:
#   - label: London
#     tz: Europe/London
#   - label: New York
#     tz: America/New_York
`
