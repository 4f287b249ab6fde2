// Package config provides YAML/TOML-based game configuration loading,
// validation and difficulty presets for the block breaker.
package config

// Config contains all configuration for the block breaker.
type Config struct {
	Screen   ScreenConfig   `yaml:"screen" toml:"screen"`
	Paddle   PaddleConfig   `yaml:"paddle" toml:"paddle"`
	Ball     BallConfig     `yaml:"ball" toml:"ball"`
	Board    BoardConfig    `yaml:"board" toml:"board"`
	Gameplay GameplayConfig `yaml:"gameplay" toml:"gameplay"`
	Theme    ThemeConfig    `yaml:"theme" toml:"theme"`
	Terminal TerminalConfig `yaml:"terminal" toml:"terminal"`
	Window   WindowConfig   `yaml:"window" toml:"window"`
}

// ScreenConfig defines the logical play area and frame rate.
type ScreenConfig struct {
	Width  float64 `yaml:"width" toml:"width"`
	Height float64 `yaml:"height" toml:"height"`
	FPS    int     `yaml:"fps" toml:"fps"`
}

// PaddleConfig defines paddle geometry and movement.
type PaddleConfig struct {
	Width        float64 `yaml:"width" toml:"width"`
	Height       float64 `yaml:"height" toml:"height"`
	Speed        float64 `yaml:"speed" toml:"speed"`
	BottomOffset float64 `yaml:"bottom_offset" toml:"bottom_offset"` // Distance from the top of the paddle to the screen bottom
}

// BallConfig defines ball geometry and launch behavior.
type BallConfig struct {
	Radius        float64   `yaml:"radius" toml:"radius"`
	Speed         float64   `yaml:"speed" toml:"speed"`
	SpeedPerLevel float64   `yaml:"speed_per_level" toml:"speed_per_level"`
	RestOffset    float64   `yaml:"rest_offset" toml:"rest_offset"` // Height above the paddle while unlaunched
	LaunchDX      []float64 `yaml:"launch_dx" toml:"launch_dx"`     // Horizontal launch velocities to pick from
	Deflection    float64   `yaml:"deflection" toml:"deflection"`   // Paddle bounce spread; 3 maps hits to [-1.5, 1.5]×speed
}

// BoardConfig defines the block grid layout.
type BoardConfig struct {
	Rows        int      `yaml:"rows" toml:"rows"`
	Cols        int      `yaml:"cols" toml:"cols"`
	BlockWidth  float64  `yaml:"block_width" toml:"block_width"`
	BlockHeight float64  `yaml:"block_height" toml:"block_height"`
	Padding     float64  `yaml:"padding" toml:"padding"`
	OffsetTop   float64  `yaml:"offset_top" toml:"offset_top"`
	OffsetLeft  float64  `yaml:"offset_left" toml:"offset_left"`
	Palette     []string `yaml:"palette" toml:"palette"` // Hex colors, one per row (cycled)
}

// MaxLives is the most lives a session can start with; the HUD has room for
// that many markers.
const MaxLives = 3

// GameplayConfig defines session rules and scoring.
type GameplayConfig struct {
	Lives       int `yaml:"lives" toml:"lives"` // 1..MaxLives
	BlockPoints int `yaml:"block_points" toml:"block_points"`
	LevelBonus  int `yaml:"level_bonus" toml:"level_bonus"`
}

// ThemeConfig defines the interface colors as hex strings.
type ThemeConfig struct {
	Background     string `yaml:"background" toml:"background"`
	GradientTop    string `yaml:"gradient_top" toml:"gradient_top"`
	GradientBottom string `yaml:"gradient_bottom" toml:"gradient_bottom"`
	Text           string `yaml:"text" toml:"text"`           // HUD values, stats, ball
	Accent         string `yaml:"accent" toml:"accent"`       // Title, paddle, buttons, lives
	Danger         string `yaml:"danger" toml:"danger"`       // Game over title
	Highlight      string `yaml:"highlight" toml:"highlight"` // Final score
	Muted          string `yaml:"muted" toml:"muted"`         // Labels, hints, HUD separator
	HUD            string `yaml:"hud" toml:"hud"`
	Panel          string `yaml:"panel" toml:"panel"`
}

// TerminalConfig tunes the terminal frontend.
type TerminalConfig struct {
	// KeyHoldTicks is how long a movement key counts as held after a key event.
	// Terminals report no key releases; auto-repeat refreshes the hold.
	KeyHoldTicks int  `yaml:"key_hold_ticks" toml:"key_hold_ticks"`
	ASCII        bool `yaml:"ascii" toml:"ascii"` // Draw with plain ASCII glyphs only
}

// WindowConfig tunes the graphical frontend.
type WindowConfig struct {
	Scale    float64 `yaml:"scale" toml:"scale"`
	FontPath string  `yaml:"font_path" toml:"font_path"` // Preferred TrueType font; empty searches system fonts
	FontSize float64 `yaml:"font_size" toml:"font_size"`
	Title    string  `yaml:"title" toml:"title"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)
