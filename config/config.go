package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
)

type SystemConfig struct {
	DataDirectory string `toml:"data_directory"`
}

type WidgetConfig struct {
	KBPath string `toml:"kb_path"`
	Tone   string `toml:"tone"`
}

type RevealConfig struct {
	CharsPerSecond     int  `toml:"chars_per_second"`
	FrameIntervalMS    int  `toml:"frame_interval_ms"`
	ShortTextThreshold int  `toml:"short_text_threshold"`
	ReducedMotion      bool `toml:"reduced_motion"`
}

type UserConfig struct {
	Widget WidgetConfig `toml:"widget"`
	Reveal RevealConfig `toml:"reveal"`
}

type Config struct {
	DataDirectory      string
	KBPath             string
	Tone               string
	CharsPerSecond     int
	FrameIntervalMS    int
	ShortTextThreshold int
	ReducedMotion      bool
}

var Debug = false
var DebugLog *log.Logger

func (c *Config) DataDir() string {
	return ExpandPath(c.DataDirectory)
}

// KBFile resolves the knowledge-base document path. Relative paths are
// resolved against the data directory.
func (c *Config) KBFile() string {
	path := ExpandPath(c.KBPath)
	if !filepath.IsAbs(path) {
		path = filepath.Join(c.DataDir(), path)
	}
	return path
}

func (c *Config) applyEnvOverrides() {
	if dataDir := os.Getenv("ASKTUI_DATA_DIR"); dataDir != "" {
		c.DataDirectory = dataDir
	}
	if kbPath := os.Getenv("ASKTUI_KB_PATH"); kbPath != "" {
		c.KBPath = kbPath
	}
	if tone := os.Getenv("ASKTUI_TONE"); tone != "" {
		c.Tone = tone
	}
}

func CheckDebug() bool {
	debug := os.Getenv("ASKTUI_DEBUG")
	return debug == "true" || debug == "1"
}

func InitDebugLog(dataDir string) {
	if !CheckDebug() {
		return
	}

	Debug = true
	logPath := filepath.Join(dataDir, "debug.log")

	// Create debug log with secure permissions (0600 - may contain visitor questions)
	f, err := os.OpenFile(logPath, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0600)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Could not open debug log at %s: %v\n", logPath, err)
		return
	}

	DebugLog = log.New(f, "", log.Ldate|log.Ltime|log.Lmicroseconds|log.Lshortfile)
	DebugLog.Printf("=== Debug logging started (ASKTUI_DEBUG=%s) ===", os.Getenv("ASKTUI_DEBUG"))
	DebugLog.Printf("Log path: %s", logPath)
}

func Load() (*Config, error) {
	systemCfg, err := LoadSystemConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load system config: %w", err)
	}

	dataDirectory := systemCfg.DataDirectory
	if dir := os.Getenv("ASKTUI_DATA_DIR"); dir != "" {
		dataDirectory = dir
	}

	dataDir := ExpandPath(dataDirectory)
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	userCfg, err := LoadUserConfig(dataDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load user config: %w", err)
	}

	cfg := fromUserConfig(userCfg)
	cfg.DataDirectory = dataDirectory
	cfg.applyEnvOverrides()
	cfg.clampReveal()

	return cfg, nil
}

func fromUserConfig(u *UserConfig) *Config {
	return &Config{
		KBPath:             u.Widget.KBPath,
		Tone:               u.Widget.Tone,
		CharsPerSecond:     u.Reveal.CharsPerSecond,
		FrameIntervalMS:    u.Reveal.FrameIntervalMS,
		ShortTextThreshold: u.Reveal.ShortTextThreshold,
		ReducedMotion:      u.Reveal.ReducedMotion,
	}
}

func (c *Config) clampReveal() {
	if c.CharsPerSecond <= 0 {
		c.CharsPerSecond = DefaultUserConfig().Reveal.CharsPerSecond
	}
	if c.FrameIntervalMS <= 0 {
		c.FrameIntervalMS = DefaultUserConfig().Reveal.FrameIntervalMS
	}
	if c.ShortTextThreshold < 0 {
		c.ShortTextThreshold = 0
	}
}
