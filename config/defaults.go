package config

func DefaultSystemConfig() *SystemConfig {
	return &SystemConfig{
		DataDirectory: "~/.local/share/asktui",
	}
}

func DefaultUserConfig() *UserConfig {
	return &UserConfig{
		Widget: WidgetConfig{
			KBPath: "faq.json",
			Tone:   "warm",
		},
		Reveal: RevealConfig{
			CharsPerSecond:     120,
			FrameIntervalMS:    33,
			ShortTextThreshold: 80,
			ReducedMotion:      false,
		},
	}
}

func GenerateSystemConfigTemplate() string {
	return `# ASKTUI System Configuration
# Location: ~/.config/asktui/settings.toml
# This file uses TOML format: https://toml.io

# Directory where the FAQ document and user config are stored
data_directory = "~/.local/share/asktui"
`
}

func GenerateUserConfigTemplate() string {
	return `# ASKTUI User Configuration
# Location: <data_directory>/config.toml
# This file uses TOML format: https://toml.io

[widget]
# FAQ knowledge-base document (relative paths resolve against the data directory)
kb_path = "faq.json"

# Answer tone: "warm", "professional" or "concise"
tone = "warm"

[reveal]
# Typing-effect speed for assistant answers
chars_per_second = 120

# Milliseconds between reveal frames
frame_interval_ms = 33

# Answers shorter than this many characters appear instantly
short_text_threshold = 80

# Disable the typing effect entirely
reduced_motion = false
`
}
