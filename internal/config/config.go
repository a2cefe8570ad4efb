package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const rootDir = ".wordy"
const configFileName = "config.toml"

// Config keys.
const (
	EditorKey = "editor"

	StatusVisibleKey      = "notifications.status.visible"
	StatusFadeKey         = "notifications.status.fade"
	ThemeVisibleKey       = "notifications.theme.visible"
	ThemeFadeKey          = "notifications.theme.fade"
	CelebrationVisibleKey = "notifications.celebration.visible"
	CelebrationFadeKey    = "notifications.celebration.fade"

	CelebrationDurationKey = "celebration.duration"
	ProcessingKey          = "predict.processing"

	ScrollDurationKey = "scroll.duration"
	ScrollOffsetKey   = "scroll.offset"
	ScrollUnitKey     = "scroll.unit"

	WordCounterKey = "ui.word_counter"
	ModeToggleKey  = "ui.mode_toggle"

	LogFileKey  = "log.file"
	LogLevelKey = "log.level"
)

// Timing is a hold and fade pair.
type Timing struct {
	Visible time.Duration
	Fade    time.Duration
}

// Config is a snapshot of the settings the UI runs with.
type Config struct {
	StatusNotice      Timing
	ThemeNotice       Timing
	CelebrationNotice Timing

	Celebration time.Duration
	Processing  time.Duration

	ScrollDuration time.Duration
	ScrollOffset   int
	ScrollUnit     int

	WordCounter bool
	ModeToggle  bool

	LogFile  string
	LogLevel string
}

// SetDefaults registers every default on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(StatusVisibleKey, 2000*time.Millisecond)
	v.SetDefault(StatusFadeKey, 300*time.Millisecond)
	v.SetDefault(ThemeVisibleKey, 2000*time.Millisecond)
	v.SetDefault(ThemeFadeKey, 300*time.Millisecond)
	v.SetDefault(CelebrationVisibleKey, 3000*time.Millisecond)
	v.SetDefault(CelebrationFadeKey, 300*time.Millisecond)

	v.SetDefault(CelebrationDurationKey, 6000*time.Millisecond)
	v.SetDefault(ProcessingKey, 2000*time.Millisecond)

	v.SetDefault(ScrollDurationKey, 1000*time.Millisecond)
	v.SetDefault(ScrollOffsetKey, 80)
	v.SetDefault(ScrollUnitKey, 20)

	v.SetDefault(WordCounterKey, true)
	v.SetDefault(ModeToggleKey, true)

	v.SetDefault(LogLevelKey, "info")
}

// BindEnv lets WORDY_* environment variables override file settings, e.g.
// WORDY_LOG_LEVEL for log.level.
func BindEnv(v *viper.Viper) {
	v.SetEnvPrefix("wordy")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
}

// Default returns the configuration with no file or environment applied.
func Default() Config {
	v := viper.New()
	SetDefaults(v)
	return From(v)
}

// Load reads the global viper instance.
func Load() Config {
	SetDefaults(viper.GetViper())
	return From(viper.GetViper())
}

// From builds a Config from v.
func From(v *viper.Viper) Config {
	return Config{
		StatusNotice: Timing{
			Visible: nonNegative(v.GetDuration(StatusVisibleKey)),
			Fade:    nonNegative(v.GetDuration(StatusFadeKey)),
		},
		ThemeNotice: Timing{
			Visible: nonNegative(v.GetDuration(ThemeVisibleKey)),
			Fade:    nonNegative(v.GetDuration(ThemeFadeKey)),
		},
		CelebrationNotice: Timing{
			Visible: nonNegative(v.GetDuration(CelebrationVisibleKey)),
			Fade:    nonNegative(v.GetDuration(CelebrationFadeKey)),
		},
		Celebration:    nonNegative(v.GetDuration(CelebrationDurationKey)),
		Processing:     nonNegative(v.GetDuration(ProcessingKey)),
		ScrollDuration: nonNegative(v.GetDuration(ScrollDurationKey)),
		ScrollOffset:   v.GetInt(ScrollOffsetKey),
		ScrollUnit:     v.GetInt(ScrollUnitKey),
		WordCounter:    v.GetBool(WordCounterKey),
		ModeToggle:     v.GetBool(ModeToggleKey),
		LogFile:        v.GetString(LogFileKey),
		LogLevel:       v.GetString(LogLevelKey),
	}
}

func nonNegative(d time.Duration) time.Duration {
	return max(d, 0)
}

func getDefaultEditor() string {
	if editor := os.Getenv("EDITOR"); editor != "" {
		return editor
	}

	if os.Getenv("WINDIR") != "" {
		return "notepad"
	}

	return "vim"
}

func GetEditor() string {
	editor := viper.GetString(EditorKey)

	if editor == "" {
		return getDefaultEditor()
	}

	return editor
}

// InitialiseConfigFile creates ~/.wordy/config.toml on first use and reads it
// otherwise.
func InitialiseConfigFile() (string, error) {
	configPath := viper.ConfigFileUsed()

	if configPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}

		dir := filepath.Join(home, rootDir)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", fmt.Errorf("create config directory: %w", err)
		}

		configPath = filepath.Join(dir, configFileName)
		viper.SetConfigFile(configPath)

		if _, err := os.Stat(configPath); os.IsNotExist(err) {
			viper.SetDefault(EditorKey, GetEditor())

			if err := viper.WriteConfig(); err != nil {
				return "", fmt.Errorf("write config: %w", err)
			}

			fmt.Println("Created config at", configPath)
		} else {
			if err := viper.ReadInConfig(); err != nil {
				return configPath, fmt.Errorf("read config: %w", err)
			}
		}
	}

	return configPath, nil
}

func GetConfigFilePath() string {
	return viper.ConfigFileUsed()
}
