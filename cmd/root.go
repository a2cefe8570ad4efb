package cmd

import (
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/ionut-t/wordy/internal/config"
	"github.com/ionut-t/wordy/internal/logging"
	"github.com/ionut-t/wordy/tui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:     "wordy",
	Short:   "wordy is a playful text input with a live word counter, predictions and a couple of display modes.",
	Version: version,
	Run: func(cmd *cobra.Command, args []string) {
		runUI()
	},
}

func Execute() {
	rootCmd.SetVersionTemplate(versionTemplate())
	rootCmd.AddCommand(configCmd())
	err := rootCmd.Execute()

	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
}

func runUI() {
	cfg := config.Load()

	closeLog, err := logging.Setup(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		fmt.Printf("Error opening log file: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = closeLog()
	}()

	slog.Info("starting", "version", version, "config", config.GetConfigFilePath())

	p := tea.NewProgram(tui.New(cfg, nil), tea.WithAltScreen(), tea.WithMouseAllMotion())

	if _, err := p.Run(); err != nil {
		slog.Error("ui stopped", "error", err)
		fmt.Printf("Error running UI: %v\n", err)
		os.Exit(1)
	}
}

func initConfig() {
	config.SetDefaults(viper.GetViper())
	config.BindEnv(viper.GetViper())

	if _, err := config.InitialiseConfigFile(); err != nil {
		fmt.Printf("Error initializing config: %v\n", err)
	}
}
