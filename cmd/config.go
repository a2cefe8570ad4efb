package cmd

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/ionut-t/wordy/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func configCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage configuration",
		Long:  "Open the config file in your editor, or set individual keys with flags.",
		Run: func(cmd *cobra.Command, args []string) {
			configPath := config.GetConfigFilePath()

			editorFlag, _ := cmd.Flags().GetString(config.EditorKey)
			logFileFlag, _ := cmd.Flags().GetString("log-file")
			logLevelFlag, _ := cmd.Flags().GetString("log-level")

			flagsSet := false

			if editorFlag != "" {
				viper.Set(config.EditorKey, editorFlag)
				flagsSet = true
				fmt.Println("Editor set to:", editorFlag)
			}

			if logFileFlag != "" {
				viper.Set(config.LogFileKey, logFileFlag)
				flagsSet = true
				fmt.Println("Log file set to:", logFileFlag)
			}

			if logLevelFlag != "" {
				viper.Set(config.LogLevelKey, logLevelFlag)
				flagsSet = true
				fmt.Println("Log level set to:", logLevelFlag)
			}

			for _, toggle := range []struct {
				flag, key string
			}{
				{"word-counter", config.WordCounterKey},
				{"mode-toggle", config.ModeToggleKey},
			} {
				if !cmd.Flags().Changed(toggle.flag) {
					continue
				}

				enabled, _ := cmd.Flags().GetBool(toggle.flag)
				viper.Set(toggle.key, enabled)
				flagsSet = true
				fmt.Printf("%s set to: %t\n", toggle.key, enabled)
			}

			if flagsSet {
				if err := viper.WriteConfig(); err != nil {
					fmt.Println("Error writing config:", err)
					os.Exit(1)
				}
			}

			if !flagsSet {
				openInEditor(configPath)
			}
		},
	}

	cmd.Flags().StringP(config.EditorKey, "e", "", "Set the editor to use for editing config")
	cmd.Flags().StringP("log-file", "f", "", "Set the file wordy logs to")
	cmd.Flags().StringP("log-level", "l", "", "Set the log level (debug, info, warn, error)")
	cmd.Flags().Bool("word-counter", true, "Show the live word counter")
	cmd.Flags().Bool("mode-toggle", true, "Show the classic / cyber mode toggle")

	return cmd
}

func openInEditor(configPath string) {
	editor := config.GetEditor()

	cmd := exec.Command(editor, configPath)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		fmt.Println("Error opening editor:", err)
		os.Exit(1)
	}
}
