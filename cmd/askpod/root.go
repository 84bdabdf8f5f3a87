package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "askpod",
	Short: "askpod wires a chat model to an MCP tool server and asks it questions",
	Long: `askpod spawns an MCP tool server as a child process, adapts its declared
tools into the chat model's tool-calling convention and runs a reason/act
loop until the model produces a final answer.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level, _ := cmd.Flags().GetString("log-level")
		configureLogger(level)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// configureLogger sets the default slog logger. Logs go to stderr so they
// never corrupt the stdio protocol stream of a child or parent process.
func configureLogger(level string) {
	var slogLevel slog.Level
	switch level {
	case "debug":
		slogLevel = slog.LevelDebug
	case "warn":
		slogLevel = slog.LevelWarn
	case "error":
		slogLevel = slog.LevelError
	default:
		slogLevel = slog.LevelInfo
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slogLevel,
	}))
	slog.SetDefault(logger)
}

func init() {
	rootCmd.PersistentFlags().String("env-file", "", "Path to a dotenv file with settings (default: .env in the working directory)")
	rootCmd.PersistentFlags().String("log-level", "warn", "Log level: debug, info, warn or error")
}
