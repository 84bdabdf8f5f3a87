package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/askpod/askpod"
	"github.com/spf13/cobra"
)

const defaultQuestion = "What is 2 + 2?"

const defaultSystemPrompt = "You are a helpful assistant. Answer the user's question, using the available tools for any computation."

var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Ask the model a question, with the tool server's tools available",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := resolveConfig(cmd)

		question := defaultQuestion
		if len(args) > 0 {
			question = args[0]
		}

		fmt.Println("Hello from askpod!")

		// The chat client is constructed before the child process is spawned
		// so a missing credential never leaves an orphaned tool server.
		llm, err := askpod.NewLLM(cfg)
		if err != nil {
			return err
		}

		serverCommand, _ := cmd.Flags().GetString("server")
		spec, err := resolveServerSpec(serverCommand)
		if err != nil {
			return err
		}

		srv, err := askpod.ConnectStdio(spec)
		if err != nil {
			return err
		}
		defer srv.Close()

		ctx := cmd.Context()
		if _, err := srv.Initialize(ctx); err != nil {
			return err
		}
		fmt.Println("session initialized")

		tools, err := srv.Tools(ctx)
		if err != nil {
			return err
		}
		names := make([]string, 0, len(tools))
		for _, tool := range tools {
			names = append(names, tool.Name())
		}
		fmt.Printf("available tools: [%s]\n", strings.Join(names, ", "))

		var storage askpod.Storage
		if cfg.DBPath != "" {
			sqliteStorage, err := askpod.NewSQLiteStorage(cfg.DBPath)
			if err != nil {
				return err
			}
			defer sqliteStorage.Close()
			storage = sqliteStorage
		}

		agent := askpod.NewAgent(defaultSystemPrompt, tools)
		pod := askpod.NewPod(llm, storage, agent)

		answer, err := pod.Ask(ctx, question)
		if err != nil {
			return err
		}
		fmt.Println(answer)
		return nil
	},
}

// resolveConfig loads the dotenv settings and applies the command's flag
// overrides on top.
func resolveConfig(cmd *cobra.Command) *askpod.Config {
	envFile, _ := cmd.Flags().GetString("env-file")
	var cfg *askpod.Config
	if envFile != "" {
		cfg = askpod.LoadConfig(envFile)
	} else {
		cfg = askpod.LoadConfig()
	}
	if model, _ := cmd.Flags().GetString("model"); model != "" {
		cfg.Model = model
	}
	if dbPath, _ := cmd.Flags().GetString("db"); dbPath != "" {
		cfg.DBPath = dbPath
	}
	return cfg
}

// resolveServerSpec builds the launch specification for the tool server.
// With no explicit command, the binary re-executes itself as the demo math
// server so the default run needs no sibling script.
func resolveServerSpec(serverCommand string) (askpod.ServerSpec, error) {
	if serverCommand == "" {
		self, err := os.Executable()
		if err != nil {
			return askpod.ServerSpec{}, fmt.Errorf("resolving own executable: %w", err)
		}
		return askpod.ServerSpec{
			Command: self,
			Args:    []string{"math-server"},
			Env:     os.Environ(),
		}, nil
	}
	fields := strings.Fields(serverCommand)
	if len(fields) == 0 {
		return askpod.ServerSpec{}, fmt.Errorf("invalid server command %q", serverCommand)
	}
	return askpod.ServerSpec{
		Command: fields[0],
		Args:    fields[1:],
		Env:     os.Environ(),
	}, nil
}

func init() {
	rootCmd.AddCommand(askCmd)

	askCmd.Flags().String("server", "", "Tool server launch command, e.g. 'python math_server.py' (default: this binary's math-server)")
	askCmd.Flags().String("model", "", "Model name override")
	askCmd.Flags().String("db", "", "SQLite database path for run transcripts (default: ASKPOD_DB)")
}
