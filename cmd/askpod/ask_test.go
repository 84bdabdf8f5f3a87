package main

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAskFlagSet(t *testing.T) *cobra.Command {
	t.Helper()
	cmd := &cobra.Command{}
	cmd.Flags().String("model", "", "")
	cmd.Flags().String("db", "", "")
	return cmd
}

func TestResolveServerSpecExplicitCommand(t *testing.T) {
	spec, err := resolveServerSpec("python servers/math_server.py")
	require.NoError(t, err)

	assert.Equal(t, "python", spec.Command)
	assert.Equal(t, []string{"servers/math_server.py"}, spec.Args)
	assert.NotEmpty(t, spec.Env)
}

func TestResolveServerSpecDefaultsToSelf(t *testing.T) {
	spec, err := resolveServerSpec("")
	require.NoError(t, err)

	assert.NotEmpty(t, spec.Command)
	assert.Equal(t, []string{"math-server"}, spec.Args)
}

func TestResolveServerSpecBlankCommand(t *testing.T) {
	_, err := resolveServerSpec("   ")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid server command")
}

func TestResolveConfigFlagOverrides(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "test-key")
	t.Setenv("ASKPOD_MODEL", "gpt-4o-mini")
	t.Setenv("ASKPOD_DB", "env.db")

	cmd := newAskFlagSet(t)
	require.NoError(t, cmd.Flags().Set("model", "gpt-4o"))
	require.NoError(t, cmd.Flags().Set("db", "flag.db"))

	cfg := resolveConfig(cmd)
	assert.Equal(t, "gpt-4o", cfg.Model)
	assert.Equal(t, "flag.db", cfg.DBPath)
}

func TestResolveConfigDBFromEnvironment(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "test-key")
	t.Setenv("ASKPOD_DB", "env.db")

	cfg := resolveConfig(newAskFlagSet(t))
	assert.Equal(t, "env.db", cfg.DBPath)
}
