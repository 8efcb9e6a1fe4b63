package main

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"leapview/internal/config"
)

func overrideCmd(ov *overrides) *cobra.Command {
	cmd := &cobra.Command{Use: "leapview"}
	cmd.Flags().StringVar(&ov.labels, "labels", config.DefaultLabels, "")
	cmd.Flags().BoolVar(&ov.ignoreCase, "ignore-case", false, "")
	cmd.Flags().BoolVar(&ov.bidirectional, "bidirectional", false, "")
	cmd.Flags().BoolVar(&ov.noDim, "no-dim", false, "")
	return cmd
}

func TestOverridesApplyOnlyChangedFlags(t *testing.T) {
	var ov overrides
	cmd := overrideCmd(&ov)
	require.NoError(t, cmd.ParseFlags([]string{"--labels", "ab", "--no-dim"}))

	cfg := config.DefaultConfig()
	cfg.Jump.IgnoreCase = true
	ov.apply(cmd, cfg)

	assert.Equal(t, "ab", cfg.Jump.Labels)
	assert.False(t, cfg.Jump.Dim)
	// untouched flags leave the file's values alone
	assert.True(t, cfg.Jump.IgnoreCase)
	assert.False(t, cfg.Jump.Bidirectional)
}

func TestOverridesWithoutFlags(t *testing.T) {
	var ov overrides
	cmd := overrideCmd(&ov)
	require.NoError(t, cmd.ParseFlags(nil))

	cfg := config.DefaultConfig()
	cfg.Jump.Labels = "xyz"
	ov.apply(cmd, cfg)
	assert.Equal(t, "xyz", cfg.Jump.Labels)
	assert.True(t, cfg.Jump.Dim)
}
