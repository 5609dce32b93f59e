// Package config provides CLI command implementations for the config command group.
package config

import (
	"github.com/spf13/cobra"

	"github.com/djangodev/cli/internal/cmdtypes"
)

// NewConfigCmd creates the config command group.
func NewConfigCmd(gc *cmdtypes.GlobalConfig) *cobra.Command {
	c := &cobra.Command{
		Use:   "config",
		Short: "Configuration management",
		Long:  `Configuration management for the djdev CLI.`,
	}

	c.AddCommand(newInitCmd(gc))
	c.AddCommand(newShowCmd(gc))

	return c
}
