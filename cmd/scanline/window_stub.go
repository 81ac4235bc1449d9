//go:build nowindow

package main

import (
	"errors"

	"github.com/spf13/cobra"
)

func newWindowCmd(_ *options) *cobra.Command {
	return &cobra.Command{
		Use:    "window [scene.yaml]",
		Short:  "Show the scene in a desktop window (not built in)",
		Hidden: true,
		RunE: func(*cobra.Command, []string) error {
			return errors.New("scanline was built with the nowindow tag")
		},
	}
}
