package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/go-faster/timeprog/internal/cliversion"
)

const modulePath = "github.com/go-faster/timeprog"

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			info, _ := cliversion.Get(modulePath)
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "timeprog %s\n", info)
		},
	}
}
