package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "imgsupport",
		Short:         "Detect WebP and AVIF support from User-Agent strings",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(newCheckCmd(), newBenchCmd())
	return cmd
}
