// Command typelistgen evaluates named integer lists once, at build time, and
// writes the sorted results as Go constant tables.
//
// Usage from a package:
//
//	//go:generate go run github.com/sbezverk/typelist/cmd/typelistgen generate --manifest units.yaml --out lists.go
package main

import (
	"context"
	"flag"
	"os"

	"github.com/golang/glog"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "typelistgen",
		Short:         "Sort integer lists at build time and emit them as Go tables",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// glog complains when logging before the go flag set is parsed,
			// its flags are already set through the persistent flags.
			return flag.CommandLine.Parse(nil)
		},
	}
	root.PersistentFlags().AddGoFlagSet(flag.CommandLine)
	root.AddCommand(newGenerateCmd(), newPackCmd())

	return root
}

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		glog.Errorf("typelistgen failed with error: %+v", err)
		glog.Flush()
		os.Exit(1)
	}
	glog.Flush()
}
