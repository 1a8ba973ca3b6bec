package main

import (
	"bytes"

	"github.com/golang/glog"
	"github.com/sbezverk/typelist/feeder/manifest_feeder"
	"github.com/sbezverk/typelist/feeder/offline_feeder"
	"github.com/spf13/cobra"
)

func newPackCmd() *cobra.Command {
	var manifest, out string
	cmd := &cobra.Command{
		Use:   "pack",
		Short: "Convert a YAML manifest into a binary records file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPack(manifest, out)
		},
	}
	cmd.Flags().StringVar(&manifest, "manifest", "", "YAML manifest of lists")
	cmd.Flags().StringVarP(&out, "out", "o", "", "records file to write")
	cmd.MarkFlagRequired("manifest")
	cmd.MarkFlagRequired("out")

	return cmd
}

func runPack(manifest, out string) error {
	m, err := manifest_feeder.Load(manifest)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	recs := m.Records()
	if err := offline_feeder.WriteRecords(&buf, recs...); err != nil {
		return err
	}
	if err := writeFileAtomic(out, buf.Bytes()); err != nil {
		return err
	}
	glog.Infof("%d records of %s written to %s", len(recs), manifest, out)

	return nil
}
