package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/golang/glog"
	"github.com/sbezverk/typelist/feeder"
	"github.com/sbezverk/typelist/feeder/manifest_feeder"
	"github.com/sbezverk/typelist/feeder/offline_feeder"
	"github.com/sbezverk/typelist/gen"
	"github.com/spf13/cobra"
)

var errNoInput = errors.New("no --manifest or --records given")

type generateOpts struct {
	manifests []string
	records   []string
	out       string
	pkg       string
	workers   int
}

func newGenerateCmd() *cobra.Command {
	opts := &generateOpts{}
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Evaluate manifests and records files into a Go source file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := setupSignalContext(cmd.Context())
			defer cancel()
			return runGenerate(ctx, opts)
		},
	}
	f := cmd.Flags()
	f.StringSliceVar(&opts.manifests, "manifest", nil, "YAML manifest of lists, may be repeated")
	f.StringSliceVar(&opts.records, "records", nil, "records file produced by pack, may be repeated")
	f.StringVarP(&opts.out, "out", "o", "-", "output Go file, - for stdout")
	f.StringVarP(&opts.pkg, "package", "p", "", "package of the generated file, defaults to the package of the first manifest")
	f.IntVar(&opts.workers, "workers", 0, "lists evaluated concurrently, GOMAXPROCS when 0")

	return cmd
}

func runGenerate(ctx context.Context, opts *generateOpts) error {
	if len(opts.manifests)+len(opts.records) == 0 {
		return errNoInput
	}
	pkg := opts.pkg
	var feeders []feeder.Feeder
	stopAll := func() {
		for _, f := range feeders {
			f.Stop()
		}
	}
	for _, fn := range opts.manifests {
		m, err := manifest_feeder.Load(fn)
		if err != nil {
			stopAll()
			return err
		}
		if pkg == "" {
			pkg = m.Package
		}
		feeders = append(feeders, manifest_feeder.FromManifest(m))
	}
	for _, fn := range opts.records {
		f, err := offline_feeder.New(fn)
		if err != nil {
			stopAll()
			return err
		}
		feeders = append(feeders, f)
	}
	g, err := gen.New(gen.Config{Package: pkg, Workers: opts.workers})
	if err != nil {
		stopAll()
		return fmt.Errorf("set the package with --package or in the first manifest: %w", err)
	}
	defer g.Stop()
	if err := g.Collect(ctx, feeders...); err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := g.Render(&buf); err != nil {
		return err
	}
	if opts.out == "-" || opts.out == "" {
		_, err := os.Stdout.Write(buf.Bytes())
		return err
	}
	if err := writeFileAtomic(opts.out, buf.Bytes()); err != nil {
		return err
	}
	glog.Infof("tables of package %s written to %s", pkg, opts.out)

	return nil
}

// writeFileAtomic replaces fn with b, readers never see a partially written file.
func writeFileAtomic(fn string, b []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(fn), "."+filepath.Base(fn)+".*")
	if err != nil {
		return fmt.Errorf("failed to create temporary file for %s with error: %w", fn, err)
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(b); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write %s with error: %w", tmp.Name(), err)
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), fn)
}
