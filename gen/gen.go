// Package gen evaluates named lists with the typelist algebra and renders the
// results as a Go source file of constant tables, so that the program using
// them pays nothing at run time.
package gen

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"go/format"
	"go/token"
	"io"
	"runtime"
	"strings"
	"text/template"

	"github.com/golang/glog"
	"github.com/sbezverk/typelist/feeder"
	"github.com/sbezverk/typelist/store"
	"golang.org/x/sync/errgroup"
)

// ErrInvalidPackage error returns when the configured package is not a Go identifier
var ErrInvalidPackage = errors.New("invalid package name")

const fileTemplate = `// Code generated by typelistgen. DO NOT EDIT.

package {{.Package}}
{{range .Tables}}
// {{.Name}} holds {{.Input}} in ascending order.
var {{.Name}} = [...]int64{ {{- join .Sorted -}} }

const (
	{{.Name}}Len = {{.Len}}
{{- if .Bounded}}
	{{.Name}}Min = {{.Min}}
	{{.Name}}Max = {{.Max}}
{{- end}}
)

var _ [{{.Name}}Len]int64 = {{.Name}}
{{end -}}
`

var tmpl = template.Must(template.New("tables").Funcs(template.FuncMap{
	"join": func(values []int64) string {
		s := make([]string, len(values))
		for i, v := range values {
			s[i] = fmt.Sprint(v)
		}
		return strings.Join(s, ", ")
	},
}).Parse(fileTemplate))

type Config struct {
	// Package is the name of the generated package
	Package string
	// Workers bounds the number of lists evaluated concurrently, GOMAXPROCS when 0
	Workers int
}

type Generator struct {
	cfg    Config
	tables store.Manager[*Table]
}

// New returns a Generator, Stop must be called once it is no longer needed.
func New(cfg Config) (*Generator, error) {
	if !token.IsIdentifier(cfg.Package) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidPackage, cfg.Package)
	}
	if cfg.Workers <= 0 {
		cfg.Workers = runtime.GOMAXPROCS(0)
	}
	return &Generator{
		cfg:    cfg,
		tables: store.NewStore[*Table](),
	}, nil
}

// Collect evaluates every record of the feeders. It returns the first error
// met, a list named twice fails with store.ErrAlreadyExist. The feeders are
// stopped on return.
func (g *Generator) Collect(ctx context.Context, feeders ...feeder.Feeder) error {
	defer func() {
		for _, f := range feeders {
			f.Stop()
		}
	}()
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(g.cfg.Workers)
	for _, f := range feeders {
		if err := g.drain(egCtx, eg, f); err != nil {
			// A failed worker cancels egCtx, its error is the one to report
			if werr := eg.Wait(); werr != nil {
				return werr
			}
			return err
		}
	}

	return eg.Wait()
}

func (g *Generator) drain(ctx context.Context, eg *errgroup.Group, f feeder.Feeder) error {
	feed := f.GetFeed()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg, ok := <-feed:
			if !ok {
				return nil
			}
			if msg.Err != nil {
				return msg.Err
			}
			rec, src := msg.Record, msg.Source
			eg.Go(func() error {
				t, err := BuildTable(rec.Name, rec.Values)
				if err != nil {
					return fmt.Errorf("%s: %w", src, err)
				}
				if err := g.tables.Add(t); err != nil {
					return fmt.Errorf("%s: list %s: %w", src, rec.Name, err)
				}
				glog.V(5).Infof("list %s from %s evaluated, %d elements", t.Name, src, t.Len)
				return nil
			})
		}
	}
}

// Tables returns the collected tables ordered by name.
func (g *Generator) Tables() ([]*Table, error) {
	return orderTables(g.tables.List())
}

// Render writes the formatted Go source of the collected tables to w.
func (g *Generator) Render(w io.Writer) error {
	tables, err := g.Tables()
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, struct {
		Package string
		Tables  []*Table
	}{
		Package: g.cfg.Package,
		Tables:  tables,
	}); err != nil {
		return fmt.Errorf("failed to render tables with error: %w", err)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return fmt.Errorf("failed to format generated source with error: %w", err)
	}
	glog.Infof("rendered %d tables for package %s", len(tables), g.cfg.Package)
	_, err = w.Write(src)

	return err
}

func (g *Generator) Stop() {
	g.tables.Stop()
}
