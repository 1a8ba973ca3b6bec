// Package manifest_feeder reads named list literals from a YAML manifest:
//
//	package: units
//	lists:
//	  - name: Dimensions
//	    values: [5, 3, -2, 1, 2, 1, 2, 3, 4]
package manifest_feeder

import (
	"fmt"
	"os"
	"sync"

	"github.com/golang/glog"
	"github.com/sbezverk/typelist/feeder"
	"gopkg.in/yaml.v3"
)

// Manifest is the YAML structure of a manifest file.
type Manifest struct {
	// Package is the Go package the generated tables belong to
	Package string     `yaml:"package,omitempty"`
	Lists   []ListSpec `yaml:"lists"`

	source string
}

// ListSpec is a single list literal, values in written order.
type ListSpec struct {
	Name   string  `yaml:"name"`
	Values []int64 `yaml:"values,flow"`
}

// Load reads and parses the manifest stored in fn.
func Load(fn string) (*Manifest, error) {
	b, err := os.ReadFile(fn)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest %s with error: %w", fn, err)
	}
	m := &Manifest{}
	if err := yaml.Unmarshal(b, m); err != nil {
		return nil, fmt.Errorf("failed to parse manifest %s with error: %w", fn, err)
	}
	m.source = fn
	glog.V(5).Infof("manifest %s declares %d lists", fn, len(m.Lists))

	return m, nil
}

// Records returns the lists of the manifest as records.
func (m *Manifest) Records() []*feeder.Record {
	recs := make([]*feeder.Record, 0, len(m.Lists))
	for _, l := range m.Lists {
		recs = append(recs, &feeder.Record{
			Name:   l.Name,
			Values: append([]int64(nil), l.Values...),
		})
	}
	return recs
}

type manFeeder struct {
	source   string
	recs     []*feeder.Record
	feed     chan *feeder.Feed
	stop     chan struct{}
	stopOnce sync.Once
}

func (f *manFeeder) GetFeed() chan *feeder.Feed {
	return f.feed
}

func (f *manFeeder) Stop() {
	f.stopOnce.Do(func() {
		close(f.stop)
	})
}

func (f *manFeeder) retrieve() {
	defer close(f.feed)
	for _, rec := range f.recs {
		select {
		case <-f.stop:
			return
		case f.feed <- &feeder.Feed{Source: f.source, Record: rec}:
		}
	}
	glog.Infof("processing of manifest %s completed", f.source)
}

// FromManifest returns a Feeder over the lists of an already loaded manifest.
func FromManifest(m *Manifest) feeder.Feeder {
	f := &manFeeder{
		source: m.source,
		recs:   m.Records(),
		feed:   make(chan *feeder.Feed),
		stop:   make(chan struct{}),
	}
	go f.retrieve()

	return f
}

// New loads the manifest stored in fn and returns a Feeder over its lists.
func New(fn string) (feeder.Feeder, error) {
	m, err := Load(fn)
	if err != nil {
		return nil, err
	}
	return FromManifest(m), nil
}
