package offline_feeder

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/golang/glog"
	"github.com/sbezverk/typelist/feeder"
)

const (
	MaxRecordSize = 1024 * 1024
)

type offFeeder struct {
	fn       string
	file     *os.File
	feed     chan *feeder.Feed
	stop     chan struct{}
	stopOnce sync.Once
}

func (o *offFeeder) GetFeed() chan *feeder.Feed {
	return o.feed
}

func (o *offFeeder) retrieve() {
	defer func() {
		o.file.Close()
		close(o.feed)
	}()
	r := bufio.NewReader(o.file)
	for {
		rec, err := readRecord(r)
		if err == io.EOF {
			glog.Infof("processing of records file %s completed", o.fn)
			return
		}
		f := &feeder.Feed{
			Source: o.fn,
			Record: rec,
		}
		if err != nil {
			glog.Errorf("failed to read a record from %s with error: %+v", o.fn, err)
			f.Record = nil
			f.Err = fmt.Errorf("%w: %s: %w", feeder.ErrReceiveRecord, o.fn, err)
		}
		select {
		case <-o.stop:
			return
		case o.feed <- f:
		}
		if f.Err != nil {
			return
		}
	}
}

// readRecord returns io.EOF only when the reader ends on a record boundary.
func readRecord(r io.Reader) (*feeder.Record, error) {
	lb := make([]byte, 4)
	if _, err := io.ReadFull(r, lb); err != nil {
		if errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, fmt.Errorf("truncated record length: %w", err)
		}
		return nil, err
	}
	l := binary.BigEndian.Uint32(lb)
	glog.V(6).Infof("Expected record length %d", l)
	if l > MaxRecordSize {
		return nil, fmt.Errorf("record length %d exceeds the maximum of %d", l, MaxRecordSize)
	}
	b := make([]byte, l)
	if _, err := io.ReadFull(r, b); err != nil {
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		return nil, fmt.Errorf("truncated record: %w", err)
	}
	rec := &feeder.Record{}
	if err := rec.UnmarshalBinary(b); err != nil {
		return nil, err
	}

	return rec, nil
}

func (o *offFeeder) Stop() {
	o.stopOnce.Do(func() {
		close(o.stop)
	})
}

// New returns a Feeder streaming the records stored in file fn by WriteRecords.
func New(fn string) (feeder.Feeder, error) {
	f, err := os.Open(fn)
	if err != nil {
		return nil, fmt.Errorf("failed to open records file %s with error: %+v", fn, err)
	}
	o := &offFeeder{
		fn:   fn,
		feed: make(chan *feeder.Feed),
		stop: make(chan struct{}),
		file: f,
	}
	go o.retrieve()

	return o, nil
}

// WriteRecords writes every record prefixed with its big endian 4 bytes length.
func WriteRecords(w io.Writer, recs ...*feeder.Record) error {
	for _, rec := range recs {
		b, err := rec.MarshalBinary()
		if err != nil {
			return err
		}
		if len(b) > MaxRecordSize {
			return fmt.Errorf("record %s of %d bytes exceeds the maximum of %d", rec.Name, len(b), MaxRecordSize)
		}
		lb := make([]byte, 4)
		binary.BigEndian.PutUint32(lb, uint32(len(b)))
		if _, err := w.Write(lb); err != nil {
			return err
		}
		if _, err := w.Write(b); err != nil {
			return err
		}
	}

	return nil
}
