package feeder

import (
	"errors"
)

var (
	ErrUnmarshalRecord = errors.New("failed to unmarshal list record")
	ErrReceiveRecord   = errors.New("failed to receive list record")
)

// Feed carries one list record, or the error which ended the source.
type Feed struct {
	Source string
	Record *Record
	Err    error
}

// Feeder streams the list records of a source. The feed channel is closed
// once the source is exhausted or the feeder is stopped.
type Feeder interface {
	GetFeed() chan *Feed
	Stop()
}
