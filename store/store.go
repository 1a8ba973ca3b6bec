package store

import (
	"errors"
	"sync"

	"github.com/golang/glog"
)

var (
	// ErrAlreadyExist error returns when Add attempts to add already existing item
	ErrAlreadyExist = errors.New("already exists")
	// ErrNotFound error returns when Get or Remove attempts to access a non existing item
	ErrNotFound = errors.New("not found")
	// ErrStopped error returns when an operation is requested after Stop
	ErrStopped = errors.New("store is stopped")
)

type storeOp uint8

const (
	addItem storeOp = iota + 1
	removeItem
	getItem
	listItems
)

type Storable interface {
	Key() string
}

// Manager serializes all access to the stored items through a single
// goroutine, it is safe for concurrent use.
type Manager[T Storable] interface {
	Add(T) error
	Remove(T) error
	List() []T
	Get(string) (T, error)
	Stop()
}

var _ Manager[Storable] = &itemStore[Storable]{}

type mgrReply[T Storable] struct {
	item []T
	err  error
}

type storeCh[T Storable] struct {
	op      storeOp
	key     string
	item    T
	replyCh chan mgrReply[T]
}

type itemStore[T Storable] struct {
	stopCh   chan struct{}
	stopOnce sync.Once
	opCh     chan storeCh[T]
}

func (s *itemStore[T]) request(msg storeCh[T]) mgrReply[T] {
	msg.replyCh = make(chan mgrReply[T], 1)
	select {
	case s.opCh <- msg:
	case <-s.stopCh:
		return mgrReply[T]{err: ErrStopped}
	}
	// Return the result of the operation
	return <-msg.replyCh
}

func (s *itemStore[T]) Add(i T) error {
	return s.request(storeCh[T]{op: addItem, key: i.Key(), item: i}).err
}

func (s *itemStore[T]) Remove(i T) error {
	return s.request(storeCh[T]{op: removeItem, key: i.Key()}).err
}

func (s *itemStore[T]) Get(key string) (T, error) {
	r := s.request(storeCh[T]{op: getItem, key: key})
	if r.err != nil {
		var zero T
		return zero, r.err
	}
	return r.item[0], nil
}

// List returns the stored items in the order they were added.
func (s *itemStore[T]) List() []T {
	return s.request(storeCh[T]{op: listItems}).item
}

func (s *itemStore[T]) Stop() {
	s.stopOnce.Do(func() {
		close(s.stopCh)
	})
}

func (s *itemStore[T]) manager() {
	items := make(map[string]T)
	var order []string
	for {
		select {
		case <-s.stopCh:
			return
		case msg := <-s.opCh:
			switch msg.op {
			case addItem:
				glog.V(6).Infof("Adding item: %s", msg.key)
				if _, ok := items[msg.key]; ok {
					msg.replyCh <- mgrReply[T]{err: ErrAlreadyExist}
					continue
				}
				items[msg.key] = msg.item
				order = append(order, msg.key)
				msg.replyCh <- mgrReply[T]{}
			case removeItem:
				glog.V(6).Infof("Removing item: %s", msg.key)
				if _, ok := items[msg.key]; !ok {
					msg.replyCh <- mgrReply[T]{err: ErrNotFound}
					continue
				}
				delete(items, msg.key)
				for i, k := range order {
					if k == msg.key {
						order = append(order[:i], order[i+1:]...)
						break
					}
				}
				msg.replyCh <- mgrReply[T]{}
			case getItem:
				glog.V(6).Infof("Getting item: %s", msg.key)
				it, ok := items[msg.key]
				if !ok {
					msg.replyCh <- mgrReply[T]{err: ErrNotFound}
					continue
				}
				msg.replyCh <- mgrReply[T]{item: []T{it}}
			case listItems:
				l := make([]T, 0, len(order))
				for _, k := range order {
					l = append(l, items[k])
				}
				msg.replyCh <- mgrReply[T]{item: l}
			}
		}
	}
}

// NewStore returns a new instance of a store, any object which is compatible
// with the interface Storable, can be stored in the store.
func NewStore[T Storable]() Manager[T] {
	s := &itemStore[T]{
		stopCh: make(chan struct{}),
		opCh:   make(chan storeCh[T]),
	}
	// Starting store manager
	go s.manager()

	return s
}
