package queue

import "sync"

// InMemoryQueue implements Queue with a buffered channel.
type InMemoryQueue[T any] struct {
	ch   chan T
	lock sync.Mutex
}

var _ Queue[int] = &InMemoryQueue[int]{}

// NewInMemoryQueue creates a new queue with the given capacity.
func NewInMemoryQueue[T any](size int) *InMemoryQueue[T] {
	return &InMemoryQueue[T]{
		ch: make(chan T, size),
	}
}

func (q *InMemoryQueue[T]) Enqueue(item T) error {
	select {
	case q.ch <- item:
		return nil
	default:
		return &ErrQueueFull{Capacity: cap(q.ch)}
	}
}

// ReadAllMessages drains what is queued at the time of the call.
func (q *InMemoryQueue[T]) ReadAllMessages() ([]T, error) {
	q.lock.Lock()
	defer q.lock.Unlock()

	n := len(q.ch)
	items := make([]T, 0, n)
	for i := 0; i < n; i++ {
		items = append(items, <-q.ch)
	}

	return items, nil
}

func (q *InMemoryQueue[T]) Size() int {
	return len(q.ch)
}

func (q *InMemoryQueue[T]) ClearQueue() error {
	q.lock.Lock()
	defer q.lock.Unlock()

	for len(q.ch) > 0 {
		<-q.ch
	}

	return nil
}
