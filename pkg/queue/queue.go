package queue

import "fmt"

// Queue is a bounded FIFO shared between producer goroutines and a single
// consumer loop. Implementations must be thread-safe.
type Queue[T any] interface {
	// Enqueue adds an item to the end of the queue without blocking.
	// It returns *ErrQueueFull when the queue is at capacity.
	Enqueue(item T) error
	// ReadAllMessages removes and returns every item currently queued.
	ReadAllMessages() ([]T, error)
	// Size returns the number of queued items.
	Size() int
	// ClearQueue discards all queued items.
	ClearQueue() error
}

// ErrQueueFull is returned by Enqueue when the queue is at capacity.
type ErrQueueFull struct {
	Capacity int
}

func (e *ErrQueueFull) Error() string {
	return fmt.Sprintf("queue is full (capacity %d)", e.Capacity)
}

func IsQueueFull(err error) bool {
	_, ok := err.(*ErrQueueFull)
	return ok
}
