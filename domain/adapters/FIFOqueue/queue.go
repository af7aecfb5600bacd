package FIFOqueue

import (
	"sync/atomic"

	"github.com/antigloss/go/concurrent/container/queue"
)

// FIFOQueue is a lock free, multi producer queue.
type FIFOQueue struct {
	queue *queue.LockfreeQueue
	size  int64
}

func New() *FIFOQueue {
	return &FIFOQueue{
		queue: queue.NewLockfreeQueue(),
		size:  0,
	}
}

func (q *FIFOQueue) Push(v interface{}) error {
	atomic.AddInt64(&q.size, 1)
	q.queue.Push(v)
	return nil
}

// Pop returns nil when the queue is empty.
func (q *FIFOQueue) Pop() (interface{}, error) {
	v := q.queue.Pop()
	if v != nil {
		atomic.AddInt64(&q.size, -1)
	}
	return v, nil
}

func (q *FIFOQueue) Len() int {
	return int(atomic.LoadInt64(&q.size))
}
