// Package roundtrip defers work to the end of the current unit of work, the point just
// before a response leaves the server.
//
// A Queue collects tasks during a round trip and runs them once on Flush. A Debouncer
// sits on top of a Queue and makes sure a trigger fired many times within one round
// trip results in a single task.
package roundtrip

import "sync"

// Scheduler accepts tasks to run before the next response.
type Scheduler interface {
	BeforeResponse(task func())
}

// Queue is a Scheduler whose tasks run when Flush is called.
type Queue struct {
	mu    sync.Mutex
	tasks []func()
}

// NewQueue creates an empty queue.
func NewQueue() *Queue {
	return &Queue{}
}

// BeforeResponse implements Scheduler.
func (q *Queue) BeforeResponse(task func()) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.tasks = append(q.tasks, task)
}

// Pending returns the number of queued tasks.
func (q *Queue) Pending() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.tasks)
}

// Flush runs queued tasks in order, including tasks queued by running tasks,
// and returns how many ran.
func (q *Queue) Flush() int {
	ran := 0
	for {
		q.mu.Lock()
		tasks := q.tasks
		q.tasks = nil
		q.mu.Unlock()

		if len(tasks) == 0 {
			return ran
		}
		for _, task := range tasks {
			task()
			ran++
		}
	}
}
