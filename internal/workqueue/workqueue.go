// Package workqueue implements a fixed-size worker pool draining a FIFO
// task queue, with join-to-quiescence semantics: Finish blocks until every
// previously Execute'd task has run to completion, without shutting the
// pool down.
package workqueue

import (
	"sync"

	"github.com/sirupsen/logrus"
)

// Task is a unit of work submitted to a Queue.
type Task func()

// Queue is a fixed-size goroutine pool draining a FIFO task backlog.
// Execute never blocks on capacity (the backlog is an unbounded slice
// guarded by mu, not a fixed-size channel); Finish blocks until the
// backlog is empty and every worker is idle.
type Queue struct {
	mu       sync.Mutex
	cond     *sync.Cond
	tasks    []Task
	pending  int
	shutdown bool

	once sync.Once
	wg   sync.WaitGroup

	log *logrus.Logger
}

// New starts a Queue with the given number of worker goroutines. workers
// below 1 is treated as 1.
func New(workers int) *Queue {
	if workers < 1 {
		workers = 1
	}

	q := &Queue{
		log: logrus.StandardLogger(),
	}
	q.cond = sync.NewCond(&q.mu)

	for i := 0; i < workers; i++ {
		q.wg.Add(1)
		go q.worker(i)
	}
	return q
}

// Execute enqueues task for a worker to run. It never blocks on capacity
// and never rejects a task while the queue has not been shut down.
func (q *Queue) Execute(task Task) {
	q.mu.Lock()
	q.pending++
	q.tasks = append(q.tasks, task)
	q.cond.Broadcast()
	q.mu.Unlock()
}

// Finish blocks until the backlog is empty and no worker has a task in
// hand — the pending counter, not backlog emptiness alone, is what Finish
// waits on, so a task that has been dequeued but not yet completed still
// counts as outstanding.
func (q *Queue) Finish() {
	q.mu.Lock()
	for q.pending > 0 {
		q.cond.Wait()
	}
	q.mu.Unlock()
}

// Shutdown signals every worker to exit once the backlog drains. Execute
// must not be called after Shutdown.
func (q *Queue) Shutdown() {
	q.once.Do(func() {
		q.mu.Lock()
		q.shutdown = true
		q.cond.Broadcast()
		q.mu.Unlock()
	})
}

// Join waits for every worker goroutine to terminate. Call after Shutdown.
func (q *Queue) Join() {
	q.wg.Wait()
}

func (q *Queue) worker(id int) {
	defer q.wg.Done()
	q.log.WithField("worker", id).Debug("worker starting")

	for {
		q.mu.Lock()
		for len(q.tasks) == 0 && !q.shutdown {
			q.cond.Wait()
		}
		if len(q.tasks) == 0 {
			q.mu.Unlock()
			q.log.WithField("worker", id).Debug("worker exiting")
			return
		}
		task := q.tasks[0]
		q.tasks = q.tasks[1:]
		q.mu.Unlock()

		q.runTask(id, task)
	}
}

// runTask executes task, recovering a panic so that one failing task
// never wedges the pool: the panic is logged and the worker continues.
// The pending counter is decremented exactly once, whether the task
// completed normally or panicked.
func (q *Queue) runTask(id int, task Task) {
	defer func() {
		if r := recover(); r != nil {
			q.log.WithFields(logrus.Fields{"worker": id, "panic": r}).Error("task panicked")
		}
		q.mu.Lock()
		q.pending--
		if q.pending == 0 {
			q.cond.Broadcast()
		}
		q.mu.Unlock()
	}()
	task()
}
