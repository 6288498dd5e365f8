package usecase

import (
	"context"
	"log"
	"sync"
)

type RecalcScope string

const (
	RecalcScopeProject RecalcScope = "project"
	RecalcScopePhase   RecalcScope = "phase"
)

type RecalcTask struct {
	Scope RecalcScope
	ID    string
}

// RecalcQueue runs best-effort recalculations after a transaction commits.
// Detached from the triggering request: tasks run on a background worker
// with their own context, failures go to the log sink and never surface to
// the caller; the monetary write has already succeeded by then.
type RecalcQueue struct {
	engine IRecalculationUseCase
	tasks  chan RecalcTask
	wg     sync.WaitGroup

	mu     sync.Mutex
	closed bool
}

func NewRecalcQueue(engine IRecalculationUseCase, buffer int) *RecalcQueue {
	if buffer <= 0 {
		buffer = 64
	}
	q := &RecalcQueue{
		engine: engine,
		tasks:  make(chan RecalcTask, buffer),
	}
	q.wg.Add(1)
	go q.worker()
	return q
}

// Enqueue never blocks the caller. A full or closed queue drops the task to
// the log sink; the summary stays stale until the next mutation or manual
// recalculation.
func (q *RecalcQueue) Enqueue(task RecalcTask) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		log.Printf("[recalc][queue] queue closed, dropping task scope=%s id=%s", task.Scope, task.ID)
		return
	}
	select {
	case q.tasks <- task:
	default:
		log.Printf("[recalc][queue] queue full, dropping task scope=%s id=%s", task.Scope, task.ID)
	}
}

// Close drains pending tasks and stops the worker. Safe to call more than
// once; later Enqueues are dropped instead of panicking on the closed
// channel.
func (q *RecalcQueue) Close() {
	q.mu.Lock()
	if !q.closed {
		q.closed = true
		close(q.tasks)
	}
	q.mu.Unlock()
	q.wg.Wait()
}

func (q *RecalcQueue) worker() {
	defer q.wg.Done()
	for task := range q.tasks {
		q.run(task)
	}
}

func (q *RecalcQueue) run(task RecalcTask) {
	ctx := context.Background()
	var err error
	switch task.Scope {
	case RecalcScopeProject:
		_, err = q.engine.RecalculateProject(ctx, task.ID)
	case RecalcScopePhase:
		_, err = q.engine.RecalculatePhase(ctx, task.ID)
	default:
		log.Printf("[recalc][queue] unknown scope=%s id=%s", task.Scope, task.ID)
		return
	}
	if err != nil {
		log.Printf("[recalc][queue] task failed scope=%s id=%s err=%v", task.Scope, task.ID, err)
	}
}
