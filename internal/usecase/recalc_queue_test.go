package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"

	"construfin/internal/domain/entities"
)

// recordingEngine counts recalculations per scope, concurrency-safe.
type recordingEngine struct {
	mu       sync.Mutex
	projects []string
	phases   []string
	err      error
}

func (e *recordingEngine) RecalculateProject(_ context.Context, id string) (entities.FinancialSummary, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.projects = append(e.projects, id)
	return entities.FinancialSummary{}, e.err
}

func (e *recordingEngine) RecalculatePhase(_ context.Context, id string) (entities.FinancialSummary, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.phases = append(e.phases, id)
	return entities.FinancialSummary{}, e.err
}

func TestRecalcQueue_ProcessesTasks(t *testing.T) {
	engine := &recordingEngine{}
	q := NewRecalcQueue(engine, 8)

	q.Enqueue(RecalcTask{Scope: RecalcScopeProject, ID: "proj-1"})
	q.Enqueue(RecalcTask{Scope: RecalcScopePhase, ID: "phase-1"})
	q.Enqueue(RecalcTask{Scope: RecalcScopePhase, ID: "phase-2"})
	q.Close()

	engine.mu.Lock()
	defer engine.mu.Unlock()
	if len(engine.projects) != 1 || engine.projects[0] != "proj-1" {
		t.Fatalf("expected one project recalculation, got %v", engine.projects)
	}
	if len(engine.phases) != 2 {
		t.Fatalf("expected two phase recalculations, got %v", engine.phases)
	}
}

func TestRecalcQueue_EngineFailureDoesNotStopWorker(t *testing.T) {
	engine := &recordingEngine{err: errors.New("store offline")}
	q := NewRecalcQueue(engine, 8)

	q.Enqueue(RecalcTask{Scope: RecalcScopeProject, ID: "proj-1"})
	q.Enqueue(RecalcTask{Scope: RecalcScopeProject, ID: "proj-2"})
	q.Close()

	engine.mu.Lock()
	defer engine.mu.Unlock()
	if len(engine.projects) != 2 {
		t.Fatalf("worker must survive engine failures, got %v", engine.projects)
	}
}

func TestRecalcQueue_CloseIsIdempotent(t *testing.T) {
	q := NewRecalcQueue(&recordingEngine{}, 1)
	q.Close()
	q.Close()
}

func TestRecalcQueue_EnqueueAfterCloseIsDropped(t *testing.T) {
	engine := &recordingEngine{}
	q := NewRecalcQueue(engine, 1)
	q.Close()

	// Must not panic on the closed channel; the task is simply dropped.
	q.Enqueue(RecalcTask{Scope: RecalcScopeProject, ID: "proj-1"})

	engine.mu.Lock()
	defer engine.mu.Unlock()
	if len(engine.projects) != 0 {
		t.Fatalf("no task may run after Close, got %v", engine.projects)
	}
}
