// FILE: internal/service/queue.go
package service

import (
	"context"
	"fmt"
	"log"
	"math/rand/v2"
	"sync"
	"time"

	"chessai/internal/board"
	"chessai/internal/core"
	"chessai/internal/engine"
)

// EngineTask contains computer move calculation request and response channel
type EngineTask struct {
	GameID     string
	Board      board.Board
	Context    core.Context
	Difficulty core.Difficulty
	Response   chan<- EngineResult
}

// EngineResult contains the outcome of an engine calculation
type EngineResult struct {
	GameID string
	Search *engine.SearchResult // nil when the side to move has no legal move
	Engine string
	Error  error
}

// EngineQueue runs searches on a fixed pool of workers so callers are never
// blocked by the engine
type EngineQueue struct {
	tasks   chan EngineTask
	workers int
	seed    uint64
	wg      sync.WaitGroup
	ctx     context.Context
	cancel  context.CancelFunc
}

// NewEngineQueue creates a queue with specified worker count
func NewEngineQueue(workerCount int, seed uint64) *EngineQueue {
	if workerCount < 1 {
		workerCount = DefaultWorkers
	}

	ctx, cancel := context.WithCancel(context.Background())

	q := &EngineQueue{
		tasks:   make(chan EngineTask, 100), // Buffered for queueing
		workers: workerCount,
		seed:    seed,
		ctx:     ctx,
		cancel:  cancel,
	}

	q.start()
	return q
}

// start initializes the worker pool
func (q *EngineQueue) start() {
	for i := 0; i < q.workers; i++ {
		q.wg.Add(1)
		go q.worker(i)
	}
}

// worker processes engine tasks
func (q *EngineQueue) worker(id int) {
	defer q.wg.Done()

	// Each worker owns its generator, searches share nothing
	rng := engine.NewRand(q.seed + uint64(id))

	for {
		select {
		case task, ok := <-q.tasks:
			if !ok {
				return // Channel closed
			}

			result := q.processTask(rng, task)

			// Send result if receiver still listening
			select {
			case task.Response <- result:
			case <-time.After(100 * time.Millisecond):
				log.Printf("Engine result for game %s discarded: receiver gone", task.GameID)
			}

		case <-q.ctx.Done():
			return
		}
	}
}

// processTask executes a single engine calculation
func (q *EngineQueue) processTask(rng *rand.Rand, task EngineTask) EngineResult {
	searcher := engine.New(task.Difficulty, rng)
	return EngineResult{
		GameID: task.GameID,
		Search: searcher.Search(task.Board, task.Context),
		Engine: searcher.Name(),
	}
}

// Submit adds a task to the queue
func (q *EngineQueue) Submit(task EngineTask) error {
	select {
	case <-q.ctx.Done():
		return fmt.Errorf("queue is shutting down")
	default:
	}

	select {
	case q.tasks <- task:
		return nil
	case <-q.ctx.Done():
		return fmt.Errorf("queue is shutting down")
	default:
		return fmt.Errorf("queue is full")
	}
}

// Compute submits a task and waits for its result or for ctx to end
func (q *EngineQueue) Compute(ctx context.Context, task EngineTask) (EngineResult, error) {
	respChan := make(chan EngineResult, 1)
	task.Response = respChan

	if err := q.Submit(task); err != nil {
		return EngineResult{}, err
	}

	select {
	case result := <-respChan:
		return result, result.Error
	case <-ctx.Done():
		return EngineResult{}, ctx.Err()
	case <-q.ctx.Done():
		return EngineResult{}, fmt.Errorf("queue is shutting down")
	}
}

// Shutdown gracefully stops the queue
func (q *EngineQueue) Shutdown(timeout time.Duration) error {
	q.cancel()

	done := make(chan struct{})
	go func() {
		q.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-time.After(timeout):
		return fmt.Errorf("shutdown timeout exceeded")
	}
}
