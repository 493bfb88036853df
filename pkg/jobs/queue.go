package jobs

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Task is a unit of background work, such as one schedule generation run.
type Task struct {
	ID      string
	Kind    string
	Payload interface{}
}

// Handler executes a task. A non-nil error triggers a retry.
type Handler func(context.Context, Task) error

// Options tunes the worker pool.
type Options struct {
	Workers int
	Buffer  int
	Retries int
	Backoff time.Duration
	Logger  *zap.Logger
}

// Queue dispatches tasks to a fixed pool of goroutine workers. Failed tasks
// are retried in place by the worker that picked them up.
type Queue struct {
	name    string
	handler Handler
	opts    Options

	tasks   chan Task
	ctx     context.Context
	cancel  context.CancelFunc
	wg      sync.WaitGroup
	mu      sync.Mutex
	running bool
}

// NewQueue builds a queue that feeds tasks to handler.
func NewQueue(name string, handler Handler, opts Options) *Queue {
	if opts.Workers <= 0 {
		opts.Workers = 1
	}
	if opts.Buffer <= 0 {
		opts.Buffer = opts.Workers * 4
	}
	if opts.Retries < 0 {
		opts.Retries = 0
	}
	if opts.Backoff <= 0 {
		opts.Backoff = time.Second
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	return &Queue{
		name:    name,
		handler: handler,
		opts:    opts,
		tasks:   make(chan Task, opts.Buffer),
	}
}

// Start launches the workers. Calling Start on a running queue is a no-op.
func (q *Queue) Start(ctx context.Context) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.running {
		return
	}
	q.ctx, q.cancel = context.WithCancel(ctx)
	for i := 0; i < q.opts.Workers; i++ {
		q.wg.Add(1)
		go q.work()
	}
	q.running = true
	q.opts.Logger.Sugar().Infow("queue started", "queue", q.name, "workers", q.opts.Workers)
}

// Stop cancels the workers and blocks until they exit.
func (q *Queue) Stop() {
	q.mu.Lock()
	if !q.running {
		q.mu.Unlock()
		return
	}
	q.cancel()
	q.mu.Unlock()
	q.wg.Wait()
	q.opts.Logger.Sugar().Infow("queue stopped", "queue", q.name)
}

// Submit hands a task to the pool, blocking while the buffer is full.
func (q *Queue) Submit(task Task) error {
	q.mu.Lock()
	ctx := q.ctx
	running := q.running
	q.mu.Unlock()

	if !running {
		return fmt.Errorf("queue %s not started", q.name)
	}

	select {
	case <-ctx.Done():
		return fmt.Errorf("queue %s stopped: %w", q.name, ctx.Err())
	case q.tasks <- task:
		return nil
	}
}

func (q *Queue) work() {
	defer q.wg.Done()
	for {
		select {
		case <-q.ctx.Done():
			return
		case task := <-q.tasks:
			q.run(task)
		}
	}
}

// run executes the task, retrying in place with a fixed backoff.
func (q *Queue) run(task Task) {
	log := q.opts.Logger.Sugar()
	for attempt := 0; ; attempt++ {
		err := q.handler(q.ctx, task)
		if err == nil {
			return
		}
		if attempt >= q.opts.Retries {
			log.Errorw("task failed permanently",
				"queue", q.name, "task_id", task.ID, "kind", task.Kind, "attempts", attempt+1, "error", err)
			return
		}
		log.Warnw("task failed, retrying",
			"queue", q.name, "task_id", task.ID, "kind", task.Kind, "attempt", attempt+1, "error", err)

		timer := time.NewTimer(q.opts.Backoff)
		select {
		case <-q.ctx.Done():
			timer.Stop()
			return
		case <-timer.C:
		}
	}
}
