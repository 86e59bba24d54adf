package qsim

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/pkg/errors"
)

/*
Q is a fixed-size worker pool. Jobs are queued, handed to whichever worker
offers its channel first, and their results are collected through a
QuantumSpace.
*/
type Q struct {
	ctx        context.Context
	cancel     context.CancelFunc
	wg         sync.WaitGroup
	workers    chan chan Job
	jobs       chan Job
	space      *QuantumSpace
	metrics    *Metrics
	workerMu   sync.Mutex
	workerList []*Worker
	config     *Config
}

// NewQ starts a pool of size workers. A nil config uses NewConfig defaults.
func NewQ(ctx context.Context, size int, config *Config) *Q {
	if size < 1 {
		size = 1
	}
	if config == nil {
		config = NewConfig()
	}

	ctx, cancel := context.WithCancel(ctx)
	q := &Q{
		ctx:        ctx,
		cancel:     cancel,
		workerList: make([]*Worker, 0, size),
		jobs:       make(chan Job, size*10),
		workers:    make(chan chan Job, size),
		space:      newQuantumSpace(),
		metrics:    NewMetrics(),
		config:     config,
	}

	for i := 0; i < size; i++ {
		q.startWorker()
	}

	q.wg.Add(1)
	go func() {
		defer q.wg.Done()
		q.manage()
	}()

	q.wg.Add(1)
	go func() {
		defer q.wg.Done()
		q.collectMetrics()
	}()

	return q
}

/*
manage hands queued jobs to idle workers. A job that waits longer than the
scheduling timeout is logged as stalled but keeps waiting: only closing the
pool stops it.
*/
func (q *Q) manage() {
	for {
		select {
		case <-q.ctx.Done():
			return
		case job := <-q.jobs:
			if !q.dispatch(job) {
				return
			}
		}
	}
}

func (q *Q) dispatch(job Job) bool {
	stall := time.NewTimer(q.getSchedulingTimeout())
	defer stall.Stop()

	for {
		select {
		case <-q.ctx.Done():
			return false
		case workerChan := <-q.workers:
			select {
			case workerChan <- job:
				return true
			case <-q.ctx.Done():
				return false
			}
		case <-stall.C:
			log.Printf("Job %s still waiting for a worker after %v", job.ID, q.getSchedulingTimeout())
			q.metrics.recordSchedulingDelay()
		}
	}
}

func (q *Q) collectMetrics() {
	ticker := time.NewTicker(500 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-q.ctx.Done():
			return
		case <-ticker.C:
			q.metrics.mu.Lock()
			q.metrics.JobQueueSize = len(q.jobs)
			q.metrics.ActiveWorkers = q.metrics.WorkerCount - len(q.workers)
			q.metrics.mu.Unlock()
		}
	}
}

/*
Schedule queues fn under id and returns a channel that receives its result.
It blocks while the queue is full. Once the pool is closed the channel
carries the context error instead.
*/
func (q *Q) Schedule(id string, fn func() (any, error)) chan QuantumValue {
	job := Job{
		ID:        id,
		Fn:        fn,
		StartTime: time.Now(),
	}

	if err := q.ctx.Err(); err != nil {
		return q.failed(id, err)
	}

	select {
	case q.jobs <- job:
		return q.space.Await(id)
	case <-q.ctx.Done():
		return q.failed(id, q.ctx.Err())
	}
}

func (q *Q) failed(id string, err error) chan QuantumValue {
	ch := make(chan QuantumValue, 1)
	ch <- QuantumValue{
		Error:     errors.Wrapf(err, "job %s scheduling", id),
		CreatedAt: time.Now(),
	}
	close(ch)

	q.metrics.recordSchedulingFailure()
	return ch
}

// Metrics returns the live metrics of the pool.
func (q *Q) Metrics() *Metrics {
	return q.metrics
}

func (q *Q) startWorker() {
	q.workerMu.Lock()
	worker := &Worker{
		id:   len(q.workerList),
		pool: q,
		jobs: make(chan Job),
	}
	q.workerList = append(q.workerList, worker)
	q.workerMu.Unlock()

	q.metrics.mu.Lock()
	q.metrics.WorkerCount++
	q.metrics.mu.Unlock()

	q.wg.Add(1)
	go func() {
		defer q.wg.Done()
		worker.run()
	}()
}

func (q *Q) getSchedulingTimeout() time.Duration {
	if q.config != nil && q.config.SchedulingTimeout > 0 {
		return q.config.SchedulingTimeout
	}
	return 5 * time.Second
}

// Close cancels the pool and waits for every goroutine it started.
func (q *Q) Close() {
	if q == nil {
		return
	}

	q.cancel()
	q.wg.Wait()

	q.workerMu.Lock()
	q.workerList = nil
	q.workerMu.Unlock()
}
