package qsim

import (
	"log"

	"github.com/pkg/errors"
)

// Worker processes jobs
type Worker struct {
	id   int
	pool *Q
	jobs chan Job
}

/*
run offers the worker's job channel to the pool, executes whatever job
arrives and stores the result, until the pool context is cancelled.
*/
func (w *Worker) run() {
	ctx := w.pool.ctx

	for {
		select {
		case <-ctx.Done():
			return
		case w.pool.workers <- w.jobs:
		}

		select {
		case <-ctx.Done():
			return
		case job, ok := <-w.jobs:
			if !ok {
				return
			}
			result, err := w.processJob(job)
			w.pool.space.Store(job.ID, result, err)
		}
	}
}

func (w *Worker) processJob(job Job) (result any, err error) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Worker %d: job %s panicked: %v", w.id, job.ID, r)
			result, err = nil, errors.Errorf("job %s panicked: %v", job.ID, r)
		}
		w.pool.metrics.recordJobExecution(job.StartTime, err == nil)
	}()

	result, err = job.Fn()
	if err != nil {
		log.Printf("Worker %d: job %s failed with error: %v", w.id, job.ID, err)
	}
	return result, err
}
