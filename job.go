package qsim

import "time"

// Job is a unit of sampling work handed to a pool worker.
type Job struct {
	ID        string
	Fn        func() (any, error)
	StartTime time.Time
}
