package qsim

import (
	"log"
	"sync"
	"time"
)

// QuantumValue wraps a job result with metadata
type QuantumValue struct {
	Value     any
	Error     error
	CreatedAt time.Time
}

/*
QuantumSpace is the rendezvous between workers storing job results and the
goroutine awaiting them. A stored value is handed to one observer and then
forgotten.
*/
type QuantumSpace struct {
	mu      sync.Mutex
	values  map[string]QuantumValue
	waiting map[string][]chan QuantumValue
}

func newQuantumSpace() *QuantumSpace {
	return &QuantumSpace{
		values:  make(map[string]QuantumValue),
		waiting: make(map[string][]chan QuantumValue),
	}
}

// Store stores a value with its metadata
func (qs *QuantumSpace) Store(id string, value any, err error) {
	qs.mu.Lock()
	defer qs.mu.Unlock()

	qv := QuantumValue{
		Value:     value,
		Error:     err,
		CreatedAt: time.Now(),
	}

	channels, ok := qs.waiting[id]
	if !ok {
		qs.values[id] = qv
		return
	}

	for i, ch := range channels {
		select {
		case ch <- qv:
		default:
			log.Printf("Failed to send result to channel %d for job %s", i, id)
		}
		close(ch)
	}
	delete(qs.waiting, id)
}

// Await returns a channel that receives the value stored under id.
func (qs *QuantumSpace) Await(id string) chan QuantumValue {
	qs.mu.Lock()
	defer qs.mu.Unlock()

	ch := make(chan QuantumValue, 1)

	if qv, ok := qs.values[id]; ok {
		delete(qs.values, id)
		ch <- qv
		close(ch)
		return ch
	}

	qs.waiting[id] = append(qs.waiting[id], ch)
	return ch
}

// Pending reports how many results are stored but not yet collected.
func (qs *QuantumSpace) Pending() int {
	qs.mu.Lock()
	defer qs.mu.Unlock()
	return len(qs.values)
}
