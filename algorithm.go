package qsim

import (
	"context"

	"github.com/google/uuid"
	"github.com/theapemachine/errnie"
)

// Result is the outcome of one Bernstein–Vazirani run.
type Result struct {
	ID          string
	Counts      Counts
	FoundString string
	Info        CircuitInfo
	Report      *Report
	StateBytes  uint64 // amplitude vector footprint admitted for the run
}

/*
RunAlgorithm recovers secret with one oracle query. It validates the input,
builds the circuit, evolves a fresh statevector through it, samples shots
from the measured distribution and reduces them to a report.

The run has no hidden state: the same secret, shots and seed always produce
the same counts. Invalid input wraps ErrInvalidInput and registers beyond the
configured budget wrap ErrResourceLimit; both are returned before any
amplitude is allocated.
*/
func RunAlgorithm(ctx context.Context, secret string, shots int, opts ...Option) (*Result, error) {
	config := NewConfig()
	for _, opt := range opts {
		opt(config)
	}

	if err := ValidateSecret(secret); err != nil {
		return nil, err
	}
	if err := ValidateShots(shots); err != nil {
		return nil, err
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	governor := NewResourceGovernor(config.MaxQubits, config.MaxStateBytes)
	if err := governor.Admit(NewRegister(len(secret)).Size()); err != nil {
		return nil, err
	}

	circuit, err := NewBernsteinVazirani(secret)
	if err != nil {
		return nil, err
	}

	wf := Marginalize(
		NewQuantumState(circuit.Register().Size()).Evolve(circuit),
		circuit.Measured(),
	)

	counts, err := NewSampler(config).Sample(ctx, wf, shots)
	if err != nil {
		return nil, err
	}

	_, stateBytes := governor.GetResourceUsage()
	report := Aggregate(secret, counts)
	result := &Result{
		ID:          uuid.NewString(),
		Counts:      counts,
		FoundString: report.Found,
		Info:        circuit.Info(),
		Report:      report,
		StateBytes:  stateBytes,
	}

	errnie.Info(
		"RunAlgorithm - run %s, secret %s, shots %d, found %s, match %v, state bytes %d",
		result.ID, secret, shots, result.FoundString, report.Match, stateBytes,
	)
	return result, nil
}
