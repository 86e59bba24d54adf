package qsim

import (
	"runtime"
	"sync"

	"github.com/pkg/errors"
	"github.com/theapemachine/errnie"
)

// amplitudeBytes is the size of one complex128 amplitude.
const amplitudeBytes = 16

/*
ResourceGovernor keeps statevector allocations inside a budget. A register
of q qubits needs 2^q amplitudes of 16 bytes each; anything above the
configured qubit count or byte budget is refused before allocation so the
caller gets ErrResourceLimit instead of an out-of-memory crash.
*/
type ResourceGovernor struct {
	mu sync.RWMutex

	maxQubits     int
	maxStateBytes uint64

	// last admitted allocation, for reporting
	lastQubits int
	lastBytes  uint64
}

func NewResourceGovernor(maxQubits int, maxStateBytes uint64) *ResourceGovernor {
	// shifting past 62 would overflow the byte count
	if maxQubits > 58 {
		maxQubits = 58
	}
	return &ResourceGovernor{
		maxQubits:     maxQubits,
		maxStateBytes: maxStateBytes,
	}
}

// StateBytes is the memory an amplitude vector over qubits occupies.
func StateBytes(qubits int) uint64 {
	return amplitudeBytes << uint(qubits)
}

/*
Admit checks whether a statevector over qubits fits the budget and records
it when it does.
*/
func (rg *ResourceGovernor) Admit(qubits int) error {
	rg.mu.Lock()
	defer rg.mu.Unlock()

	if qubits > rg.maxQubits {
		return errors.Wrapf(
			ErrResourceLimit,
			"register of %d qubits exceeds the limit of %d", qubits, rg.maxQubits,
		)
	}

	need := StateBytes(qubits)
	if need > rg.maxStateBytes {
		return errors.Wrapf(
			ErrResourceLimit,
			"register of %d qubits needs %d bytes, budget is %d", qubits, need, rg.maxStateBytes,
		)
	}

	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)
	errnie.Info(
		"ResourceGovernor.Admit - qubits %d, state bytes %d, heap in use %d",
		qubits, need, memStats.HeapInuse,
	)

	rg.lastQubits = qubits
	rg.lastBytes = need
	return nil
}

// GetThresholds returns the qubit and byte limits.
func (rg *ResourceGovernor) GetThresholds() (qubits int, bytes uint64) {
	rg.mu.RLock()
	defer rg.mu.RUnlock()
	return rg.maxQubits, rg.maxStateBytes
}

// GetResourceUsage returns the last admitted register size and its footprint.
func (rg *ResourceGovernor) GetResourceUsage() (qubits int, bytes uint64) {
	rg.mu.RLock()
	defer rg.mu.RUnlock()
	return rg.lastQubits, rg.lastBytes
}
