// wavefunction.go
package qsim

import (
	"fmt"
	"math/rand/v2"
	"sort"

	"github.com/theapemachine/errnie"
)

// probabilityFloor treats rounding residue from destructive interference as zero.
const probabilityFloor = 1e-12

/*
WaveFunction is the outcome distribution over the measured qubits. It only
holds outcomes with non-zero probability, ordered by bitstring, and its
probabilities sum to 1.
*/
type WaveFunction struct {
	States []State
	width  int

	cumulative []float64
}

/*
NewWaveFunction normalizes the given states and prepares them for sampling.
States at or below the probability floor are dropped.
*/
func NewWaveFunction(states []State, width int) *WaveFunction {
	kept := make([]State, 0, len(states))
	var total float64
	for _, s := range states {
		if s.Probability <= probabilityFloor {
			continue
		}
		kept = append(kept, s)
		total += s.Probability
	}

	sort.Slice(kept, func(i, j int) bool {
		return kept[i].Value < kept[j].Value
	})

	wf := &WaveFunction{
		States:     kept,
		width:      width,
		cumulative: make([]float64, len(kept)),
	}

	var running float64
	for i := range wf.States {
		wf.States[i].Probability /= total
		running += wf.States[i].Probability
		wf.cumulative[i] = running
	}

	return wf
}

/*
Marginalize derives the Born-rule distribution over the measured qubits by
summing |amplitude|² over every assignment of the unmeasured ones. Classical
bit j holds measured[j]; bitstrings print the highest classical bit first.
*/
func Marginalize(qs *QuantumState, measured []int) *WaveFunction {
	weights := make(map[uint64]float64)

	for index := range qs.Vector {
		p := qs.Probability(index)
		if p == 0 {
			continue
		}

		var outcome uint64
		for clbit, q := range measured {
			if index&(1<<uint(q)) != 0 {
				outcome |= 1 << uint(clbit)
			}
		}
		weights[outcome] += p
	}

	states := make([]State, 0, len(weights))
	for outcome, p := range weights {
		states = append(states, State{
			Value:       formatOutcome(outcome, len(measured)),
			Probability: p,
		})
	}

	wf := NewWaveFunction(states, len(measured))
	errnie.Info("Marginalize - measured %d, outcomes %d", len(measured), len(wf.States))
	return wf
}

func formatOutcome(outcome uint64, width int) string {
	return fmt.Sprintf("%0*b", width, outcome)
}

// Width is the bitstring length of every outcome.
func (wf *WaveFunction) Width() int {
	return wf.width
}

// Probability returns the weight of a bitstring, 0 when it cannot occur.
func (wf *WaveFunction) Probability(value string) float64 {
	i := sort.Search(len(wf.States), func(i int) bool {
		return wf.States[i].Value >= value
	})
	if i < len(wf.States) && wf.States[i].Value == value {
		return wf.States[i].Probability
	}
	return 0
}

/*
Collapse draws one outcome. The random draw is compared against cumulative
probabilities, falling back to the last outcome when rounding leaves the
total a hair under 1.
*/
func (wf *WaveFunction) Collapse(rng *rand.Rand) string {
	if len(wf.States) == 0 {
		panic("cannot collapse an empty wave function")
	}

	r := rng.Float64()
	i := sort.SearchFloat64s(wf.cumulative, r)
	if i >= len(wf.States) {
		i = len(wf.States) - 1
	}
	return wf.States[i].Value
}

// sample collapses the wave function shots times into a fresh tally.
func (wf *WaveFunction) sample(rng *rand.Rand, shots int) Counts {
	counts := make(Counts)
	for i := 0; i < shots; i++ {
		counts[wf.Collapse(rng)]++
	}
	return counts
}
