package qsim

import (
	"fmt"
	"math"

	"github.com/theapemachine/errnie"
)

var invSqrt2 = complex(1/math.Sqrt2, 0)

/*
QuantumState is the full amplitude vector of a register. Bit q of a basis
index is the value of qubit q. The vector is mutated in place by Apply and
belongs to a single simulation pass.
*/
type QuantumState struct {
	Vector []complex128
	qubits int
}

// NewQuantumState returns |0...0⟩ over qubits. Callers check the size with a
// ResourceGovernor first.
func NewQuantumState(qubits int) *QuantumState {
	if qubits < 1 || qubits > 62 {
		panic(fmt.Sprintf("cannot allocate a state over %d qubits", qubits))
	}

	vector := make([]complex128, 1<<uint(qubits))
	vector[0] = 1

	return &QuantumState{
		Vector: vector,
		qubits: qubits,
	}
}

func (qs *QuantumState) Qubits() int {
	return qs.qubits
}

/*
Apply updates the amplitudes for one gate. Basis states are visited in pairs
that differ only in the target bit, and each pair is touched once.
*/
func (qs *QuantumState) Apply(g Gate) {
	for _, q := range g.Qubits() {
		if q < 0 || q >= qs.qubits {
			panic(fmt.Sprintf("gate %s addresses qubit %d outside a %d-qubit state", g, q, qs.qubits))
		}
	}

	switch g.Kind() {
	case GatePauliX:
		qs.applyX(g.Target())
	case GateHadamard:
		qs.applyH(g.Target())
	case GateControlledNot:
		qs.applyCX(g.Control(), g.Target())
	default:
		panic(fmt.Sprintf("unknown gate kind %d", int(g.Kind())))
	}
}

func (qs *QuantumState) applyX(target int) {
	bit := 1 << uint(target)
	for i := range qs.Vector {
		if i&bit == 0 {
			j := i | bit
			qs.Vector[i], qs.Vector[j] = qs.Vector[j], qs.Vector[i]
		}
	}
}

func (qs *QuantumState) applyH(target int) {
	bit := 1 << uint(target)
	for i := range qs.Vector {
		if i&bit == 0 {
			j := i | bit
			a0, a1 := qs.Vector[i], qs.Vector[j]
			qs.Vector[i] = (a0 + a1) * invSqrt2
			qs.Vector[j] = (a0 - a1) * invSqrt2
		}
	}
}

func (qs *QuantumState) applyCX(control, target int) {
	cBit := 1 << uint(control)
	tBit := 1 << uint(target)
	for i := range qs.Vector {
		if i&cBit != 0 && i&tBit == 0 {
			j := i | tBit
			qs.Vector[i], qs.Vector[j] = qs.Vector[j], qs.Vector[i]
		}
	}
}

/*
Evolve runs every gate of the circuit in order. The circuit's register must
match the state's qubit count.
*/
func (qs *QuantumState) Evolve(c *Circuit) *QuantumState {
	if c.Register().Size() != qs.qubits {
		panic(fmt.Sprintf("circuit over %d qubits applied to a %d-qubit state", c.Register().Size(), qs.qubits))
	}

	for _, g := range c.gates {
		qs.Apply(g)
	}

	errnie.Info("QuantumState.Evolve - qubits %d, gates %d, norm %f", qs.qubits, len(c.gates), qs.Norm())
	return qs
}

// Probability is the Born-rule weight of a single basis state.
func (qs *QuantumState) Probability(index int) float64 {
	a := qs.Vector[index]
	return real(a)*real(a) + imag(a)*imag(a)
}

// Norm returns the total probability mass, 1 for any state reached by gates.
func (qs *QuantumState) Norm() float64 {
	var total float64
	for i := range qs.Vector {
		total += qs.Probability(i)
	}
	return total
}
