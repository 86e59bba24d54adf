package qsim

import (
	"fmt"
	"math"
)

// GateKind tags the closed set of gates the simulator understands.
type GateKind int

const (
	GatePauliX GateKind = iota
	GateHadamard
	GateControlledNot
)

func (k GateKind) String() string {
	switch k {
	case GatePauliX:
		return "x"
	case GateHadamard:
		return "h"
	case GateControlledNot:
		return "cx"
	default:
		return fmt.Sprintf("gate(%d)", int(k))
	}
}

/*
Gate is an immutable operation on one or two qubits. Single-qubit gates
carry a control of -1.
*/
type Gate struct {
	kind    GateKind
	target  int
	control int
}

func PauliX(target int) Gate {
	return Gate{kind: GatePauliX, target: target, control: -1}
}

func Hadamard(target int) Gate {
	return Gate{kind: GateHadamard, target: target, control: -1}
}

func ControlledNot(control, target int) Gate {
	if control == target {
		panic(fmt.Sprintf("controlled-not needs distinct qubits, got %d twice", control))
	}
	return Gate{kind: GateControlledNot, target: target, control: control}
}

func (g Gate) Kind() GateKind {
	return g.kind
}

func (g Gate) Target() int {
	return g.target
}

// Control returns -1 for single-qubit gates.
func (g Gate) Control() int {
	return g.control
}

// Qubits returns the qubits the gate touches, control first.
func (g Gate) Qubits() []int {
	if g.kind == GateControlledNot {
		return []int{g.control, g.target}
	}
	return []int{g.target}
}

/*
Matrix returns the unitary the gate implements. Single-qubit gates are 2x2;
the controlled-not is 4x4 in the basis |control target⟩ = |00⟩, |01⟩, |10⟩, |11⟩.
The slices are freshly allocated on every call.
*/
func (g Gate) Matrix() [][]complex128 {
	switch g.kind {
	case GatePauliX:
		return [][]complex128{
			{0, 1},
			{1, 0},
		}
	case GateHadamard:
		// H = 1/√2 * [1  1]
		//           [1 -1]
		h := complex(1/math.Sqrt2, 0)
		return [][]complex128{
			{h, h},
			{h, -h},
		}
	case GateControlledNot:
		return [][]complex128{
			{1, 0, 0, 0},
			{0, 1, 0, 0},
			{0, 0, 0, 1},
			{0, 0, 1, 0},
		}
	default:
		panic(fmt.Sprintf("unknown gate kind %d", int(g.kind)))
	}
}

func (g Gate) String() string {
	if g.kind == GateControlledNot {
		return fmt.Sprintf("cx q[%d],q[%d]", g.control, g.target)
	}
	return fmt.Sprintf("%s q[%d]", g.kind, g.target)
}
