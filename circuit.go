package qsim

import (
	"fmt"

	"github.com/theapemachine/errnie"
)

// CircuitInfo summarises a circuit for display.
type CircuitInfo struct {
	Qubits int
	Clbits int
	Gates  int
	Depth  int
}

/*
Circuit is an ordered gate sequence over a Register plus the set of measured
qubits. Gate order is execution order. Every gate is checked against the
register when appended; an out-of-range index is a programming error and
panics.
*/
type Circuit struct {
	register Register
	gates    []Gate
	measured []int
	declared []bool
}

func NewCircuit(dataQubits int) *Circuit {
	return &Circuit{
		register: NewRegister(dataQubits),
		gates:    make([]Gate, 0),
		declared: make([]bool, dataQubits+1),
	}
}

/*
NewBernsteinVazirani assembles the full circuit for a secret: the ancilla is
prepared in |−⟩, the data register in uniform superposition, the oracle is
applied once and the data register is rotated back before measurement. The
ancilla is never measured.
*/
func NewBernsteinVazirani(secret string) (*Circuit, error) {
	if err := ValidateSecret(secret); err != nil {
		return nil, err
	}

	c := NewCircuit(len(secret))
	ancilla := c.register.Ancilla()

	c.Append(PauliX(ancilla), Hadamard(ancilla))
	for _, q := range c.register.DataQubits() {
		c.Append(Hadamard(q))
	}

	c.Append(BuildOracle(secret)...)

	for _, q := range c.register.DataQubits() {
		c.Append(Hadamard(q))
	}
	c.Measure(c.register.DataQubits()...)

	errnie.Info("NewBernsteinVazirani - secret %s, qubits %d, gates %d", secret, c.register.Size(), len(c.gates))
	return c, nil
}

// Append adds gates to the end of the circuit.
func (c *Circuit) Append(gates ...Gate) *Circuit {
	for _, g := range gates {
		for _, q := range g.Qubits() {
			if !c.register.Contains(q) {
				panic(fmt.Sprintf("gate %s addresses qubit %d outside register of size %d", g, q, c.register.Size()))
			}
		}
		c.gates = append(c.gates, g)
	}
	return c
}

/*
Measure declares qubits as measured. Classical bit j receives the j-th
declared qubit. Declaring the same qubit twice is ignored.
*/
func (c *Circuit) Measure(qubits ...int) *Circuit {
	for _, q := range qubits {
		if !c.register.Contains(q) {
			panic(fmt.Sprintf("cannot measure qubit %d outside register of size %d", q, c.register.Size()))
		}
		if c.declared[q] {
			continue
		}
		c.declared[q] = true
		c.measured = append(c.measured, q)
	}
	return c
}

func (c *Circuit) Register() Register {
	return c.register
}

// Gates returns a copy of the gate sequence.
func (c *Circuit) Gates() []Gate {
	out := make([]Gate, len(c.gates))
	copy(out, c.gates)
	return out
}

// Measured returns a copy of the measured qubit list.
func (c *Circuit) Measured() []int {
	out := make([]int, len(c.measured))
	copy(out, c.measured)
	return out
}

/*
Info reports the register size, classical bit count, gate count and layered
depth. Gates on disjoint qubits share a layer.
*/
func (c *Circuit) Info() CircuitInfo {
	layer := make([]int, c.register.Size())
	depth := 0

	for _, g := range c.gates {
		next := 0
		for _, q := range g.Qubits() {
			next = max(next, layer[q])
		}
		next++
		for _, q := range g.Qubits() {
			layer[q] = next
		}
		depth = max(depth, next)
	}

	return CircuitInfo{
		Qubits: c.register.Size(),
		Clbits: len(c.measured),
		Gates:  len(c.gates),
		Depth:  depth,
	}
}
