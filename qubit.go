package qsim

import "fmt"

/*
Register is the qubit layout of a Bernstein–Vazirani run: data qubits
0..n-1 followed by one ancilla at index n. Its size is fixed when created.
*/
type Register struct {
	data int
}

func NewRegister(dataQubits int) Register {
	if dataQubits < 1 {
		panic(fmt.Sprintf("register needs at least one data qubit, got %d", dataQubits))
	}
	return Register{data: dataQubits}
}

// Data returns the number of data qubits.
func (r Register) Data() int {
	return r.data
}

// Ancilla returns the index of the auxiliary qubit.
func (r Register) Ancilla() int {
	return r.data
}

func (r Register) Size() int {
	return r.data + 1
}

func (r Register) Contains(q int) bool {
	return q >= 0 && q <= r.data
}

// DataQubits lists 0..n-1 in ascending order.
func (r Register) DataQubits() []int {
	qubits := make([]int, r.data)
	for i := range qubits {
		qubits[i] = i
	}
	return qubits
}
