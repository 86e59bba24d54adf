package qsim

import (
	"fmt"
	"strings"
)

// QASM renders the circuit as an OpenQASM 2.0 program.
func (c *Circuit) QASM() string {
	var out strings.Builder

	out.WriteString("OPENQASM 2.0;\n")
	out.WriteString("include \"qelib1.inc\";\n\n")
	fmt.Fprintf(&out, "qreg q[%d];\n", c.register.Size())
	fmt.Fprintf(&out, "creg c[%d];\n\n", len(c.measured))

	for _, g := range c.gates {
		out.WriteString(g.String())
		out.WriteString(";\n")
	}
	if len(c.measured) > 0 {
		out.WriteString("\n")
	}

	for clbit, q := range c.measured {
		fmt.Fprintf(&out, "measure q[%d] -> c[%d];\n", q, clbit)
	}

	return out.String()
}
