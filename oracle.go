package qsim

/*
BuildOracle encodes a secret into controlled-not gates that kick the
secret's inner product with the data register into the ancilla.

Bit i of the secret is its (n-1-i)th character, so the last character maps
to qubit 0. Every '1' bit yields ControlledNot(i, n); '0' bits yield nothing,
which makes the all-zero secret an empty oracle. The secret must already be
validated.
*/
func BuildOracle(secret string) []Gate {
	n := len(secret)
	gates := make([]Gate, 0, n)

	for i := 0; i < n; i++ {
		if secret[n-1-i] == '1' {
			gates = append(gates, ControlledNot(i, n))
		}
	}

	return gates
}
