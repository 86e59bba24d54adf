package qsim

/*
State is one measurable outcome: a classical bitstring and the probability
of observing it.
*/
type State struct {
	Value       string
	Probability float64
}
