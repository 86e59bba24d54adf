package qsim

import "sort"

// Counts maps an observed bitstring to how often it was measured.
type Counts map[string]int

// Total is the number of shots the counts cover.
func (c Counts) Total() int {
	total := 0
	for _, n := range c {
		total += n
	}
	return total
}

// Merge adds other into c.
func (c Counts) Merge(other Counts) {
	for k, n := range other {
		c[k] += n
	}
}

// Outcome is one ranked entry of a report.
type Outcome struct {
	Bitstring string
	Count     int
	Percent   float64
}

/*
Report is the reduction of a shot tally: outcomes ranked by count, the most
frequent one, whether it equals the secret, and the query cost of the
quantum and the classical approach.
*/
type Report struct {
	Secret           string
	Shots            int
	Ranked           []Outcome
	Found            string
	Match            bool
	QuantumQueries   int
	ClassicalQueries int
}

/*
Rank orders outcomes by descending count. Equal counts are ordered by
bitstring so the result never depends on map iteration.
*/
func (c Counts) Rank() []Outcome {
	total := c.Total()
	ranked := make([]Outcome, 0, len(c))

	for bits, n := range c {
		o := Outcome{Bitstring: bits, Count: n}
		if total > 0 {
			o.Percent = 100 * float64(n) / float64(total)
		}
		ranked = append(ranked, o)
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return ranked[i].Bitstring < ranked[j].Bitstring
	})

	return ranked
}

// Aggregate builds the report for a secret and its measured counts.
func Aggregate(secret string, counts Counts) *Report {
	ranked := counts.Rank()

	report := &Report{
		Secret:           secret,
		Shots:            counts.Total(),
		Ranked:           ranked,
		QuantumQueries:   1,
		ClassicalQueries: len(secret),
	}

	if len(ranked) > 0 {
		report.Found = ranked[0].Bitstring
		report.Match = report.Found == secret
	}

	return report
}
