package match

import "sort"

// DefaultMinScore is the similarity a candidate needs before it is offered
// as a suggestion.
const DefaultMinScore = 0.7

// Candidate is a name scored against a wanted name.
type Candidate struct {
	Name  string
	Score float64
}

// CandidateList is a list of candidates sorted best first.
type CandidateList []Candidate

// Rank scores every name in pool against want and returns them best first.
// Ties are broken alphabetically so the result is deterministic.
func Rank(want string, pool []string) CandidateList {
	list := make(CandidateList, 0, len(pool))
	for _, name := range pool {
		list = append(list, Candidate{Name: name, Score: NormalizedSimilarity(want, name)})
	}

	sort.Sort(list)

	return list
}

// Suggest returns at most limit names from pool whose similarity to want is
// at least minScore, best first.
func Suggest(want string, pool []string, minScore float64, limit int) []string {
	var names []string

	for _, c := range Rank(want, pool).AboveThreshold(minScore).Top(limit) {
		names = append(names, c.Name)
	}

	return names
}

// Len implements sort.Interface.
func (c CandidateList) Len() int { return len(c) }

// Swap implements sort.Interface.
func (c CandidateList) Swap(i, j int) { c[i], c[j] = c[j], c[i] }

// Less implements sort.Interface.
func (c CandidateList) Less(i, j int) bool {
	if c[i].Score != c[j].Score {
		return c[i].Score > c[j].Score
	}

	return c[i].Name < c[j].Name
}

// Top returns the top n candidates.
func (c CandidateList) Top(n int) CandidateList {
	if n >= len(c) {
		return c
	}

	return c[:n]
}

// AboveThreshold returns candidates scoring at least threshold.
func (c CandidateList) AboveThreshold(threshold float64) CandidateList {
	var result CandidateList

	for _, cand := range c {
		if cand.Score >= threshold {
			result = append(result, cand)
		}
	}

	return result
}
