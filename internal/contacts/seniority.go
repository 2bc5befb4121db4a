package contacts

import "strings"

// seniorityWeights orders titles by assumed purchasing authority. Matching
// is substring-based and the first hit wins, so more specific terms must
// precede terms they contain: "vice president" before "president",
// "managing partner" before "partner".
var seniorityWeights = []struct {
	term   string
	weight int
}{
	{"chief executive officer", 100},
	{"ceo", 100},
	{"founder", 95},
	{"owner", 95},
	{"vice president", 75},
	{"vp", 75},
	{"president", 90},
	{"chief", 85},
	{"coo", 85},
	{"cto", 85},
	{"cfo", 85},
	{"cmo", 85},
	{"chro", 85},
	{"cio", 85},
	{"head of", 70},
	{"managing partner", 65},
	{"principal", 60},
	{"director", 60},
	{"partner", 55},
	{"lead", 50},
	{"manager", 40},
}

// TitleSeniority returns the seniority weight for a job title. Unrecognized
// titles weigh zero and sort last.
func TitleSeniority(title string) int {
	lower := strings.ToLower(title)
	for _, w := range seniorityWeights {
		if strings.Contains(lower, w.term) {
			return w.weight
		}
	}
	return 0
}
