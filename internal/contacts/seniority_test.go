package contacts

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTitleSeniority(t *testing.T) {
	tests := []struct {
		title string
		want  int
	}{
		{"CEO", 100},
		{"Chief Executive Officer", 100},
		{"CEO & Founder", 100},
		{"Founder", 95},
		{"President", 90},
		{"COO", 85},
		{"Chief Revenue Officer", 85},
		{"VP of Operations", 75},
		{"Vice President, Procurement", 75},
		{"Head of Procurement", 70},
		{"Managing Partner", 65},
		{"Director of Purchasing", 60},
		{"Engineering Lead", 50},
		{"Purchasing Manager", 40},
		{"Software Engineer", 0},
		{"", 0},
	}

	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			assert.Equal(t, tt.want, TitleSeniority(tt.title))
		})
	}
}

// Partial matching picks the heaviest matching term, not the first.
func TestTitleSeniority_BestMatchWins(t *testing.T) {
	assert.Equal(t, 100, TitleSeniority("Manager and CEO"))
	assert.Equal(t, 95, TitleSeniority("Owner / Director"))
}
