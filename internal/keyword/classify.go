package keyword

import (
	"regexp"
	"strings"

	"github.com/sells-group/prospect-cli/internal/model"
)

// dimensionPattern matches literal size specs like "10 x 20" or "10x20cm".
var dimensionPattern = regexp.MustCompile(`\b\d+(?:\.\d+)?\s*[x×]\s*\d+(?:\.\d+)?\s*(?:cm|mm|m|in|inches|ft)?\b`)

// measurePattern matches weight/volume specs like "5kg" or "2.5 lbs".
var measurePattern = regexp.MustCompile(`\b\d+(?:\.\d+)?\s*(?:kg|g|lb|lbs|oz|ml|l|liter|litre|gallon|gal|ton|tons)\b`)

// Classify labels the product physical or digital by summing weighted
// indicator hits. Dimension/weight/volume patterns add +3 each to the
// physical side. A tie classifies digital: physical wins only on a strictly
// higher score.
func (e *Extractor) Classify(name, description string) model.Classification {
	text := strings.ToLower(name + " " + description)
	tokens := tokenize(text)

	var physical, digital int
	for _, tok := range tokens {
		if w, ok := e.lex.PhysicalIndicators[tok]; ok {
			physical += w
		}
		if w, ok := e.lex.DigitalIndicators[tok]; ok {
			digital += w
		}
	}

	physical += 3 * len(dimensionPattern.FindAllString(text, -1))
	physical += 3 * len(measurePattern.FindAllString(text, -1))

	if physical > digital {
		return model.ClassificationPhysical
	}
	return model.ClassificationDigital
}
