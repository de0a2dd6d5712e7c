package langdetect

import (
	"strings"

	"github.com/pemistahl/lingua-go"
)

// A language counts as a candidate reading of the text only when its score
// is at least this share of the top-ranked score. lingua assigns a nonzero
// confidence to nearly every configured language on any input, so without
// the cut-off "fr" would rank as a candidate even for plainly English text.
const plausibleShare = 0.5

// LinguaDetector ranks languages with the lingua statistical model. The
// candidate set is restricted to languages plausibly seen by this service;
// loading every supported model would slow startup for no accuracy gain on
// short utterances.
type LinguaDetector struct {
	det lingua.LanguageDetector
}

func NewLinguaDetector() *LinguaDetector {
	languages := []lingua.Language{
		lingua.French, lingua.English, lingua.Spanish, lingua.German,
		lingua.Italian, lingua.Portuguese, lingua.Dutch,
	}
	return &LinguaDetector{
		det: lingua.NewLanguageDetectorBuilder().
			FromLanguages(languages...).
			Build(),
	}
}

func (d *LinguaDetector) Candidates(text string) ([]Candidate, error) {
	values := d.det.ComputeLanguageConfidenceValues(text)
	if len(values) == 0 {
		return nil, nil
	}
	// values are sorted most confident first
	top := values[0].Value()
	out := make([]Candidate, 0, len(values))
	for _, v := range values {
		if v.Value() <= 0 || v.Value() < top*plausibleShare {
			continue
		}
		out = append(out, Candidate{
			Lang: strings.ToLower(v.Language().IsoCode639_1().String()),
			Prob: v.Value(),
		})
	}
	return out, nil
}
