// Package langdetect classifies whether an utterance is written in the
// configured source language. A statistical detector ranks candidate
// languages; when it cannot rank the text, a lexical fallback over common
// French function words decides instead. The fallback performs no external
// calls, so classification always produces a result.
package langdetect

import (
	"strings"

	"github.com/rs/zerolog/log"
)

// Result is the outcome of classifying one utterance. Confidence is a
// heuristic score in [0,1], not a calibrated probability.
type Result struct {
	Text       string
	IsFrench   bool
	Confidence float64
}

// Candidate is one ranked guess from the statistical detector.
type Candidate struct {
	Lang string // ISO 639-1, lower case
	Prob float64
}

// Detector ranks candidate languages for a piece of text, most likely first.
// An error or an empty candidate list sends classification down the lexical
// fallback.
type Detector interface {
	Candidates(text string) ([]Candidate, error)
}

type Classifier struct {
	target  string
	det     Detector
	lexicon map[string]struct{}
}

// NewClassifier builds a classifier for the given target source language
// code. det may be nil, in which case only the lexical fallback runs.
func NewClassifier(target string, det Detector) *Classifier {
	lex := make(map[string]struct{}, len(frenchIndicators))
	for _, w := range frenchIndicators {
		lex[w] = struct{}{}
	}
	return &Classifier{target: target, det: det, lexicon: lex}
}

// Common French function words: pronouns, articles, frequent verbs and
// greetings. Checked against lower-cased whitespace tokens.
var frenchIndicators = []string{
	"je", "tu", "il", "elle", "nous", "vous", "ils", "elles",
	"le", "la", "les", "un", "une", "des", "de", "du",
	"est", "sont", "suis", "es", "sommes", "etes",
	"bonjour", "merci", "oui", "non", "avec", "pour",
	"que", "qui", "quoi", "comment", "pourquoi", "ou",
}

// Detection is a classification result plus the most likely language code,
// for the one-shot detection endpoint.
type Detection struct {
	Result
	Language string
}

// Classify reports whether text is in the target language, with a confidence
// score. text must be non-empty; callers trim and reject empty input before
// dispatching here.
func (c *Classifier) Classify(text string) Result {
	return c.Detect(text).Result
}

// Detect classifies text and names the most likely language in a single
// detector pass, so the two fields never disagree. Language is "unknown"
// when neither the detector nor the fallback recognizes the text.
func (c *Classifier) Detect(text string) Detection {
	if c.det != nil {
		cands, err := c.det.Candidates(text)
		if err == nil && len(cands) > 0 {
			for _, cand := range cands {
				if cand.Lang == c.target {
					return Detection{
						Result:   Result{Text: text, IsFrench: true, Confidence: cand.Prob},
						Language: cands[0].Lang,
					}
				}
			}
			return Detection{
				Result:   Result{Text: text, IsFrench: false, Confidence: 0},
				Language: cands[0].Lang,
			}
		}
		if err != nil {
			log.Warn().Err(err).Msg("language detection failed, using lexical fallback")
		}
	}
	res := c.fallback(text)
	lang := "unknown"
	if res.IsFrench {
		lang = c.target
	}
	return Detection{Result: res, Language: lang}
}

func (c *Classifier) fallback(text string) Result {
	words := strings.Fields(strings.ToLower(text))
	count := 0
	for _, w := range words {
		if _, ok := c.lexicon[w]; ok {
			count++
		}
	}
	denom := len(words)
	if denom < 1 {
		denom = 1
	}
	conf := float64(count) / float64(denom)
	return Result{Text: text, IsFrench: conf > 0.3, Confidence: conf}
}
