package langdetect

import (
	"errors"
	"math"
	"testing"
)

type failingDetector struct{}

func (failingDetector) Candidates(string) ([]Candidate, error) {
	return nil, errors.New("detector offline")
}

type fixedDetector struct {
	cands []Candidate
}

func (d fixedDetector) Candidates(string) ([]Candidate, error) {
	return d.cands, nil
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 0.001
}

func TestClassify_DetectorRanksFrench(t *testing.T) {
	c := NewClassifier("fr", fixedDetector{cands: []Candidate{
		{Lang: "fr", Prob: 0.92},
		{Lang: "en", Prob: 0.08},
	}})
	res := c.Classify("Bonjour tout le monde")
	if !res.IsFrench {
		t.Error("expected IsFrench=true when detector ranks fr")
	}
	if !almostEqual(res.Confidence, 0.92) {
		t.Errorf("confidence = %v, want 0.92", res.Confidence)
	}
}

func TestClassify_DetectorRanksOnlyOtherLanguages(t *testing.T) {
	c := NewClassifier("fr", fixedDetector{cands: []Candidate{
		{Lang: "en", Prob: 0.8},
		{Lang: "de", Prob: 0.2},
	}})
	res := c.Classify("hello there everyone")
	if res.IsFrench {
		t.Error("expected IsFrench=false when fr is not a candidate")
	}
	if res.Confidence != 0 {
		t.Errorf("confidence = %v, want 0", res.Confidence)
	}
}

func TestClassify_FallbackCountsFunctionWords(t *testing.T) {
	c := NewClassifier("fr", failingDetector{})
	res := c.Classify("Je suis content")
	if !res.IsFrench {
		t.Error("expected IsFrench=true")
	}
	if !almostEqual(res.Confidence, 2.0/3.0) {
		t.Errorf("confidence = %v, want 2/3", res.Confidence)
	}
	if res.Text != "Je suis content" {
		t.Errorf("text = %q, want input echoed", res.Text)
	}
}

func TestClassify_FallbackAllLexiconTokens(t *testing.T) {
	c := NewClassifier("fr", failingDetector{})
	res := c.Classify("je suis le la les bonjour merci")
	if !res.IsFrench {
		t.Error("expected IsFrench=true for pure lexicon input")
	}
	if !almostEqual(res.Confidence, 1.0) {
		t.Errorf("confidence = %v, want 1.0", res.Confidence)
	}
}

func TestClassify_FallbackSingleWord(t *testing.T) {
	c := NewClassifier("fr", failingDetector{})
	if res := c.Classify("bonjour"); !res.IsFrench || !almostEqual(res.Confidence, 1.0) {
		t.Errorf("bonjour: got (%v, %v), want (true, 1.0)", res.IsFrench, res.Confidence)
	}
	if res := c.Classify("xyzzy"); res.IsFrench || res.Confidence != 0 {
		t.Errorf("xyzzy: got (%v, %v), want (false, 0)", res.IsFrench, res.Confidence)
	}
}

func TestClassify_FallbackPunctuationOnly(t *testing.T) {
	c := NewClassifier("fr", failingDetector{})
	res := c.Classify("?!? ...")
	if res.IsFrench || res.Confidence != 0 {
		t.Errorf("punctuation only: got (%v, %v), want (false, 0)", res.IsFrench, res.Confidence)
	}
}

func TestClassify_FallbackThresholdIsStrict(t *testing.T) {
	c := NewClassifier("fr", failingDetector{})
	// 1/3 > 0.3 so a single hit among three tokens still counts as French.
	res := c.Classify("le qqq www")
	if !res.IsFrench {
		t.Errorf("1/3 confidence should exceed the 0.3 threshold, got %v", res.Confidence)
	}
	// 1/4 < 0.3 does not.
	res = c.Classify("le qqq www zzz")
	if res.IsFrench {
		t.Errorf("1/4 confidence should not exceed the 0.3 threshold, got %v", res.Confidence)
	}
}

func TestClassify_FallbackMixedCase(t *testing.T) {
	c := NewClassifier("fr", failingDetector{})
	res := c.Classify("BONJOUR Merci")
	if !res.IsFrench || !almostEqual(res.Confidence, 1.0) {
		t.Errorf("mixed case: got (%v, %v), want (true, 1.0)", res.IsFrench, res.Confidence)
	}
}

func TestClassify_FallbackDeterministic(t *testing.T) {
	c := NewClassifier("fr", failingDetector{})
	first := c.Classify("Je suis content")
	for i := 0; i < 5; i++ {
		if got := c.Classify("Je suis content"); got != first {
			t.Fatalf("fallback not deterministic: %+v != %+v", got, first)
		}
	}
}

func TestClassify_ConfidenceAlwaysInBounds(t *testing.T) {
	c := NewClassifier("fr", failingDetector{})
	inputs := []string{
		"bonjour", "a", "je je je je", "the quick brown fox",
		"?!?", "mixed je words here", "je suis tu il elle nous",
	}
	for _, in := range inputs {
		res := c.Classify(in)
		if res.Confidence < 0 || res.Confidence > 1 {
			t.Errorf("Classify(%q) confidence %v out of [0,1]", in, res.Confidence)
		}
	}
}

func TestClassify_EmptyCandidateListFallsBack(t *testing.T) {
	c := NewClassifier("fr", fixedDetector{cands: nil})
	res := c.Classify("Je suis content")
	if !res.IsFrench || !almostEqual(res.Confidence, 2.0/3.0) {
		t.Errorf("empty candidates should fall back: got (%v, %v)", res.IsFrench, res.Confidence)
	}
}

func TestClassify_NilDetectorUsesFallback(t *testing.T) {
	c := NewClassifier("fr", nil)
	res := c.Classify("Je suis content")
	if !res.IsFrench {
		t.Error("nil detector should still classify via fallback")
	}
}

func TestDetect_FallbackFrench(t *testing.T) {
	c := NewClassifier("fr", failingDetector{})
	if got := c.Detect("Je suis content").Language; got != "fr" {
		t.Errorf("Language = %q, want fr", got)
	}
}

func TestDetect_FallbackUnknown(t *testing.T) {
	c := NewClassifier("fr", failingDetector{})
	if got := c.Detect("completely unrelated words").Language; got != "unknown" {
		t.Errorf("Language = %q, want unknown", got)
	}
}

func TestDetect_TopCandidateWins(t *testing.T) {
	c := NewClassifier("fr", fixedDetector{cands: []Candidate{
		{Lang: "en", Prob: 0.9},
		{Lang: "fr", Prob: 0.6},
	}})
	det := c.Detect("hello world")
	if det.Language != "en" {
		t.Errorf("Language = %q, want en", det.Language)
	}
	if !det.IsFrench || !almostEqual(det.Confidence, 0.6) {
		t.Errorf("classification = (%v, %v), want fr candidate used", det.IsFrench, det.Confidence)
	}
}

type countingDetector struct {
	calls int
	cands []Candidate
}

func (d *countingDetector) Candidates(string) ([]Candidate, error) {
	d.calls++
	return d.cands, nil
}

func TestDetect_SingleDetectorPass(t *testing.T) {
	d := &countingDetector{cands: []Candidate{{Lang: "en", Prob: 0.9}}}
	c := NewClassifier("fr", d)
	det := c.Detect("hello world")
	if d.calls != 1 {
		t.Errorf("detector ran %d times for one Detect, want 1", d.calls)
	}
	if det.IsFrench || det.Language != "en" {
		t.Errorf("detection = %+v, want consistent non-French result", det)
	}
}

func TestLinguaDetector_RanksFrenchSentence(t *testing.T) {
	c := NewClassifier("fr", NewLinguaDetector())
	res := c.Classify("Bonjour, je suis très content d'être ici aujourd'hui")
	if !res.IsFrench {
		t.Errorf("expected lingua to rank an unambiguous French sentence as French, got %+v", res)
	}
	if res.Confidence <= 0 || res.Confidence > 1 {
		t.Errorf("confidence %v out of (0,1]", res.Confidence)
	}
}

func TestLinguaDetector_EnglishTextNotFrench(t *testing.T) {
	c := NewClassifier("fr", NewLinguaDetector())
	for _, text := range []string{
		"Hello how are you doing today my friend",
		"The quick brown fox jumps over the lazy dog",
	} {
		res := c.Classify(text)
		if res.IsFrench {
			t.Errorf("Classify(%q) = %+v, want IsFrench=false for English text", text, res)
		}
		if res.Confidence != 0 {
			t.Errorf("Classify(%q) confidence = %v, want 0 when fr is not a candidate", text, res.Confidence)
		}
	}
}

func TestLinguaDetector_OnlyPlausibleCandidates(t *testing.T) {
	d := NewLinguaDetector()
	cands, err := d.Candidates("The quick brown fox jumps over the lazy dog")
	if err != nil {
		t.Fatalf("Candidates failed: %v", err)
	}
	if len(cands) == 0 {
		t.Fatal("expected at least the top-ranked language")
	}
	for _, cand := range cands {
		if cand.Lang == "fr" {
			t.Errorf("fr ranked as a candidate for English text: %+v", cands)
		}
	}
}
