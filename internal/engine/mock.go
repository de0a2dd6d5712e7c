package engine

import (
	"context"
	"strings"
	"time"
)

// Mock is a deterministic word-substitution engine for running without model
// access. Table entries are keyed lower case; tokens without an entry pass
// through bracket-wrapped so missing vocabulary stays visible in the output.
type Mock struct {
	Delay time.Duration // pause between streamed tokens
}

var mockTable = map[string]string{
	"bonjour":     "hello",
	"comment":     "how",
	"allez":       "are",
	"vous":        "you",
	"je":          "I",
	"suis":        "am",
	"merci":       "thank you",
	"oui":         "yes",
	"non":         "no",
	"bien":        "well",
	"tres":        "very",
	"aujourd'hui": "today",
}

func (m *Mock) Name() string { return "mock" }

func (m *Mock) Translate(ctx context.Context, text string) (string, error) {
	words := strings.Fields(strings.ToLower(text))
	out := make([]string, 0, len(words))
	for _, w := range words {
		clean := strings.Trim(w, ".,!?")
		if t, ok := mockTable[clean]; ok {
			out = append(out, t)
		} else {
			out = append(out, "["+w+"]")
		}
	}
	return strings.Join(out, " "), nil
}

func (m *Mock) TranslateStream(ctx context.Context, text string, onToken func(string) error) error {
	full, err := m.Translate(ctx, text)
	if err != nil {
		return err
	}
	for _, w := range strings.Fields(full) {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := onToken(w + " "); err != nil {
			return err
		}
		if m.Delay > 0 {
			select {
			case <-time.After(m.Delay):
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	}
	return nil
}
