// Package vocab holds the curse-word vocabulary and the predicate that
// decides whether a comment is "cursed".
package vocab

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"sync"
)

// words is the fixed, case-sensitive curse-word list.
var words = []string{
	"motherfucking",
	"motherfucker",
	"fucking",
	"fucked",
	"fucker",
	"fuck",
	"crappy",
	"crap",
	"dumbass",
	"ass",
	"shit",
	"bullshit",
}

// nonWord matches one character that is not a Unicode word character.
// RE2's \b only knows ASCII word characters, so "crapé" would match.
const nonWord = `[^\p{L}\p{M}\p{N}\p{Pc}]`

// Matcher reports whether a text contains at least one listed word as a
// whole word. A Matcher is immutable and safe for concurrent use.
type Matcher struct {
	words []string
	re    *regexp.Regexp
}

// New compiles a Matcher for the given words. Words are matched
// case-sensitively on word boundaries; longer entries are tried first.
func New(list []string) (*Matcher, error) {
	if len(list) == 0 {
		return nil, fmt.Errorf("vocabulary is empty")
	}
	sorted := make([]string, 0, len(list))
	for _, w := range list {
		if strings.TrimSpace(w) == "" {
			return nil, fmt.Errorf("vocabulary contains an empty word")
		}
		sorted = append(sorted, w)
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		return len(sorted[i]) > len(sorted[j])
	})

	quoted := make([]string, len(sorted))
	for i, w := range sorted {
		quoted[i] = regexp.QuoteMeta(w)
	}
	re, err := regexp.Compile(`(?:^|` + nonWord + `)(?:` + strings.Join(quoted, "|") + `)(?:$|` + nonWord + `)`)
	if err != nil {
		return nil, fmt.Errorf("compiling vocabulary: %w", err)
	}

	own := make([]string, len(list))
	copy(own, list)
	return &Matcher{words: own, re: re}, nil
}

var (
	defaultOnce    sync.Once
	defaultMatcher *Matcher
)

// Default returns the Matcher for the built-in vocabulary. It is built
// once per process.
func Default() *Matcher {
	defaultOnce.Do(func() {
		m, err := New(words)
		if err != nil {
			panic(err)
		}
		defaultMatcher = m
	})
	return defaultMatcher
}

// Matches reports whether text contains any vocabulary word. Presence
// only: a text with several curse words still matches once.
func (m *Matcher) Matches(text string) bool {
	return m.re.MatchString(text)
}

// Words returns a copy of the vocabulary in its declared order.
func (m *Matcher) Words() []string {
	out := make([]string, len(m.words))
	copy(out, m.words)
	return out
}
