package vocab

import (
	"testing"
)

func TestMatches(t *testing.T) {
	m := Default()
	tests := []struct {
		name string
		text string
		want bool
	}{
		{"plain_word", " this is a fucking console log", true},
		{"multi_word_entry", " then it prints the motherfucking value", true},
		{"dumbass", " this is the dumbass declaration", true},
		{"word_at_start", "shit happens", true},
		{"word_at_end", "what a load of crap", true},
		{"punctuation_boundary", "crap! it broke", true},
		{"no_curse", " this is a test program", false},
		{"empty", "", false},
		{"substring_of_larger_token", "the class passes its assertion", false},
		{"prefix_of_larger_token", "scrappy little function", false},
		{"embedded_in_identifier", "shitty_helper is not listed", false},
		{"case_sensitive", "FUCK is shouted, not listed", false},
		{"several_words_still_one_match", "fuck this shit", true},
		{"glued_to_non_ascii_letter", "crapé", false},
		{"non_ascii_letter_before", "éfuck", false},
		{"glued_to_cjk", "日本shit", false},
		{"combining_mark_after", "crap\u0301 dish", false},
		{"non_ascii_punctuation_boundary", "«shit»", true},
		{"non_breaking_space_boundary", "total\u00a0crap\u00a0here", true},
		{"multiline_block", "\n * TODO: remove this crap\n ", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := m.Matches(tt.text); got != tt.want {
				t.Errorf("Matches(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestDefault_ReturnsSameInstance(t *testing.T) {
	if Default() != Default() {
		t.Error("Default() should build the matcher once")
	}
}

func TestWords_ReturnsCopy(t *testing.T) {
	m := Default()
	got := m.Words()
	if len(got) != len(words) {
		t.Fatalf("Words() len = %d, want %d", len(got), len(words))
	}
	got[0] = "mutated"
	if m.Words()[0] == "mutated" {
		t.Error("Words() must not expose the internal slice")
	}
}

func TestNew_RejectsEmptyVocabulary(t *testing.T) {
	if _, err := New(nil); err == nil {
		t.Error("expected error for empty vocabulary")
	}
	if _, err := New([]string{"ok", "  "}); err == nil {
		t.Error("expected error for blank word")
	}
}

func TestNew_QuotesMetacharacters(t *testing.T) {
	m, err := New([]string{"a.b"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if m.Matches("axb") {
		t.Error("regex metacharacters must be matched literally")
	}
	if !m.Matches("see a.b here") {
		t.Error("expected literal match")
	}
}

func TestNew_LongerEntryNotMaskedByShorter(t *testing.T) {
	m, err := New([]string{"ass", "dumbass"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if !m.Matches("you dumbass") {
		t.Error("expected dumbass to match even though ass is listed first")
	}
	if m.Matches("a dumbassery") {
		t.Error("expected no match inside a larger token")
	}
}
