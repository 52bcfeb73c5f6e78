package engine

import (
	"sort"
	"strings"
	"testing"
)

var testWords = []string{
	"CAT", "CATS", "DOG", "DOGS", "CATER", "RATE", "RATES", "ARE", "EAR", "TEA", "AT",
}

func TestIsValidWord(t *testing.T) {
	dict := BuildDictionary(testWords)
	for _, w := range testWords {
		if !dict.IsValidWord(w) {
			t.Errorf("expected %q to be valid", w)
		}
	}
	for _, w := range []string{"CATZ", "DO", "XYZ"} {
		if dict.IsValidWord(w) {
			t.Errorf("expected %q to be invalid", w)
		}
	}
	if dict.IsValidWord("cat") != true {
		t.Errorf("expected case-insensitive lookup to find CAT")
	}
}

func TestBuildDictionarySkipsShortAndInvalidWords(t *testing.T) {
	dict := BuildDictionary([]string{"A", "TO", "can't", "OK2"})
	if dict.IsValidWord("A") {
		t.Errorf("expected single-letter word to be rejected")
	}
	if !dict.IsValidWord("TO") {
		t.Errorf("expected TO to be accepted")
	}
	if dict.IsValidWord("CAN'T") || dict.IsValidWord("OK2") {
		t.Errorf("expected non-alphabetic words to be rejected")
	}
}

func TestWordsFromContainingAnchor(t *testing.T) {
	dict := BuildDictionary(testWords)
	words := dict.WordsFrom("CTA", 'A', true, true)
	sort.Strings(words)
	found := false
	for _, w := range words {
		if w == "CAT" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected CAT to be reachable from anchor 'A' with rack CTA, got %v", words)
	}
}

func TestWordsFromUsesBlankAsWildcard(t *testing.T) {
	dict := BuildDictionary(testWords)
	words := dict.WordsFrom("C?", 'A', true, true)
	found := false
	for _, w := range words {
		if w == "CAT" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a blank to stand in for the missing T, got %v", words)
	}
}

func TestWordsFromRespectsDirectionFlags(t *testing.T) {
	dict := BuildDictionary(testWords)
	// EAR's anchor at 'A' has one letter to its left (E) and one to
	// its right (R); disallowing the right side should drop it.
	words := dict.WordsFrom("ER", 'A', true, false)
	for _, w := range words {
		if w == "EAR" {
			t.Errorf("did not expect EAR when allow_right is false, got %v", words)
		}
	}
}

func TestWordsFromDoesNotDuplicateRackLetters(t *testing.T) {
	dict := BuildDictionary(testWords)
	// The rack holds no 'T'; CATS needs rack letters C, A, S (T is
	// the anchor) -- if consume/release corrupted the rack multiset,
	// this would either double count or miss the word.
	words := dict.WordsFrom("CAS", 'T', true, true)
	found := false
	for _, w := range words {
		if w == "CATS" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected CATS reachable from anchor 'T' with rack CAS, got %v", words)
	}
}

func TestLoadDictionaryFromReader(t *testing.T) {
	dict, err := LoadDictionary(strings.NewReader("CAT\nDOG\n\nfish\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !dict.IsValidWord("CAT") || !dict.IsValidWord("FISH") {
		t.Errorf("expected CAT and FISH to be loaded")
	}
}
