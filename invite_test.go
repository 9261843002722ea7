package clubfolio

import (
	"strings"
	"testing"
)

func TestNewInviteCode(t *testing.T) {
	seen := make(map[string]bool)
	for range 100 {
		code := NewInviteCode()
		if len(code) != 6 {
			t.Fatalf("len(%q) = %d, want 6", code, len(code))
		}
		for _, r := range code {
			if !strings.ContainsRune(inviteAlphabet, r) {
				t.Fatalf("code %q contains %q, not in the alphabet", code, r)
			}
		}
		seen[code] = true
	}
	// 100 draws from a 32^6 space colliding down to a handful would mean the
	// generator is broken
	if len(seen) < 95 {
		t.Errorf("only %d distinct codes out of 100", len(seen))
	}
}

func TestInviteAlphabetExcludesAmbiguousGlyphs(t *testing.T) {
	for _, r := range "01IO" {
		if strings.ContainsRune(inviteAlphabet, r) {
			t.Errorf("alphabet contains ambiguous glyph %q", r)
		}
	}
}
