// ABOUTME: Tests for text folding and phrase containment
// ABOUTME: Covers case, NFC composition, and non-Latin scripts

package textnorm

import "testing"

func TestFold(t *testing.T) {
	t.Parallel()

	tests := []struct{ in, want string }{
		{"", ""},
		{"BUILD", "build"},
		{"Straße", "straße"},
		{"ÑANDÚ", "ñandú"},
		{"빌드", "빌드"},
		{"ビルド", "ビルド"},
		{"é", "é"},
	}
	for _, tt := range tests {
		if got := Fold(tt.in); got != tt.want {
			t.Errorf("Fold(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestContainsAny(t *testing.T) {
	t.Parallel()

	if p, ok := ContainsAny("docker ps -a", []string{"", "rm", "ps"}); !ok || p != "ps" {
		t.Errorf("ContainsAny = %q, %v; want ps, true", p, ok)
	}
	if _, ok := ContainsAny("ls", nil); ok {
		t.Error("ContainsAny with no phrases should not match")
	}
}
