package lexicon

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"I hear you.", "i hear you"},
		{"  Well,   okay!  ", "well okay"},
		{"Fair enough?", "fair enough?"},
		{"don't worry", "don't worry"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := Normalize(tt.in); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestContainsAny(t *testing.T) {
	phrases := []string{"i hear you", "fair enough?"}

	if !ContainsAny("Well, I hear you loud and clear.", phrases) {
		t.Error("phrase across punctuation should match")
	}
	if !ContainsAny("Fair enough? Good.", phrases) {
		t.Error("question-mark phrase should match")
	}
	if ContainsAny("I heard something.", phrases) {
		t.Error("partial words must not match")
	}
}

func TestCountHits(t *testing.T) {
	fillers := Default().Fillers

	tests := []struct {
		text string
		want int
	}{
		{"Um, you know, it's like a good deal.", 3},
		{"I like it. We liked it.", 1}, // "liked" is not "like"
		{"The umpire called it.", 0},   // "um" must be a whole word
		{"", 0},
	}

	for _, tt := range tests {
		if got := CountHits(tt.text, fillers); got != tt.want {
			t.Errorf("CountHits(%q) = %d, want %d", tt.text, got, tt.want)
		}
	}
}

func TestObjectionPatternOrder(t *testing.T) {
	labels := make([]string, 0, 6)
	for _, op := range Default().Objections {
		labels = append(labels, string(op.Label))
	}

	want := []string{"price", "timing", "spouse", "trust", "competitor", "not_interested"}
	for i, label := range want {
		if labels[i] != label {
			t.Fatalf("objection order = %v, want %v", labels, want)
		}
	}
}

func TestLoad_NoConfigPath(t *testing.T) {
	t.Setenv("LEXICON_CONFIG_PATH", "")

	lex, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(lex.Fillers) == 0 || len(lex.Objections) != 6 {
		t.Errorf("expected built-in tables, got %d fillers %d objections", len(lex.Fillers), len(lex.Objections))
	}
}

func TestLoad_AppliesOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lexicon.yaml")
	body := "fillers:\n  - erm\nconfirm:\n  - did i cover that\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("LEXICON_CONFIG_PATH", path)

	lex, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(lex.Fillers) != 1 || lex.Fillers[0] != "erm" {
		t.Errorf("fillers = %v, want [erm]", lex.Fillers)
	}
	if len(lex.Confirm) != 1 || lex.Confirm[0] != "did i cover that" {
		t.Errorf("confirm = %v", lex.Confirm)
	}
	// Lists absent from the file keep their defaults.
	if len(lex.Ack) == 0 || len(lex.Apologies) == 0 {
		t.Error("unset lists must keep defaults")
	}
}

func TestLoad_BadFileFails(t *testing.T) {
	t.Setenv("LEXICON_CONFIG_PATH", filepath.Join(t.TempDir(), "missing.yaml"))
	if _, err := Load(); err == nil {
		t.Error("expected an error for a missing config file")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("fillers: {nope"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("LEXICON_CONFIG_PATH", path)
	if _, err := Load(); err == nil {
		t.Error("expected an error for unparseable YAML")
	}
}
