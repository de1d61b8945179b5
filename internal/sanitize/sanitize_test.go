package sanitize

import (
	"strings"
	"testing"
)

func TestSanitizeArtifacts(t *testing.T) {
	t.Run("strips bracketed placeholders", func(t *testing.T) {
		in := "The door opened.\n\n[Insert vivid description here]\n\nShe stepped inside."
		got := Sanitize(in, "Arrival", 1)
		if strings.Contains(got, "[Insert") {
			t.Errorf("placeholder survived: %q", got)
		}
		if !strings.Contains(got, "The door opened.") || !strings.Contains(got, "She stepped inside.") {
			t.Errorf("prose lost: %q", got)
		}
	})

	t.Run("strips emphasis markers", func(t *testing.T) {
		got := Sanitize("It was **very** dark and ***cold*** and __quiet__.", "Night", 2)
		want := "It was very dark and cold and quiet."
		if got != want {
			t.Errorf("got %q, want %q", got, want)
		}
	})

	t.Run("strips html emphasis tags", func(t *testing.T) {
		got := Sanitize("He said <em>no</em> and <strong>meant it</strong>.", "Refusal", 3)
		want := "He said no and meant it."
		if got != want {
			t.Errorf("got %q, want %q", got, want)
		}
	})

	t.Run("collapses doubled dashes", func(t *testing.T) {
		got := Sanitize("She paused -- then spoke.", "Pause", 4)
		if !strings.Contains(got, "paused—then") {
			t.Errorf("dashes not collapsed: %q", got)
		}
	})

	t.Run("preserves scene break dash lines", func(t *testing.T) {
		got := Sanitize("Before.\n\n---\n\nAfter.", "Break", 5)
		if !strings.Contains(got, "---") {
			t.Errorf("scene break line lost: %q", got)
		}
	})

	t.Run("strips markdown headers", func(t *testing.T) {
		got := Sanitize("## A Section\n\nProse here.", "Sections", 6)
		if strings.Contains(got, "#") {
			t.Errorf("header marker survived: %q", got)
		}
	})

	t.Run("removes meta commentary lines", func(t *testing.T) {
		in := "The end drew near.\n\nTo be continued...\n\n[END]\n\nNote: expand this scene later."
		got := Sanitize(in, "Ending", 7)
		if got != "The end drew near." {
			t.Errorf("got %q", got)
		}
	})
}

func TestSanitizeTitleEchoes(t *testing.T) {
	cases := []struct {
		name string
		in   string
	}{
		{"colon form", "Chapter 3: The Dark Wood\n\nThe trees closed in."},
		{"dash form", "Chapter 3 - The Dark Wood\n\nThe trees closed in."},
		{"plain form", "Chapter 3 The Dark Wood\n\nThe trees closed in."},
		{"bare chapter label", "Chapter 3\n\nThe trees closed in."},
		{"bare title", "The Dark Wood\n\nThe trees closed in."},
		{"case insensitive", "CHAPTER 3: THE DARK WOOD\n\nThe trees closed in."},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Sanitize(tc.in, "The Dark Wood", 3)
			if got != "The trees closed in." {
				t.Errorf("got %q", got)
			}
		})
	}
}

func TestSanitizeTitleOnlyContent(t *testing.T) {
	if got := Sanitize("The Dark Wood", "The Dark Wood", 3); got != "" {
		t.Errorf("title-only content should reduce to empty, got %q", got)
	}
	if got := Sanitize("chapter 3", "The Dark Wood", 3); got != "" {
		t.Errorf("bare label should reduce to empty, got %q", got)
	}
	if got := Sanitize("", "The Dark Wood", 3); got != "" {
		t.Errorf("empty input should stay empty, got %q", got)
	}
}

func TestSanitizeNewlineCollapse(t *testing.T) {
	got := Sanitize("One.\n\n\n\n\nTwo.", "Gaps", 1)
	if got != "One.\n\nTwo." {
		t.Errorf("got %q", got)
	}
}

func TestSanitizeIdempotent(t *testing.T) {
	inputs := []string{
		"Chapter 1: Beginning\n\nOnce upon a time.\n\n* * *\n\nThe end.",
		"**Bold** start -- middle\n\n\n\nEnd.",
		"Beginning\nBeginning\n\nReal prose.",
		"[placeholder]\n\n## Header\n\nBody text with <em>markup</em>.",
		"",
		"Just plain prose with nothing to clean.",
	}
	for _, in := range inputs {
		once := Sanitize(in, "Beginning", 1)
		twice := Sanitize(once, "Beginning", 1)
		if once != twice {
			t.Errorf("not idempotent for %q:\n once=%q\ntwice=%q", in, once, twice)
		}
	}
}
