package manuscript

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "book.json")
	content := `{
		"title": "A Test Book",
		"author": "Jane Writer",
		"chapters": [{"number": 1, "title": "One", "content": "Body."}]
	}`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	m, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if m.Title != "A Test Book" || m.Author != "Jane Writer" {
		t.Errorf("metadata = %q by %q", m.Title, m.Author)
	}
	if len(m.Chapters) != 1 || m.Chapters[0].Content != "Body." {
		t.Errorf("chapters = %+v", m.Chapters)
	}
}

func TestLoadRejectsUnknownExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "book.txt")
	if err := os.WriteFile(path, []byte("not a manuscript"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for .txt manuscript")
	}
}

func TestLoadDirOrdersChapters(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "book.yaml", "title: Dir Book\nauthor: A. Writer\n")
	writeFile(t, dir, "02-second.md", "# The Second\n\nSecond body.\n")
	writeFile(t, dir, "chapter-1.md", "First body.\n\n---\n\nAfter the break.\n")
	writeFile(t, dir, "10_the_end.md", "Last body.\n")
	writeFile(t, dir, "notes.txt", "ignored")

	m, err := LoadDir(dir)
	if err != nil {
		t.Fatalf("LoadDir() error = %v", err)
	}
	if m.Title != "Dir Book" {
		t.Errorf("title = %q", m.Title)
	}
	if len(m.Chapters) != 3 {
		t.Fatalf("chapters = %d, want 3", len(m.Chapters))
	}
	for i, want := range []int{1, 2, 10} {
		if m.Chapters[i].Number != want {
			t.Errorf("chapter[%d].Number = %d, want %d", i, m.Chapters[i].Number, want)
		}
	}
	if m.Chapters[1].Title != "The Second" {
		t.Errorf("heading title = %q", m.Chapters[1].Title)
	}
	if m.Chapters[2].Title != "The End" {
		t.Errorf("filename title = %q", m.Chapters[2].Title)
	}
}

func TestTitleFromFilenameMultiByte(t *testing.T) {
	cases := map[string]string{
		"the_dark_wood":   "The Dark Wood",
		"études-in-green": "Études In Green",
	}
	for in, want := range cases {
		if got := titleFromFilename(in); got != want {
			t.Errorf("titleFromFilename(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestLoadDirSceneBreakSentinel(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "book.yaml", "title: Breaks\nauthor: A. Writer\n")
	writeFile(t, dir, "1-breaks.md", "Before.\n\n---\n\nAfter.\n")

	m, err := LoadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	want := "Before.\n\n* * *\n\nAfter."
	if got := m.Chapters[0].Content; got != want {
		t.Errorf("content = %q, want %q", got, want)
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name string
		m    Manuscript
		ok   bool
	}{
		{"valid", Manuscript{Title: "T", Author: "A", Chapters: []Chapter{{Number: 1}}}, true},
		{"no title", Manuscript{Author: "A", Chapters: []Chapter{{Number: 1}}}, false},
		{"no author", Manuscript{Title: "T", Chapters: []Chapter{{Number: 1}}}, false},
		{"no chapters", Manuscript{Title: "T", Author: "A"}, false},
		{"bad number", Manuscript{Title: "T", Author: "A", Chapters: []Chapter{{Number: 0}}}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.m.Validate()
			if tc.ok && err != nil {
				t.Errorf("Validate() error = %v", err)
			}
			if !tc.ok && err == nil {
				t.Error("Validate() should fail")
			}
		})
	}
}
