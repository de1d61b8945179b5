package manuscript

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/russross/blackfriday/v2"
	"gopkg.in/yaml.v3"
)

// Load reads a manuscript from path. The format is chosen by extension:
// .json and .yaml/.yml are parsed as a full Manuscript document; a directory
// is treated as a folder of markdown chapter files (see LoadDir).
func Load(path string) (*Manuscript, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat manuscript path: %w", err)
	}
	if info.IsDir() {
		return LoadDir(path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manuscript file: %w", err)
	}

	var m Manuscript
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		if err := json.Unmarshal(data, &m); err != nil {
			return nil, fmt.Errorf("failed to parse manuscript JSON: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &m); err != nil {
			return nil, fmt.Errorf("failed to parse manuscript YAML: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported manuscript format: %s", filepath.Ext(path))
	}

	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// chapterFilePattern matches chapter markdown filenames like
// "01-beginning.md", "chapter-2.md", or "3_the_end.md".
var chapterFilePattern = regexp.MustCompile(`^(?:chapter[-_ ]?)?(\d+)[-_ ]*(.*)\.md$`)

// LoadDir builds a manuscript from a directory of markdown chapter files.
// Files must carry a leading chapter number in the filename; a book.yaml in
// the same directory supplies title/author metadata and optional settings.
func LoadDir(dir string) (*Manuscript, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read manuscript directory: %w", err)
	}

	var m Manuscript
	metaPath := filepath.Join(dir, "book.yaml")
	if data, err := os.ReadFile(metaPath); err == nil {
		if err := yaml.Unmarshal(data, &m); err != nil {
			return nil, fmt.Errorf("failed to parse book.yaml: %w", err)
		}
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		match := chapterFilePattern.FindStringSubmatch(strings.ToLower(entry.Name()))
		if match == nil {
			continue
		}
		num, err := strconv.Atoi(match[1])
		if err != nil || num <= 0 {
			continue
		}

		data, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("failed to read chapter file %s: %w", entry.Name(), err)
		}

		title, content := parseMarkdownChapter(data)
		if title == "" {
			title = titleFromFilename(match[2])
		}
		m.Chapters = append(m.Chapters, Chapter{
			Number:  num,
			Title:   title,
			Content: content,
		})
	}

	sort.Slice(m.Chapters, func(i, j int) bool {
		return m.Chapters[i].Number < m.Chapters[j].Number
	})

	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// parseMarkdownChapter walks the markdown AST and extracts the chapter title
// (first level-1 heading, if any) and the body as plain paragraphs separated
// by blank lines. Inline emphasis is dropped; the sanitizer handles any
// leftover markers.
func parseMarkdownChapter(data []byte) (title, content string) {
	md := blackfriday.New(blackfriday.WithExtensions(blackfriday.CommonExtensions))
	root := md.Parse(data)

	var paragraphs []string
	root.Walk(func(node *blackfriday.Node, entering bool) blackfriday.WalkStatus {
		if !entering {
			return blackfriday.GoToNext
		}
		switch node.Type {
		case blackfriday.Heading:
			text := collectText(node)
			if node.HeadingData.Level == 1 && title == "" {
				title = text
			} else if text != "" {
				paragraphs = append(paragraphs, text)
			}
			return blackfriday.SkipChildren
		case blackfriday.Paragraph:
			if text := collectText(node); text != "" {
				paragraphs = append(paragraphs, text)
			}
			return blackfriday.SkipChildren
		case blackfriday.HorizontalRule:
			// Thematic breaks become scene-break sentinel paragraphs.
			paragraphs = append(paragraphs, "* * *")
			return blackfriday.SkipChildren
		}
		return blackfriday.GoToNext
	})

	return title, strings.Join(paragraphs, "\n\n")
}

// collectText concatenates the literal text under a markdown node.
func collectText(node *blackfriday.Node) string {
	var sb strings.Builder
	node.Walk(func(n *blackfriday.Node, entering bool) blackfriday.WalkStatus {
		if entering && (n.Type == blackfriday.Text || n.Type == blackfriday.Code) {
			sb.Write(n.Literal)
		}
		return blackfriday.GoToNext
	})
	return strings.TrimSpace(sb.String())
}

// titleFromFilename turns a filename slug like "the_dark_wood" into
// "The Dark Wood".
func titleFromFilename(slug string) string {
	slug = strings.NewReplacer("-", " ", "_", " ").Replace(slug)
	words := strings.Fields(slug)
	for i, w := range words {
		r, size := utf8.DecodeRuneInString(w)
		words[i] = strings.ToUpper(string(r)) + w[size:]
	}
	return strings.Join(words, " ")
}
