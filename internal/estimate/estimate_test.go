package estimate

import (
	"strings"
	"testing"

	"github.com/jackzampolin/bookpress/internal/settings"
)

func TestCharsPerPage(t *testing.T) {
	s := settings.Resolve(nil)
	cpp := CharsPerPage(s)
	// A 5.5x8.5 trade paperback at 11pt should land in the low thousands.
	if cpp < 500 || cpp > 10000 {
		t.Errorf("chars per page = %d, outside plausible range", cpp)
	}
}

func TestChapterPages(t *testing.T) {
	t.Run("empty content still fills one page", func(t *testing.T) {
		if got := ChapterPages("", 2000); got != 1 {
			t.Errorf("got %d, want 1", got)
		}
	})
	t.Run("long content spans multiple pages", func(t *testing.T) {
		content := strings.Repeat("a", 5000)
		if got := ChapterPages(content, 2000); got < 3 {
			t.Errorf("got %d, want at least 3", got)
		}
	})
	t.Run("zero chars per page does not panic", func(t *testing.T) {
		if got := ChapterPages("hello", 0); got < 1 {
			t.Errorf("got %d", got)
		}
	})
}

func TestChapterPageNumbers(t *testing.T) {
	s := settings.Resolve(nil)
	contents := []string{
		strings.Repeat("x", 6000),
		strings.Repeat("y", 100),
		strings.Repeat("z", 12000),
		"",
	}
	nums := ChapterPageNumbers(contents, s)

	if len(nums) != len(contents) {
		t.Fatalf("got %d entries, want %d", len(nums), len(contents))
	}
	if nums[0] != 1 {
		t.Errorf("first chapter starts at %d, want 1", nums[0])
	}
	for i := 1; i < len(nums); i++ {
		if nums[i] < nums[i-1] {
			t.Errorf("page numbers not monotonic at %d: %v", i, nums)
		}
		if nums[i] == nums[i-1] {
			t.Errorf("chapter %d starts on same page as previous: %v", i, nums)
		}
	}
}

func TestBibliographyStartPage(t *testing.T) {
	s := settings.Resolve(nil)
	contents := []string{strings.Repeat("x", 3000)}
	biblio := BibliographyStartPage(contents, s)
	nums := ChapterPageNumbers(contents, s)
	if biblio <= nums[len(nums)-1] {
		t.Errorf("bibliography page %d should follow final chapter start %d", biblio, nums[0])
	}
}
