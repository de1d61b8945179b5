package numbering

import "testing"

func TestToRoman(t *testing.T) {
	cases := map[int]string{
		1:    "I",
		4:    "IV",
		9:    "IX",
		14:   "XIV",
		40:   "XL",
		90:   "XC",
		444:  "CDXLIV",
		1994: "MCMXCIV",
		3999: "MMMCMXCIX",
	}
	for n, want := range cases {
		if got := ToRoman(n); got != want {
			t.Errorf("ToRoman(%d) = %q, want %q", n, got, want)
		}
	}
}

func TestToRomanOutOfRange(t *testing.T) {
	if got := ToRoman(0); got != "0" {
		t.Errorf("ToRoman(0) = %q, want %q", got, "0")
	}
	if got := ToRoman(4000); got != "4000" {
		t.Errorf("ToRoman(4000) = %q, want %q", got, "4000")
	}
}

func TestRomanRoundTrip(t *testing.T) {
	for n := 1; n <= 3999; n++ {
		if got := FromRoman(ToRoman(n)); got != n {
			t.Fatalf("FromRoman(ToRoman(%d)) = %d", n, got)
		}
	}
}

func TestFromRomanInvalid(t *testing.T) {
	for _, s := range []string{"", "ABC", "I I"} {
		if got := FromRoman(s); got != 0 {
			t.Errorf("FromRoman(%q) = %d, want 0", s, got)
		}
	}
}

func TestFormatChapterNumber(t *testing.T) {
	t.Run("word style", func(t *testing.T) {
		if got := FormatChapterNumber(3, StyleWord); got != "Three" {
			t.Errorf("got %q, want Three", got)
		}
		if got := FormatChapterNumber(21, StyleWord); got != "Twenty-One" {
			t.Errorf("got %q, want Twenty-One", got)
		}
	})

	t.Run("ordinal style", func(t *testing.T) {
		if got := FormatChapterNumber(2, StyleOrdinal); got != "Second" {
			t.Errorf("got %q, want Second", got)
		}
	})

	t.Run("falls back to numeral beyond table range", func(t *testing.T) {
		if got := FormatChapterNumber(31, StyleWord); got != "31" {
			t.Errorf("word 31 = %q, want 31", got)
		}
		if got := FormatChapterNumber(21, StyleOrdinal); got != "21" {
			t.Errorf("ordinal 21 = %q, want 21", got)
		}
	})

	t.Run("numeric and unknown styles", func(t *testing.T) {
		if got := FormatChapterNumber(7, StyleNumeric); got != "7" {
			t.Errorf("got %q, want 7", got)
		}
		if got := FormatChapterNumber(7, Style("bogus")); got != "7" {
			t.Errorf("got %q, want 7", got)
		}
	})
}

func TestSceneBreakSymbol(t *testing.T) {
	if got := SceneBreakSymbol(SceneBreakAsterisks, ""); got != "* * *" {
		t.Errorf("asterisks = %q", got)
	}
	if got := SceneBreakSymbol(SceneBreakCustom, "~ ~ ~"); got != "~ ~ ~" {
		t.Errorf("custom = %q", got)
	}
	if got := SceneBreakSymbol(SceneBreakCustom, ""); got != "* * *" {
		t.Errorf("empty custom = %q", got)
	}
	if got := SceneBreakSymbol(SceneBreakStyle("bogus"), ""); got != "* * *" {
		t.Errorf("unknown = %q", got)
	}
	if got := SceneBreakSymbol(SceneBreakBlank, ""); got != "" {
		t.Errorf("blank = %q", got)
	}
}

func TestOrnamentSymbol(t *testing.T) {
	if got := OrnamentSymbol(OrnamentAsterism); got != "⁂" {
		t.Errorf("asterism = %q", got)
	}
	if got := OrnamentSymbol(OrnamentNone); got != "" {
		t.Errorf("none = %q", got)
	}
	if got := OrnamentSymbol(OrnamentStyle("bogus")); got != "" {
		t.Errorf("unknown = %q", got)
	}
}
