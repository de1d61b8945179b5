// Package numbering converts chapter numbers between display styles and
// resolves scene-break and chapter-ornament symbols from settings enums.
package numbering

import (
	"strconv"
	"strings"
)

// Style selects how a chapter number is displayed.
type Style string

const (
	StyleNumeric Style = "numeric"
	StyleRoman   Style = "roman"
	StyleWord    Style = "word"
	StyleOrdinal Style = "ordinal"
)

// romanValues are the 13 value/symbol pairs for subtractive notation,
// largest first.
var romanValues = []struct {
	value  int
	symbol string
}{
	{1000, "M"}, {900, "CM"}, {500, "D"}, {400, "CD"},
	{100, "C"}, {90, "XC"}, {50, "L"}, {40, "XL"},
	{10, "X"}, {9, "IX"}, {5, "V"}, {4, "IV"}, {1, "I"},
}

var numberWords = []string{
	"One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine", "Ten",
	"Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen", "Sixteen", "Seventeen",
	"Eighteen", "Nineteen", "Twenty", "Twenty-One", "Twenty-Two", "Twenty-Three",
	"Twenty-Four", "Twenty-Five", "Twenty-Six", "Twenty-Seven", "Twenty-Eight",
	"Twenty-Nine", "Thirty",
}

var ordinalWords = []string{
	"First", "Second", "Third", "Fourth", "Fifth", "Sixth", "Seventh", "Eighth",
	"Ninth", "Tenth", "Eleventh", "Twelfth", "Thirteenth", "Fourteenth",
	"Fifteenth", "Sixteenth", "Seventeenth", "Eighteenth", "Nineteenth",
	"Twentieth",
}

// FormatChapterNumber renders n in the given style. Word covers 1-30 and
// ordinal 1-20; beyond those ranges (and for roman outside 1-3999) the plain
// numeral string is returned. That fallback is the documented boundary
// behavior, not an error.
func FormatChapterNumber(n int, style Style) string {
	switch style {
	case StyleRoman:
		return ToRoman(n)
	case StyleWord:
		if n >= 1 && n <= len(numberWords) {
			return numberWords[n-1]
		}
		return strconv.Itoa(n)
	case StyleOrdinal:
		if n >= 1 && n <= len(ordinalWords) {
			return ordinalWords[n-1]
		}
		return strconv.Itoa(n)
	default:
		return strconv.Itoa(n)
	}
}

// ToRoman converts n to an uppercase roman numeral using standard
// subtractive notation. Values outside 1-3999 fall back to the numeral
// string.
func ToRoman(n int) string {
	if n < 1 || n > 3999 {
		return strconv.Itoa(n)
	}
	var sb strings.Builder
	for _, rv := range romanValues {
		for n >= rv.value {
			sb.WriteString(rv.symbol)
			n -= rv.value
		}
	}
	return sb.String()
}

// FromRoman parses an uppercase or lowercase roman numeral. Returns 0 for
// an empty or non-roman string.
func FromRoman(s string) int {
	s = strings.ToUpper(strings.TrimSpace(s))
	if s == "" {
		return 0
	}
	total := 0
	for i := 0; i < len(s); {
		matched := false
		for _, rv := range romanValues {
			if strings.HasPrefix(s[i:], rv.symbol) {
				total += rv.value
				i += len(rv.symbol)
				matched = true
				break
			}
		}
		if !matched {
			return 0
		}
	}
	return total
}

// SceneBreakStyle selects the typographic marker used between scenes.
type SceneBreakStyle string

const (
	SceneBreakAsterisks  SceneBreakStyle = "asterisks"
	SceneBreakLine       SceneBreakStyle = "line"
	SceneBreakOrnamental SceneBreakStyle = "ornamental"
	SceneBreakDots       SceneBreakStyle = "dots"
	SceneBreakBlank      SceneBreakStyle = "blank"
	SceneBreakCustom     SceneBreakStyle = "custom"
)

// SceneBreakSymbol resolves the display string for a scene break. Custom
// style uses the supplied symbol when non-empty; unrecognized styles fall
// back to the asterisk marker.
func SceneBreakSymbol(style SceneBreakStyle, customSymbol string) string {
	switch style {
	case SceneBreakAsterisks:
		return "* * *"
	case SceneBreakLine:
		return "⸻"
	case SceneBreakOrnamental:
		return "❦"
	case SceneBreakDots:
		return "• • •"
	case SceneBreakBlank:
		return ""
	case SceneBreakCustom:
		if customSymbol != "" {
			return customSymbol
		}
		return "* * *"
	default:
		return "* * *"
	}
}

// OrnamentStyle selects the decorative symbol used around chapter headings.
type OrnamentStyle string

const (
	OrnamentNone       OrnamentStyle = "none"
	OrnamentFleuron    OrnamentStyle = "fleuron"
	OrnamentFlourish   OrnamentStyle = "flourish"
	OrnamentStar       OrnamentStyle = "star"
	OrnamentDiamond    OrnamentStyle = "diamond"
	OrnamentAsterism   OrnamentStyle = "asterism"
	OrnamentRule       OrnamentStyle = "rule"
	OrnamentDotsStyle  OrnamentStyle = "dots"
	OrnamentCelticKnot OrnamentStyle = "celtic"
)

// OrnamentSymbol resolves the display string for a chapter ornament.
// Unrecognized styles render no ornament.
func OrnamentSymbol(style OrnamentStyle) string {
	switch style {
	case OrnamentFleuron:
		return "❧"
	case OrnamentFlourish:
		return "❦"
	case OrnamentStar:
		return "✶"
	case OrnamentDiamond:
		return "◆"
	case OrnamentAsterism:
		return "⁂"
	case OrnamentRule:
		return "⸻"
	case OrnamentDotsStyle:
		return "• • •"
	case OrnamentCelticKnot:
		return "✦"
	default:
		return ""
	}
}
