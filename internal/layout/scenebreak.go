package layout

import "strings"

// sceneBreakSentinels are the exact paragraph values recognized as scene
// breaks after trimming.
var sceneBreakSentinels = map[string]bool{
	"***":   true,
	"* * *": true,
	"---":   true,
	"- - -": true,
	"•••":   true,
	"• • •": true,
	"~":     true,
	"#":     true,
}

// IsSceneBreak classifies a paragraph as a scene break: either it equals
// one of the fixed sentinel tokens after trimming, or it is at most 5
// characters consisting solely of repeated asterisk, dash, or bullet
// characters once whitespace is removed. The length-based fallback is a
// deliberate heuristic that tolerates variant generated markers; it can
// misclassify a very short all-punctuation paragraph, which is accepted as
// an approximation.
func IsSceneBreak(paragraph string) bool {
	trimmed := strings.TrimSpace(paragraph)
	if trimmed == "" {
		return false
	}
	if sceneBreakSentinels[trimmed] {
		return true
	}

	compact := strings.Map(func(r rune) rune {
		if r == ' ' || r == '\t' {
			return -1
		}
		return r
	}, trimmed)
	if compact == "" || len([]rune(compact)) > 5 {
		return false
	}
	for _, r := range compact {
		switch r {
		case '*', '-', '•', '·':
		default:
			return false
		}
	}
	return true
}
