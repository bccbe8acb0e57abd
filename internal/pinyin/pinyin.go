// Package pinyin derives the latin search key stored alongside a bookmark
// name, so keyword search matches Chinese titles typed as pinyin.
package pinyin

import (
	"strings"

	gopinyin "github.com/mozillazg/go-pinyin"
)

// Derive transliterates Han characters in text to flat pinyin and passes
// every other rune through unchanged, lowercased. "Git 笔记" becomes
// "git biji".
func Derive(text string) string {
	args := gopinyin.NewArgs()

	var b strings.Builder
	for _, r := range text {
		syllables := gopinyin.SinglePinyin(r, args)
		if len(syllables) > 0 {
			b.WriteString(syllables[0])
		} else {
			b.WriteRune(r)
		}
	}
	return strings.ToLower(b.String())
}
