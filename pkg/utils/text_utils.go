package utils

import (
	"strings"
	"unicode/utf8"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// WrapText 将文本按指定宽度自动换行
// 参数:
//   - textStr: 要换行的文本
//   - font: 字体
//   - maxWidth: 最大宽度（像素）
//
// 返回:
//   - []string: 换行后的文本数组（每个元素为一行）
//
// 换行规则:
//   - 只在空白处断行，连续空白视为一个空格
//   - 单词本身比一行还宽时才拆开，按字符断开
func WrapText(textStr string, font text.Face, maxWidth float64) []string {
	if textStr == "" || font == nil || maxWidth <= 0 {
		return []string{textStr}
	}
	if measureTextWidth(textStr, font) <= maxWidth {
		return []string{textStr}
	}

	var lines []string
	line := ""
	for _, word := range strings.Fields(textStr) {
		if line != "" {
			if joined := line + " " + word; measureTextWidth(joined, font) <= maxWidth {
				line = joined
				continue
			}
			lines = append(lines, line)
			line = ""
		}

		if measureTextWidth(word, font) <= maxWidth {
			line = word
			continue
		}

		pieces := splitWord(word, font, maxWidth)
		lines = append(lines, pieces[:len(pieces)-1]...)
		line = pieces[len(pieces)-1]
	}
	if line != "" {
		lines = append(lines, line)
	}

	if len(lines) == 0 {
		return []string{textStr}
	}
	return lines
}

// splitWord 把超宽的单词按字符拆成若干段，每段不超过 maxWidth
// 单个字符就超宽时单独成段
func splitWord(word string, font text.Face, maxWidth float64) []string {
	var pieces []string
	current := ""
	for len(word) > 0 {
		r, size := utf8.DecodeRuneInString(word)
		word = word[size:]

		next := current + string(r)
		if current != "" && measureTextWidth(next, font) > maxWidth {
			pieces = append(pieces, current)
			current = string(r)
			continue
		}
		current = next
	}
	return append(pieces, current)
}

// measureTextWidth 测量文本宽度
func measureTextWidth(textStr string, font text.Face) float64 {
	if textStr == "" || font == nil {
		return 0
	}
	width, _ := text.Measure(textStr, font, 0)
	return width
}
