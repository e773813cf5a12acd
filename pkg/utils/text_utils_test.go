package utils

import (
	"strings"
	"testing"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

// TestWrapText 测试文本换行功能
// basicfont.Face7x13 是等宽字体，每个字符 7 像素
func TestWrapText(t *testing.T) {
	font := text.NewGoXFace(basicfont.Face7x13)

	tests := []struct {
		name     string
		input    string
		maxWidth float64
		expected []string
	}{
		{"短文本不换行", "Yes", 1000, []string{"Yes"}},
		{"长文本自动换行", "Will you be my valentine?", 100, []string{"Will you be my", "valentine?"}},
		// 18 个字符宽，逐字符换行会得到 "Will you be my val"
		{"窄卡片不拆单词", "Will you be my valentine?", 126, []string{"Will you be my", "valentine?"}},
		{"每行一个单词", "Will you be my valentine?", 70, []string{"Will you", "be my", "valentine?"}},
		{"连续空格合并", "Yes   please", 50, []string{"Yes", "please"}},
		{"超长单词拆分", "a supercalifragilistic b", 70, []string{"a", "supercalif", "ragilistic", "b"}},
		{"空文本", "", 100, []string{""}},
		{"宽度无效时原样返回", "No", 0, []string{"No"}},
		{"单个字符超宽", "ab", 3, []string{"a", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines := WrapText(tt.input, font, tt.maxWidth)
			if strings.Join(lines, "|") != strings.Join(tt.expected, "|") {
				t.Errorf("WrapText(%q, %v) = %q, 期望 %q", tt.input, tt.maxWidth, lines, tt.expected)
			}
			for _, line := range lines {
				if w, _ := text.Measure(line, font, 0); tt.maxWidth > 7 && w > tt.maxWidth {
					t.Errorf("line %q is %vpx wide, exceeds %v", line, w, tt.maxWidth)
				}
			}
		})
	}
}

// TestWrapTextKeepsWordsWhole 能放进一行的单词不会被拆到两行
func TestWrapTextKeepsWordsWhole(t *testing.T) {
	font := text.NewGoXFace(basicfont.Face7x13)
	const headline = "Will you be my valentine?"
	words := strings.Fields(headline)

	// 最长单词 "valentine?" 为 70px，从这里往上任何宽度都不应拆词
	for width := 70.0; width <= 200; width += 7 {
		lines := WrapText(headline, font, width)

		var got []string
		for _, line := range lines {
			got = append(got, strings.Fields(line)...)
		}
		if strings.Join(got, " ") != strings.Join(words, " ") {
			t.Fatalf("width %v: words changed by wrapping: %q", width, lines)
		}
	}
}
