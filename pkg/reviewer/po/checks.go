package po

import (
	"strings"
	"unicode"

	"github.com/Done-0/i18n-check/pkg/classify"
)

// endPunctuation 是规则认为有意义的"收尾标点"集合（spec §4.7 "punctuation discrepancy"）
var endPunctuation = []string{"...", "…", ".", "!", "?", ":"}

// consistencyMismatch 实现 spec §4.7 里除模糊标记、c-format、accelerator 之外的
// 其余一致性测试：首尾空白/换行差异、收尾标点差异、msgid/msgstr 两侧引用了
// 不同的 URL。命中时返回人类可读的说明与 true。
func consistencyMismatch(id, value string) (string, bool) {
	leadID, trailID := whitespaceEdges(id)
	leadVal, trailVal := whitespaceEdges(value)
	if leadID != leadVal || trailID != trailVal {
		return "leading/trailing whitespace differs between msgid and msgstr", true
	}

	if endID, endVal := trailingPunctuation(id), trailingPunctuation(value); endID != endVal {
		return "trailing punctuation differs between msgid and msgstr", true
	}

	idURL, valURL := classify.FindURL(id), classify.FindURL(value)
	if idURL != "" && valURL != "" && idURL != valURL {
		return "msgid and msgstr reference different URLs", true
	}

	return "", false
}

// whitespaceEdges 报告字符串是否以空白（空格/制表符/换行/回车）开头或结尾
func whitespaceEdges(s string) (leading, trailing bool) {
	if s == "" {
		return false, false
	}
	runes := []rune(s)
	return unicode.IsSpace(runes[0]), unicode.IsSpace(runes[len(runes)-1])
}

// trailingPunctuation 返回字符串末尾（去除尾随空白后）匹配的收尾标点，
// 未匹配任何已识别标点时返回空串
func trailingPunctuation(s string) string {
	trimmed := strings.TrimRightFunc(s, unicode.IsSpace)
	for _, p := range endPunctuation {
		if strings.HasSuffix(trimmed, p) {
			return p
		}
	}
	return ""
}
