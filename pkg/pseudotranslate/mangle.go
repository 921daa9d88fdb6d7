package pseudotranslate

import (
	"fmt"
	"strings"
)

// Method 标识字符变形表的选择（spec §4.8 pseudo_translate method 参数）
type Method string

const (
	// UpperCase 把每个字母变为大写
	UpperCase Method = "upper_case"
	// EuropeanAccents 把每个 ASCII 字母替换为带重音符号的拉丁文变体
	EuropeanAccents Method = "european_accents"
	// Cherokee 把每个 ASCII 字母替换为切罗基音节文字对应符号
	Cherokee Method = "cherokee"
	// Fill 把每个字符替换为 'X'
	Fill Method = "fill"
)

// Options 是一次伪翻译调用的全部变形参数（spec §4.8）
type Options struct {
	Method               Method
	AddBrackets          bool
	WidthIncreasePercent int
	TrackIDs             bool
}

// mangler 持有 track_ids 计数器状态，跨一次 PseudoTranslate 调用的所有条目共享
type mangler struct {
	opts    Options
	counter int
	width   int // track_ids 计数器前缀的固定宽度，取决于条目总数
}

func newMangler(opts Options, entryCount int) *mangler {
	width := len(fmt.Sprintf("%d", entryCount))
	if width < 1 {
		width = 1
	}
	return &mangler{opts: opts, width: width}
}

// mangle 对一个非空 msgstr 原文应用配置的全部变形步骤：字符映射 -> 宽度填充 ->
// 方括号包裹 -> 编号前缀，顺序与 spec §4.8 描述的流水线一致
func (m *mangler) mangle(original string) string {
	mapped := applyMethod(original, m.opts.Method)

	if m.opts.WidthIncreasePercent > 0 {
		mapped = padToWidth(mapped, len(original), m.opts.WidthIncreasePercent)
	}

	if m.opts.AddBrackets {
		mapped = "[" + mapped + "]"
	}

	if m.opts.TrackIDs {
		mapped = fmt.Sprintf("%0*d %s", m.width, m.counter, mapped)
		m.counter++
	}

	return mapped
}

func applyMethod(s string, method Method) string {
	switch method {
	case UpperCase:
		return strings.ToUpper(s)
	case EuropeanAccents:
		return mapByTable(s, europeanAccents)
	case Cherokee:
		return mapByTable(s, cherokee)
	case Fill:
		return strings.Repeat("X", len([]rune(s)))
	default:
		return s
	}
}

// padToWidth 用 mapped 的最后一个字符把它填充到至少
// ceil(originalLen * (1 + widthIncreasePercent/100)) 个 rune 长，
// 模拟翻译文本比源文本更长时暴露的布局问题（spec §4.8）
func padToWidth(mapped string, originalLen, widthIncreasePercent int) string {
	runes := []rune(mapped)
	if len(runes) == 0 {
		return mapped
	}
	target := (originalLen*(100+widthIncreasePercent) + 99) / 100
	filler := runes[len(runes)-1]
	for len(runes) < target {
		runes = append(runes, filler)
	}
	return string(runes)
}
