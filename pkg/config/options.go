package config

import (
	"fmt"
	"regexp"
)

// ReviewOptions 对应 spec 4.1 中 configure(flags, options) 的 options 记录
type ReviewOptions struct {
	// LogMessagesCanBeTranslatable 为 true 时 _T(...) 等宽字符宏视为可翻译调用
	LogMessagesCanBeTranslatable bool

	// AllowTranslatingPunctuationOnlyStrings 为 false 时纯标点字符串永远不可翻译
	AllowTranslatingPunctuationOnlyStrings bool

	// ExceptionsShouldBeTranslatable 为 false 时异常构造函数的参数视为不可翻译
	ExceptionsShouldBeTranslatable bool

	// MinWordsForClassifyingUnavailableString 是规则9中判定"应可翻译"所需的最少自然语言单词数
	MinWordsForClassifyingUnavailableString int

	// MinCppVersion 记录目标 C++ 标准版本；目前没有审查器读取该字段，C++ 扫描器不识别三字符组合
	MinCppVersion int

	// VariableNamePatternsToIgnore 是编译后的变量名忽略正则，配置时编译一次
	VariableNamePatternsToIgnore []*regexp.Regexp

	// FuzzyTranslations 为 true 时模糊条目触发 transInconsistency
	FuzzyTranslations bool

	// RecommendedDialogFonts 是 RC FONT 检查使用的"推荐"字体名集合（Open Question #2）
	RecommendedDialogFonts []string
}

// DefaultOptions 返回 spec 4.1 中列出的默认值
func DefaultOptions() *ReviewOptions {
	return &ReviewOptions{
		LogMessagesCanBeTranslatable:            true,
		AllowTranslatingPunctuationOnlyStrings:   false,
		ExceptionsShouldBeTranslatable:           true,
		MinWordsForClassifyingUnavailableString: 2,
		MinCppVersion:                            17,
		VariableNamePatternsToIgnore:             nil,
		FuzzyTranslations:                        true,
		RecommendedDialogFonts:                   []string{"MS Shell Dlg", "MS Shell Dlg 2", "Segoe UI"},
	}
}

// CompileVariablePatterns 编译一组正则表达式字符串，丢弃格式错误的模式并通过 onWarn 报告（spec §7 kind 1）
func (o *ReviewOptions) CompileVariablePatterns(patterns []string, onWarn func(string)) {
	compiled := make([]*regexp.Regexp, 0, len(patterns))
	for _, pattern := range patterns {
		re, err := regexp.Compile(pattern)
		if err != nil {
			if onWarn != nil {
				onWarn(fmt.Sprintf("dropping malformed variable_name_pattern %q: %v", pattern, err))
			}
			continue
		}
		compiled = append(compiled, re)
	}
	o.VariableNamePatternsToIgnore = compiled
}

// MatchesIgnoredVariablePattern 判断变量名是否命中任一已编译的忽略模式
func (o *ReviewOptions) MatchesIgnoredVariablePattern(name string) bool {
	for _, re := range o.VariableNamePatternsToIgnore {
		if re.MatchString(name) {
			return true
		}
	}
	return false
}
