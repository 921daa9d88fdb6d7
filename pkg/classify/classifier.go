package classify

import (
	"github.com/Done-0/i18n-check/pkg/config"
	"github.com/Done-0/i18n-check/pkg/warn"
)

// Classification 是分类器对一个字符串字面量给出的最终判定
type Classification int

const (
	// NotTranslatable 字符串不应被翻译
	NotTranslatable Classification = iota
	// Translatable 字符串应当被翻译
	Translatable
	// SuspiciousTranslatable 字符串被标记为可翻译，但内容可疑
	SuspiciousTranslatable
	// ShouldBeTranslatable 字符串当前未被标记翻译，但看起来应该翻译
	ShouldBeTranslatable
)

// Result 是一次分类调用的完整结果：最终分类 + 首个命中的规则对应的警告 id
type Result struct {
	Classification Classification
	WarningID      warn.ID
	Rule           string // 命中的规则名，便于测试与诊断
}

// Classify 是规则 1-10 的纯函数实现（spec §4.2），不执行任何 I/O。
// literal 是已解码的字符串内容；usage 是该字面量的使用上下文；view 是借用的配置快照。
func Classify(literal string, usage UsageContext, view *config.View) Result {
	// 规则1：已知翻译调用 -> Translatable，再叠加规则7-12的可疑性测试
	if usage.Kind == KindFunctionCall && view.Ignores.IsTranslatorHelper(usage.Name) {
		if usage.Name == "_T" && !view.Options.LogMessagesCanBeTranslatable {
			// _T 历史上是不翻译的宽字符宏；仅当配置允许时才视为翻译调用（Open Question #1）
			return classifyNotTranslationCall(literal, usage, view)
		}
		if suspicious, rule, id := suspiciousContentRule(literal); suspicious {
			return Result{Classification: SuspiciousTranslatable, WarningID: id, Rule: rule}
		}
		return Result{Classification: Translatable, WarningID: "", Rule: "rule1_translation_call"}
	}

	return classifyNotTranslationCall(literal, usage, view)
}

// ClassifyKnownTranslatable 用于字面量已经被其语法结构确定为可翻译的场景（.rc
// STRINGTABLE/MENU 条目、.po msgstr），只套用规则8的可疑性加性测试，不再走
// 规则1的"已知翻译调用"判定（spec §4.6 "Each string literal is translatable
// by default; suspicious-content tests from §4.2 apply"）。
func ClassifyKnownTranslatable(literal string) Result {
	if suspicious, rule, id := suspiciousContentRule(literal); suspicious {
		return Result{Classification: SuspiciousTranslatable, WarningID: id, Rule: rule}
	}
	return Result{Classification: Translatable, WarningID: "", Rule: "rule1_known_translatable"}
}

// classifyNotTranslationCall 处理规则2-10：字面量不是（或不被视为）翻译调用实参的情形
func classifyNotTranslationCall(literal string, usage UsageContext, view *config.View) Result {
	// 规则2：已知非翻译调用
	if usage.Kind == KindFunctionCall {
		isDebugLike := !view.Options.LogMessagesCanBeTranslatable && view.Ignores.IsNonTranslatableFunction(usage.Name)
		isExceptionCtor := !view.Options.ExceptionsShouldBeTranslatable && isExceptionConstructorName(usage.Name)
		isIdentifierValued := view.Ignores.IsNonTranslatableFunction(usage.Name)
		if isDebugLike || isExceptionCtor || isIdentifierValued {
			if looksTranslatable(literal, view) {
				return Result{Classification: NotTranslatable, WarningID: warn.SuspectL10NUsage, Rule: "rule2_internal_call_leak"}
			}
			return Result{Classification: NotTranslatable, WarningID: "", Rule: "rule2_internal_call"}
		}
	}

	// 规则3：赋值目标匹配忽略模式或内部前缀
	if usage.Kind == KindVariableAssignment {
		if view.Options.MatchesIgnoredVariablePattern(usage.Name) || view.Ignores.HasInternalNamespacePrefix(usage.Name) {
			return Result{Classification: NotTranslatable, WarningID: "", Rule: "rule3_internal_assignment"}
		}
	}

	// 规则3b：特性声明 [...] 内部的字符串视为声明上下文，默认不可翻译
	if usage.Kind == KindParameter && usage.Name == "attribute" {
		return Result{Classification: NotTranslatable, WarningID: "", Rule: "rule3b_attribute_context"}
	}

	// 规则4：空或纯空白
	if isWhitespaceOnly(literal) {
		return Result{Classification: NotTranslatable, WarningID: "", Rule: "rule4_empty"}
	}

	// 规则5：纯标点且不允许
	if isPunctuationOnly(literal) && !view.Options.AllowTranslatingPunctuationOnlyStrings {
		return Result{Classification: NotTranslatable, WarningID: "", Rule: "rule5_punctuation_only"}
	}

	// 规则6："看起来像代码"
	if looksLikeCode(literal) || (view.Ignores.IsFontFaceIgnored(literal)) {
		return Result{Classification: NotTranslatable, WarningID: "", Rule: "rule6_looks_like_code"}
	}

	// 规则7：源码关键词
	if sourceKeywords[literal] {
		return Result{Classification: NotTranslatable, WarningID: "", Rule: "rule7_keyword"}
	}

	// 规则9：自然语言单词数达标 且 当前未归类为内部/忽略赋值 -> ShouldBeTranslatable
	notInternalCall := !(usage.Kind == KindFunctionCall && view.Ignores.IsNonTranslatableFunction(usage.Name))
	notIgnoredAssignment := !(usage.Kind == KindVariableAssignment &&
		(view.Options.MatchesIgnoredVariablePattern(usage.Name) || view.Ignores.HasInternalNamespacePrefix(usage.Name)))
	if countNaturalLanguageWords(literal) >= view.Options.MinWordsForClassifyingUnavailableString &&
		notInternalCall && notIgnoredAssignment {
		return Result{Classification: ShouldBeTranslatable, WarningID: warn.NotL10NAvailable, Rule: "rule9_should_be_translatable"}
	}

	// 规则10：兜底
	return Result{Classification: NotTranslatable, WarningID: "", Rule: "rule10_default"}
}

// looksTranslatable 是规则2"如果 S 看起来可翻译"判定使用的轻量版规则9测试（不看上下文）
func looksTranslatable(literal string, view *config.View) bool {
	if isWhitespaceOnly(literal) || looksLikeCode(literal) {
		return false
	}
	return countNaturalLanguageWords(literal) >= view.Options.MinWordsForClassifyingUnavailableString
}

// isExceptionConstructorName 粗略识别异常类构造场景的调用名（如 std::runtime_error、ArgumentException）
func isExceptionConstructorName(name string) bool {
	suffixes := []string{"Exception", "Error", "_error", "_exception"}
	for _, suffix := range suffixes {
		if len(name) > len(suffix) && name[len(name)-len(suffix):] == suffix {
			return true
		}
	}
	return false
}

// suspiciousContentRule 实现规则8的可加性测试：任一测试命中就把 Translatable
// 提升为 SuspiciousTranslatable，返回命中的具体规则名和该子测试对应的警告 id，
// 使每个子测试都能独立于其余子测试被 ReviewStyle 开关（spec §6 "stable contract
// with downstream UI"，每个 warning id 对应一个独立可切换的 check_*）
func suspiciousContentRule(literal string) (bool, string, warn.ID) {
	switch {
	case containsURL(literal):
		return true, "rule8_url", warn.URLInL10NString
	case hasSurroundingWhitespace(literal):
		return true, "rule8_surrounding_whitespace", warn.SpacesAroundL10NString
	case containsSingleNumberFormat(literal):
		// 必须排在 looksLikeCode 之前：looksLikeCode 内部也会匹配单个格式
		// 说明符（规则6），会吞掉这个子规则，使其永远不可达
		return true, "rule8_single_number_format", warn.PrintfSingleNumber
	case looksLikeCode(literal):
		return true, "rule8_looks_like_path_or_identifier", warn.SuspectL10NString
	case containsUnrecognizedExtendedASCII(literal):
		return true, "rule8_unencoded_ext_ascii", warn.SuspectL10NString
	default:
		return false, "", ""
	}
}

// StyleAllowsWarning 判断 style 是否启用了 id 对应的 check_* 位。未知或通用
// （无专属位）的 id 一律放行，由调用方自行叠加更粗粒度的桶级开关。
func StyleAllowsWarning(style config.ReviewStyle, id warn.ID) bool {
	name := warn.RequiredFlagFor(id)
	if name == "" {
		return true
	}
	flag, ok := config.ParseCheckName(name)
	if !ok {
		return true
	}
	return style.Has(flag)
}
