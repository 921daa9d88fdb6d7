// Package config 提供审查风格位集与审查选项的配置类型
// 创建者：Done-0
package config

// ReviewStyle 是一组独立检查项的位集合，每一位对应 spec 中的一个 check_*
type ReviewStyle uint64

// 支持的审查检查项，对应规范中的 22 个标志
const (
	CheckL10NStrings ReviewStyle = 1 << iota
	CheckNotAvailableForL10N
	CheckSuspectL10NUsage
	CheckMismatchingPrintfCommands
	CheckAccelerators
	CheckConsistency
	CheckNeedingContext
	CheckL10NContainsURL
	CheckL10NHasSurroundingSpaces
	CheckDeprecatedMacros
	CheckUTF8Encoded
	CheckUTF8WithSignature
	CheckUnencodedExtASCII
	CheckPrintfSingleNumber
	CheckNumberAssignedToID
	CheckDuplicateValueAssignedToIDs
	CheckMalformedStrings
	CheckTrailingSpaces
	CheckFonts
	CheckTabs
	CheckLineWidth
	CheckSpaceAfterComment
)

// AllL10NChecks 是 all_l10n_checks 标志对应的全部检查项集合
const AllL10NChecks = CheckL10NStrings |
	CheckNotAvailableForL10N |
	CheckSuspectL10NUsage |
	CheckMismatchingPrintfCommands |
	CheckAccelerators |
	CheckConsistency |
	CheckNeedingContext |
	CheckL10NContainsURL |
	CheckL10NHasSurroundingSpaces |
	CheckDeprecatedMacros |
	CheckUTF8Encoded |
	CheckUTF8WithSignature |
	CheckUnencodedExtASCII |
	CheckPrintfSingleNumber |
	CheckNumberAssignedToID |
	CheckDuplicateValueAssignedToIDs |
	CheckMalformedStrings |
	CheckTrailingSpaces |
	CheckFonts |
	CheckTabs |
	CheckLineWidth |
	CheckSpaceAfterComment

// checkNames 将标志名映射到其位值，供 ParseCheckName 和 CLI 标志解析使用
var checkNames = map[string]ReviewStyle{
	"check_l10n_strings":                CheckL10NStrings,
	"check_not_available_for_l10n":      CheckNotAvailableForL10N,
	"check_suspect_l10n_usage":          CheckSuspectL10NUsage,
	"check_mismatching_printf_commands": CheckMismatchingPrintfCommands,
	"check_accelerators":                CheckAccelerators,
	"check_consistency":                 CheckConsistency,
	"check_needing_context":             CheckNeedingContext,
	"check_l10n_contains_url":           CheckL10NContainsURL,
	"check_l10n_has_surrounding_spaces": CheckL10NHasSurroundingSpaces,
	"check_deprecated_macros":           CheckDeprecatedMacros,
	"check_utf8_encoded":                CheckUTF8Encoded,
	"check_utf8_with_signature":         CheckUTF8WithSignature,
	"check_unencoded_ext_ascii":         CheckUnencodedExtASCII,
	"check_printf_single_number":        CheckPrintfSingleNumber,
	"check_number_assigned_to_id":       CheckNumberAssignedToID,
	"check_duplicate_value_assigned_to_ids": CheckDuplicateValueAssignedToIDs,
	"check_malformed_strings":           CheckMalformedStrings,
	"check_trailing_spaces":             CheckTrailingSpaces,
	"check_fonts":                       CheckFonts,
	"check_tabs":                        CheckTabs,
	"check_line_width":                  CheckLineWidth,
	"check_space_after_comment":         CheckSpaceAfterComment,
	"all_l10n_checks":                   AllL10NChecks,
}

// ParseCheckName 把一个 check_* 名称解析为对应的 ReviewStyle 位；未知名称返回 ok=false
func ParseCheckName(name string) (ReviewStyle, bool) {
	style, ok := checkNames[name]
	return style, ok
}

// Has 判断 style 中是否设置了 flag 对应的所有位
func (style ReviewStyle) Has(flag ReviewStyle) bool {
	return style&flag == flag
}

// With 返回设置了 flag 的新 ReviewStyle
func (style ReviewStyle) With(flag ReviewStyle) ReviewStyle {
	return style | flag
}

// Without 返回清除了 flag 的新 ReviewStyle
func (style ReviewStyle) Without(flag ReviewStyle) ReviewStyle {
	return style &^ flag
}
