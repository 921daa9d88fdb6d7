// Package warn 定义与下游 UI 保持稳定契约的警告 id 映射（spec §6）
package warn

// ID 是一个稳定的、带方括号的短标签，贯穿分类器、审查器与报告生成器
type ID string

// 警告 id 常量，文字与 spec §6 的"Warning id mapping"一一对应
const (
	NotL10NAvailable     ID = "[notL10NAvailable]"
	SuspectL10NString    ID = "[suspectL10NString]"
	SuspectL10NUsage     ID = "[suspectL10NUsage]"
	PrintfMismatch       ID = "[printfMismatch]"
	AcceleratorMismatch  ID = "[acceleratorMismatch]"
	TransInconsistency   ID = "[transInconsistency]"
	L10NStringNeedsContext ID = "[L10NStringNeedsContext]"
	URLInL10NString      ID = "[urlInL10NString]"
	SpacesAroundL10NString ID = "[spacesAroundL10NString]"
	DeprecatedMacro      ID = "[deprecatedMacro]"
	NonUTF8File          ID = "[nonUTF8File]"
	UTF8FileWithBOM      ID = "[UTF8FileWithBOM]"
	UnencodedExtASCII    ID = "[unencodedExtASCII]"
	PrintfSingleNumber   ID = "[printfSingleNumber]"
	NumberAssignedToID   ID = "[numberAssignedToId]"
	DupValAssignedToIDs  ID = "[dupValAssignedToIds]"
	MalformedString      ID = "[malformedString]"
	TrailingSpaces       ID = "[trailingSpaces]"
	FontIssue            ID = "[fontIssue]"
	Tabs                 ID = "[tabs]"
	WideLine             ID = "[wideLine]"
	CommentMissingSpace  ID = "[commentMissingSpace]"
)

// RequiredFlagFor 返回发出该警告所必须设置的 ReviewStyle 位的名称，用于测试
// "每个 finding 的 warning_id 对应 F 中的一个位" 这一可测属性（spec §8）。
// 返回的字符串是 config.ParseCheckName 能识别的 check_* 名称。
func RequiredFlagFor(id ID) string {
	switch id {
	case NotL10NAvailable:
		return "check_not_available_for_l10n"
	case SuspectL10NString:
		return "check_l10n_strings"
	case SuspectL10NUsage:
		return "check_suspect_l10n_usage"
	case PrintfMismatch:
		return "check_mismatching_printf_commands"
	case AcceleratorMismatch:
		return "check_accelerators"
	case TransInconsistency:
		return "check_consistency"
	case L10NStringNeedsContext:
		return "check_needing_context"
	case URLInL10NString:
		return "check_l10n_contains_url"
	case SpacesAroundL10NString:
		return "check_l10n_has_surrounding_spaces"
	case DeprecatedMacro:
		return "check_deprecated_macros"
	case NonUTF8File:
		return "check_utf8_encoded"
	case UTF8FileWithBOM:
		return "check_utf8_with_signature"
	case UnencodedExtASCII:
		return "check_unencoded_ext_ascii"
	case PrintfSingleNumber:
		return "check_printf_single_number"
	case NumberAssignedToID:
		return "check_number_assigned_to_id"
	case DupValAssignedToIDs:
		return "check_duplicate_value_assigned_to_ids"
	case MalformedString:
		return "check_malformed_strings"
	case TrailingSpaces:
		return "check_trailing_spaces"
	case FontIssue:
		return "check_fonts"
	case Tabs:
		return "check_tabs"
	case WideLine:
		return "check_line_width"
	case CommentMissingSpace:
		return "check_space_after_comment"
	default:
		return ""
	}
}
