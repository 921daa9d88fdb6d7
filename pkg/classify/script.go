package classify

import (
	"unicode"

	"golang.org/x/text/unicode/rangetable"
)

// recognizedExtendedASCII 是规则8"扩展 ASCII 但不属于已识别脚本"检测所用的白名单：
// 常见的 Latin-1 Supplement 标点/重音字母，以及版权符号等——这些不应被当作可疑编码问题。
// 用 rangetable.New 一次性构建，供 unicode.In 复用（用法与 golang.org/x/text 系各包一致）。
var recognizedExtendedASCII = rangetable.New(
	'©', '®', '™', '°', '±', '²', '³', 'µ', '¶', '·',
	'¼', '½', '¾', '×', '÷',
	'À', 'Á', 'Â', 'Ã', 'Ä', 'Å', 'Æ', 'Ç', 'È', 'É', 'Ê', 'Ë',
	'Ì', 'Í', 'Î', 'Ï', 'Ñ', 'Ò', 'Ó', 'Ô', 'Õ', 'Ö', 'Ø',
	'Ù', 'Ú', 'Û', 'Ü', 'Ý', 'ß',
	'à', 'á', 'â', 'ã', 'ä', 'å', 'æ', 'ç', 'è', 'é', 'ê', 'ë',
	'ì', 'í', 'î', 'ï', 'ñ', 'ò', 'ó', 'ô', 'õ', 'ö', 'ø',
	'ù', 'ú', 'û', 'ü', 'ý', 'ÿ',
	'“', '”', '‘', '’', '—', '–', '…',
)

// containsUnrecognizedExtendedASCII 判断字符串中是否存在 0x7F<cp<0x100 的扩展 ASCII
// 码点，且该码点不在已识别的脚本/符号白名单内（规则8、check_unencoded_ext_ascii）
func containsUnrecognizedExtendedASCII(s string) bool {
	for _, r := range s {
		if r > 0x7F && r < 0x100 && !unicode.In(r, recognizedExtendedASCII) {
			return true
		}
	}
	return false
}

// ContainsUnrecognizedExtendedASCII 是 containsUnrecognizedExtendedASCII 的导出
// 包装，供审查器包在 check_unencoded_ext_ascii 之外再次复用同一判定
func ContainsUnrecognizedExtendedASCII(s string) bool {
	return containsUnrecognizedExtendedASCII(s)
}

// CountNaturalLanguageWords 是 countNaturalLanguageWords 的导出包装，供
// PoReviewer 判断 msgid 是否"过短"（spec §4.7 check_needing_context）
func CountNaturalLanguageWords(s string) int {
	return countNaturalLanguageWords(s)
}

// countNaturalLanguageWords 统计由 Unicode Letter 类字符组成、被空白或标点分隔的
// "单词"数量，供规则9（min_words_for_classifying_unavailable_string）使用
func countNaturalLanguageWords(s string) int {
	count := 0
	inWord := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			if !inWord {
				count++
				inWord = true
			}
		} else {
			inWord = false
		}
	}
	return count
}
