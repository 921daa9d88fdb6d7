package classify

import "regexp"

// 规则6 "looks like code" 的各类正则，均一次编译、只读复用
var (
	windowsPathPattern = regexp.MustCompile(`^[A-Za-z]:\\[^\s]*$`)
	unixPathPattern    = regexp.MustCompile(`^/[^\s]+(/[^\s]+)+$`)
	urlPattern         = regexp.MustCompile(`(?i)\b(https?://|ftp://|mailto:)\S+`)
	guidPattern        = regexp.MustCompile(`^[{(]?[0-9A-Fa-f]{8}-[0-9A-Fa-f]{4}-[0-9A-Fa-f]{4}-[0-9A-Fa-f]{4}-[0-9A-Fa-f]{12}[)}]?$`)
	hexBlobPattern     = regexp.MustCompile(`^(0[xX])?[0-9A-Fa-f]{6,}$`)
	binaryBlobPattern  = regexp.MustCompile(`^[01]{8,}$`)
	singleSpecPattern  = regexp.MustCompile(`^%[-+ #0]*[0-9]*(\.[0-9]+)?[hlLqjzt]*[diouxXeEfFgGaAcspn]$|^%[0-9]+\$[-+ #0]*[0-9]*(\.[0-9]+)?[diouxXeEfFgGaAcspn]$|^\{[0-9]+\}$|^\{\w+\}$`)
	htmlTagOnlyPattern = regexp.MustCompile(`^\s*</?[A-Za-z][A-Za-z0-9]*(\s+[^<>]*)?/?>\s*$`)
	identifierPattern  = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)
	numericPattern     = regexp.MustCompile(`^[-+]?[0-9]+(\.[0-9]+)?$`)
	fileExtPattern     = regexp.MustCompile(`(?i)^\*?\.[a-z0-9]{1,5}$`)
	mimeTypePattern    = regexp.MustCompile(`^[a-z]+/[a-z0-9.+-]+$`)
	punctuationOnly    = regexp.MustCompile(`^[\p{P}\p{S}\s]*$`)
	acceleratorPattern = regexp.MustCompile(`(?:^|[^&])(?:&&)*&[A-Za-z]`)
)

// looksLikeCode 实现规则6：文件路径、URL、GUID、十六进制/二进制 blob、
// 单个格式说明符、HTML/XML 标签、单个标识符、数字字面量、文件扩展名、MIME 类型
func looksLikeCode(s string) bool {
	switch {
	case windowsPathPattern.MatchString(s):
		return true
	case unixPathPattern.MatchString(s):
		return true
	case urlPattern.MatchString(s):
		return true
	case guidPattern.MatchString(s):
		return true
	case hexBlobPattern.MatchString(s):
		return true
	case binaryBlobPattern.MatchString(s):
		return true
	case singleSpecPattern.MatchString(s):
		return true
	case htmlTagOnlyPattern.MatchString(s):
		return true
	case identifierPattern.MatchString(s):
		return true
	case numericPattern.MatchString(s):
		return true
	case fileExtPattern.MatchString(s):
		return true
	case mimeTypePattern.MatchString(s):
		return true
	default:
		return false
	}
}

// sourceKeywords 是规则7中"source-code keyword"集合的一个代表性子集，
// 覆盖 C/C++/C# 共有的控制流与类型关键词
var sourceKeywords = map[string]bool{
	"if": true, "else": true, "for": true, "while": true, "do": true,
	"switch": true, "case": true, "default": true, "break": true,
	"continue": true, "return": true, "goto": true, "sizeof": true,
	"struct": true, "class": true, "enum": true, "union": true,
	"public": true, "private": true, "protected": true, "static": true,
	"const": true, "void": true, "int": true, "char": true, "bool": true,
	"true": true, "false": true, "null": true, "nullptr": true, "new": true,
	"delete": true, "this": true, "namespace": true, "using": true,
	"template": true, "typename": true, "virtual": true, "override": true,
	"try": true, "catch": true, "throw": true, "finally": true,
}

// isWhitespaceOnly 判断字符串是否为空或仅含空白
func isWhitespaceOnly(s string) bool {
	for _, r := range s {
		if r != ' ' && r != '\t' && r != '\n' && r != '\r' {
			return false
		}
	}
	return true
}

// isPunctuationOnly 判断字符串是否仅由标点/符号/空白组成（规则5）
func isPunctuationOnly(s string) bool {
	return s != "" && punctuationOnly.MatchString(s)
}

// hasSurroundingWhitespace 判断字符串是否有前导或尾随空白（规则8）
func hasSurroundingWhitespace(s string) bool {
	if s == "" {
		return false
	}
	first := s[0]
	last := s[len(s)-1]
	isSpace := func(b byte) bool { return b == ' ' || b == '\t' }
	return isSpace(first) || isSpace(last)
}

// containsURL 判断字符串中是否含有 URL（规则8、6 共用）
func containsURL(s string) bool {
	return urlPattern.MatchString(s)
}

// containsSingleNumberFormat 判断字符串是否是被单个数字格式说明符包裹的字符串（规则8）
func containsSingleNumberFormat(s string) bool {
	if s == "" || !singleSpecPattern.MatchString(s) {
		return false
	}
	switch s[len(s)-1] {
	case 'd', 'i', 'o', 'u', 'x', 'X', 'e', 'E', 'f', 'F', 'g', 'G', 'a', 'A':
		return true
	}
	return false
}

// hasAccelerator 判断字符串中是否含有未转义的 & 后跟字母（accelerator，§4.7/GLOSSARY）
func hasAccelerator(s string) bool {
	return acceleratorPattern.MatchString(s)
}

// HasAccelerator 是 hasAccelerator 的导出包装，供 PoReviewer 比较 msgid/msgstr
// 两侧的加速键出现情况（spec §4.7）
func HasAccelerator(s string) bool {
	return hasAccelerator(s)
}

// FindURL 返回字符串中第一个匹配的 URL，未找到时返回空串，供 PoReviewer 比较
// msgid/msgstr 两侧引用的 URL 是否一致（spec §4.7）
func FindURL(s string) string {
	return urlPattern.FindString(s)
}
