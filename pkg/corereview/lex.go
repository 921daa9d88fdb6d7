package corereview

import "strings"

// SkipLineComment 从 data[i] == '/' 且 data[i+1] == '/' 开始，返回行注释结束后的索引
// （换行符之前，不含换行符本身）。调用方负责检测 i 处确实是行注释的起点。
func SkipLineComment(data []byte, i int) int {
	for i < len(data) && data[i] != '\n' {
		i++
	}
	return i
}

// SkipBlockComment 从 data[i] == '/' 且 data[i+1] == '*' 开始，返回紧跟 "*/" 之后的索引。
// 若到达文件末尾仍未找到结束定界符，返回 len(data) 并由调用方决定是否记为 malformed。
func SkipBlockComment(data []byte, i int) int {
	i += 2
	for i+1 < len(data) {
		if data[i] == '*' && data[i+1] == '/' {
			return i + 2
		}
		i++
	}
	return len(data)
}

// StringDialect 标识 SkipStringLiteral 要使用的字符串字面量语法
type StringDialect int

const (
	// DialectCLike 是 C/C++/C# 的普通双引号字符串，反斜杠转义，不允许跨行
	DialectCLike StringDialect = iota
	// DialectCSharpVerbatim 是 C# 的 @"..." 逐字字符串：反斜杠无特殊含义，"" 转义一个引号，可跨行
	DialectCSharpVerbatim
)

// SkipStringLiteral 从 data[i] 指向开始定界符（通常是 '"'）开始扫描，返回
// 结束定界符之后的索引。ok 为 false 表示在文件末尾前未能找到配对的结束定界符
// （对应 malformed_strings 桶，spec §4.1）。
func SkipStringLiteral(data []byte, i int, dialect StringDialect) (end int, ok bool) {
	quote := data[i]
	i++
	for i < len(data) {
		switch {
		case dialect == DialectCSharpVerbatim && data[i] == '"':
			if i+1 < len(data) && data[i+1] == '"' {
				i += 2
				continue
			}
			return i + 1, true
		case dialect == DialectCLike && data[i] == '\\':
			i += 2
			continue
		case dialect == DialectCLike && data[i] == '\n':
			return i, false
		case data[i] == quote:
			return i + 1, true
		default:
			i++
		}
	}
	return len(data), false
}

// FindEnclosingFunctionName 从 offset（通常是字符串字面量起始定界符的位置）
// 向后扫描，跳过已配对的 ()/[]/{}，找到把 offset 直接包在参数列表里的调用，
// 返回去除装饰后的函数名；若先遇到未配对的 "[" 或 "{"，或扫到语句边界 ";"，
// 或扫到缓冲区起点都未见到未配对的 "("，说明 offset 不在任何调用的实参位置，
// 返回空字符串（usage context 应退化为 parameter/orphan）。
//
// 这是一个纯文本启发式：cpp/csharp 审查器先调用它，只有它返回空字符串时
// 才退回到 tree-sitter AST 祖先节点去找调用名。
// 已知局限：回扫时不区分被跳过区间内的注释/字符串内容与真实的括号字符。
func FindEnclosingFunctionName(data []byte, offset int) string {
	i := offset - 1
	for i >= 0 {
		switch data[i] {
		case ')':
			j, ok := matchOpenBackward(data, i, '(', ')')
			if !ok {
				return ""
			}
			i = j - 1
		case ']':
			j, ok := matchOpenBackward(data, i, '[', ']')
			if !ok {
				return ""
			}
			i = j - 1
		case '}':
			j, ok := matchOpenBackward(data, i, '{', '}')
			if !ok {
				return ""
			}
			i = j - 1
		case '(':
			return identifierBefore(data, i)
		case '[', '{', ';':
			return ""
		default:
			i--
		}
	}
	return ""
}

// matchOpenBackward 从 closeIdx（指向 closeCh）向后找与之配对的 openCh 的索引
func matchOpenBackward(data []byte, closeIdx int, openCh, closeCh byte) (openIdx int, ok bool) {
	depth := 1
	i := closeIdx - 1
	for i >= 0 {
		switch data[i] {
		case closeCh:
			depth++
		case openCh:
			depth--
			if depth == 0 {
				return i, true
			}
		}
		i--
	}
	return 0, false
}

// identifierBefore 在 data[:openParen] 中跳过空白，收集紧邻的标识符字节，
// 再去除命名空间/模板装饰后返回
func identifierBefore(data []byte, openParen int) string {
	i := openParen - 1
	for i >= 0 && isSpaceOrNewline(data[i]) {
		i--
	}
	end := i + 1
	if i >= 0 && data[i] == '>' {
		if j, ok := matchOpenBackward(data, i, '<', '>'); ok {
			end = j
			i = j - 1
		}
	}
	for i >= 0 && (isIdentByte(data[i]) || (data[i] == ':' && i > 0 && data[i-1] == ':')) {
		if data[i] == ':' {
			i -= 2
		} else {
			i--
		}
	}
	if end == i+1 {
		return ""
	}
	return removeDecorations(string(data[i+1 : end]))
}

// removeDecorations 去掉命名空间限定符与模板实参，只留下最终的简单函数名。
// 例如 "MyNamespace::Widget::Render" -> "Render"，"Compare<T>" -> "Compare"。
func removeDecorations(name string) string {
	if idx := strings.LastIndex(name, "::"); idx >= 0 {
		name = name[idx+2:]
	}
	if idx := strings.IndexByte(name, '<'); idx >= 0 {
		name = name[:idx]
	}
	return name
}

func isIdentByte(b byte) bool {
	return b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
}

func isSpaceOrNewline(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}

// FindLHSAssignmentTarget 在 data[:offset] 中向后查找形如 "name = " 或
// "name := " 紧邻在 offset 之前的赋值目标标识符。找不到时返回空字符串。
func FindLHSAssignmentTarget(data []byte, offset int) string {
	i := offset - 1
	for i >= 0 && isSpaceOrNewline(data[i]) {
		i--
	}
	if i < 0 || data[i] != '=' {
		return ""
	}
	i--
	if i >= 0 && data[i] == ':' {
		i-- // Go 风格 := 不会出现在 C/C++/C# 里，但保持宽容无害
	}
	for i >= 0 && isSpaceOrNewline(data[i]) {
		i--
	}
	end := i + 1
	for i >= 0 && isIdentByte(data[i]) {
		i--
	}
	if end == i+1 {
		return ""
	}
	return string(data[i+1 : end])
}

// DecodeEscapes 把 C 风格反斜杠转义（\n \t \r \\ \" \' \0 以及 \xNN、\uNNNN）
// 解码为实际字符，并返回一个从解码后字符串的字节索引映射回原始输入字节偏移的表，
// 供诊断信息在报告原始文件位置时使用（spec §4.1 DecodeEscapes）。
func DecodeEscapes(raw string) (decoded string, originalOffsets []int) {
	var b strings.Builder
	offsets := make([]int, 0, len(raw))

	i := 0
	for i < len(raw) {
		if raw[i] != '\\' || i+1 >= len(raw) {
			b.WriteByte(raw[i])
			offsets = append(offsets, i)
			i++
			continue
		}
		start := i
		next := raw[i+1]
		switch next {
		case 'n':
			b.WriteByte('\n')
			offsets = append(offsets, start)
			i += 2
		case 't':
			b.WriteByte('\t')
			offsets = append(offsets, start)
			i += 2
		case 'r':
			b.WriteByte('\r')
			offsets = append(offsets, start)
			i += 2
		case '\\', '"', '\'':
			b.WriteByte(next)
			offsets = append(offsets, start)
			i += 2
		case '0':
			b.WriteByte(0)
			offsets = append(offsets, start)
			i += 2
		case 'x':
			end := i + 2
			for end < len(raw) && end < i+4 && isHexByte(raw[end]) {
				end++
			}
			if end > i+2 {
				if v, ok := parseHexByte(raw[i+2 : end]); ok {
					b.WriteByte(v)
					offsets = append(offsets, start)
				}
				i = end
			} else {
				b.WriteByte(next)
				offsets = append(offsets, start)
				i += 2
			}
		case 'u':
			end := i + 2
			for end < len(raw) && end < i+6 && isHexByte(raw[end]) {
				end++
			}
			if end == i+6 {
				if r, ok := parseHexRune(raw[i+2 : end]); ok {
					n := b.Len()
					b.WriteRune(r)
					for n < b.Len() {
						offsets = append(offsets, start)
						n++
					}
				}
				i = end
			} else {
				b.WriteByte(next)
				offsets = append(offsets, start)
				i += 2
			}
		default:
			b.WriteByte(next)
			offsets = append(offsets, start)
			i += 2
		}
	}
	return b.String(), offsets
}

func isHexByte(b byte) bool {
	return (b >= '0' && b <= '9') || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

func parseHexByte(s string) (byte, bool) {
	var v int
	for _, c := range s {
		v *= 16
		switch {
		case c >= '0' && c <= '9':
			v += int(c - '0')
		case c >= 'a' && c <= 'f':
			v += int(c-'a') + 10
		case c >= 'A' && c <= 'F':
			v += int(c-'A') + 10
		default:
			return 0, false
		}
	}
	return byte(v), true
}

func parseHexRune(s string) (rune, bool) {
	var v int
	for _, c := range s {
		v *= 16
		switch {
		case c >= '0' && c <= '9':
			v += int(c - '0')
		case c >= 'a' && c <= 'f':
			v += int(c-'a') + 10
		case c >= 'A' && c <= 'F':
			v += int(c-'A') + 10
		default:
			return 0, false
		}
	}
	return rune(v), true
}
