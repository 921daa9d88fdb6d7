// Package formatspec 解析 printf 系与花括号风格的格式字符串，并比较两个
// 占位符序列是否兼容（spec §4.3）
package formatspec

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Dialect 标识被解析的格式字符串方言
type Dialect int

const (
	// Printf 是 %[position$][flags][width][.precision][length]conversion 方言
	Printf Dialect = iota
	// Brace 是 {index[:format_spec]} / {name[:format_spec]} 方言（.NET 与 gettext 风格）
	Brace
)

// Placeholder 是格式字符串中提取出的一个占位符
type Placeholder struct {
	Raw        string // 原始文本，如 "%d" 或 "{0}"
	Conversion byte   // printf 转换字符；brace 方言下恒为 0
	Position   int    // 位置索引：printf 的 %N$ 或 brace 的 {N}；未指定时为 -1
	Name       string // brace 方言下的具名占位符；其余情形为空
	Sequential bool   // printf 方言下是否为顺序（非位置）占位符
}

// 具名的解析错误，供 §4.3 "errors" 枚举以及 §9 Open Question #3 使用
var (
	ErrTruncatedSpecifier          = errors.New("formatspec: truncated specifier")
	ErrUnknownConversion           = errors.New("formatspec: unknown conversion")
	ErrMixedPositionalAndSequential = errors.New("formatspec: mixed positional and sequential indices")
)

var validConversions = map[byte]bool{
	'd': true, 'i': true, 'o': true, 'u': true, 'x': true, 'X': true,
	'e': true, 'E': true, 'f': true, 'F': true, 'g': true, 'G': true,
	'a': true, 'A': true, 'c': true, 's': true, 'p': true, 'n': true, '%': true,
}

// Parse 把 text 解析为有序占位符列表，并收集遇到的解析错误（不会中止解析）
func Parse(text string, dialect Dialect) ([]Placeholder, []error) {
	if dialect == Brace {
		return parseBrace(text)
	}
	return parsePrintf(text)
}

// parsePrintf 实现 printf 方言的扫描：% 之后依次是 [position$][flags][width][.precision][length]conversion
func parsePrintf(text string) ([]Placeholder, []error) {
	var placeholders []Placeholder
	var errs []error
	hasPositional, hasSequential := false, false

	runes := []rune(text)
	for i := 0; i < len(runes); i++ {
		if runes[i] != '%' {
			continue
		}
		start := i
		i++
		if i >= len(runes) {
			errs = append(errs, ErrTruncatedSpecifier)
			break
		}
		if runes[i] == '%' {
			// 字面量 %%，不是占位符
			continue
		}

		// 可选的位置前缀 N$
		position := -1
		sequential := true
		numStart := i
		for i < len(runes) && runes[i] >= '0' && runes[i] <= '9' {
			i++
		}
		if i < len(runes) && runes[i] == '$' && i > numStart {
			n, _ := strconv.Atoi(string(runes[numStart:i]))
			position = n
			sequential = false
			i++
		} else {
			i = numStart
		}

		// flags
		for i < len(runes) && strings.ContainsRune("-+ #0", runes[i]) {
			i++
		}

		// width（数字或 *）
		for i < len(runes) && (runes[i] == '*' || (runes[i] >= '0' && runes[i] <= '9')) {
			i++
		}

		// precision
		if i < len(runes) && runes[i] == '.' {
			i++
			for i < len(runes) && (runes[i] == '*' || (runes[i] >= '0' && runes[i] <= '9')) {
				i++
			}
		}

		// length modifiers
		for i < len(runes) && strings.ContainsRune("hlLqjzt", runes[i]) {
			i++
		}

		if i >= len(runes) {
			errs = append(errs, ErrTruncatedSpecifier)
			break
		}

		conv := byte(runes[i])
		if !validConversions[conv] {
			errs = append(errs, fmt.Errorf("%w: %%%c", ErrUnknownConversion, conv))
			continue
		}

		if !sequential {
			hasPositional = true
		} else {
			hasSequential = true
		}

		placeholders = append(placeholders, Placeholder{
			Raw:        string(runes[start : i+1]),
			Conversion: conv,
			Position:   position,
			Sequential: sequential,
		})
	}

	if hasPositional && hasSequential {
		errs = append(errs, ErrMixedPositionalAndSequential)
	}

	return placeholders, errs
}

// parseBrace 实现 {index[:format]} / {name[:format]} 方言，{{ 与 }} 是字面量转义
func parseBrace(text string) ([]Placeholder, []error) {
	var placeholders []Placeholder
	var errs []error

	runes := []rune(text)
	for i := 0; i < len(runes); i++ {
		if runes[i] == '{' {
			if i+1 < len(runes) && runes[i+1] == '{' {
				i++
				continue
			}
			start := i
			i++
			contentStart := i
			for i < len(runes) && runes[i] != '}' {
				i++
			}
			if i >= len(runes) {
				errs = append(errs, ErrTruncatedSpecifier)
				break
			}
			content := string(runes[contentStart:i])
			// 去掉 :format_spec 后缀
			if idx := strings.IndexByte(content, ':'); idx >= 0 {
				content = content[:idx]
			}

			placeholder := Placeholder{Raw: string(runes[start : i+1])}
			if n, err := strconv.Atoi(content); err == nil {
				placeholder.Position = n
			} else {
				placeholder.Position = -1
				placeholder.Name = content
			}
			placeholders = append(placeholders, placeholder)
			continue
		}
		if runes[i] == '}' && i+1 < len(runes) && runes[i+1] == '}' {
			i++
		}
	}

	return placeholders, errs
}

// shape 返回一个占位符的"形状"：忽略宽度/精度，只保留对兼容性判断有意义的信息
func shape(p Placeholder) string {
	switch p.Conversion {
	case 0:
		return "brace"
	case 's':
		return "s" // %s 与 %ls 视为兼容
	default:
		return string(p.Conversion)
	}
}

// normalizeConversion 把长度修饰符变体（如 %ls）归一到基础转换符的"形状"上。
// 由于 parsePrintf 已丢弃长度修饰符，这里的 shape() 已经足够，保留函数是为了
// 让 Compatible 的实现读起来与 spec 描述的规则一一对应。
func normalizeConversion(c byte) byte { return c }

// Compatible 判断 src -> dst 两个占位符序列在数量、形状与（如适用）位置对应关系上是否兼容
func Compatible(src, dst []Placeholder) bool {
	if len(src) != len(dst) {
		return false
	}
	if len(src) == 0 {
		return true
	}

	// 判断是否为位置方言（brace 恒为"位置"；printf 视 Position>=0 而定）
	srcPositional := isPositional(src)
	dstPositional := isPositional(dst)

	if srcPositional != dstPositional {
		return false
	}

	if srcPositional {
		return compatiblePositional(src, dst)
	}
	return compatibleMultiset(src, dst)
}

func isPositional(ps []Placeholder) bool {
	for _, p := range ps {
		if p.Conversion == 0 {
			return true // brace 方言总是按索引/名称对应
		}
		if p.Position >= 0 {
			return true
		}
	}
	return false
}

// compatiblePositional 要求位置精确对应（printf 的 position$ 或 brace 的 index/name）
func compatiblePositional(src, dst []Placeholder) bool {
	srcByPos := map[string]string{}
	for _, p := range src {
		srcByPos[positionKey(p)] = shape(p)
	}
	dstByPos := map[string]string{}
	for _, p := range dst {
		dstByPos[positionKey(p)] = shape(p)
	}
	if len(srcByPos) != len(dstByPos) {
		return false
	}
	for key, srcShape := range srcByPos {
		dstShape, ok := dstByPos[key]
		if !ok {
			return false
		}
		if normalizeConversion(srcShape[0]) != normalizeConversion(dstShape[0]) && srcShape != dstShape {
			return false
		}
	}
	return true
}

func positionKey(p Placeholder) string {
	if p.Name != "" {
		return "n:" + p.Name
	}
	return fmt.Sprintf("i:%d", p.Position)
}

// compatibleMultiset 要求相同数量、相同多重集合的形状（顺序 printf 占位符）
func compatibleMultiset(src, dst []Placeholder) bool {
	counts := map[string]int{}
	for _, p := range src {
		counts[shape(p)]++
	}
	for _, p := range dst {
		counts[shape(p)]--
	}
	for _, n := range counts {
		if n != 0 {
			return false
		}
	}
	return true
}

// Serialize 把占位符序列还原为格式字符串，使 Parse(Serialize(ps)) 在形状上往返一致（spec §8）
func Serialize(placeholders []Placeholder, dialect Dialect) string {
	var b strings.Builder
	for _, p := range placeholders {
		if dialect == Brace {
			if p.Name != "" {
				b.WriteString("{" + p.Name + "}")
			} else {
				b.WriteString(fmt.Sprintf("{%d}", p.Position))
			}
			continue
		}
		b.WriteString(p.Raw)
	}
	return b.String()
}
