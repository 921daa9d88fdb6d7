// Package pseudotranslate 实现确定性的伪翻译重写（spec §4.8 pseudo_translate，
// §9 "Pseudo-translation tables"）：把目录里的真实译文替换成便于在不引入真正
// 翻译的情况下暴露排版与编码问题的变形文本。
package pseudotranslate

import (
	"fmt"
	"strings"

	"github.com/robertkrimen/otto"
)

// europeanAccentsScript 与 cherokeeScript 把字符映射表写成普通的 JS 对象字面量，
// 在包初始化时用一个内嵌的 otto 虚拟机求值一次；产生的 map 被缓存下来反复使用，
// 对应 spec §9 "fixed look-up tables... serialize them as static data" 的说明。
const europeanAccentsScript = `({
	"a": "á", "b": "ḅ", "c": "ç", "d": "ḍ", "e": "é", "f": "ḟ", "g": "ĝ",
	"h": "ĥ", "i": "í", "j": "ĵ", "k": "ķ", "l": "ĺ", "m": "ḿ", "n": "ñ",
	"o": "ó", "p": "ṕ", "q": "ɋ", "r": "ŕ", "s": "ś", "t": "ţ", "u": "ú",
	"v": "ṽ", "w": "ŵ", "x": "ẋ", "y": "ý", "z": "ź",
	"A": "Á", "B": "Ḅ", "C": "Ç", "D": "Ḍ", "E": "É", "F": "Ḟ", "G": "Ĝ",
	"H": "Ĥ", "I": "Í", "J": "Ĵ", "K": "Ķ", "L": "Ĺ", "M": "Ḿ", "N": "Ñ",
	"O": "Ó", "P": "Ṕ", "Q": "Ɋ", "R": "Ŕ", "S": "Ś", "T": "Ţ", "U": "Ú",
	"V": "Ṽ", "W": "Ŵ", "X": "Ẋ", "Y": "Ý", "Z": "Ź"
})`

const cherokeeScript = `({
	"a": "Ꭰ", "b": "Ꮟ", "c": "Ꮳ", "d": "Ꮷ", "e": "Ꭼ", "f": "Ꮥ", "g": "Ꭶ",
	"h": "Ꮵ", "i": "Ꮧ", "j": "Ꮷ", "k": "Ꭷ", "l": "Ꮃ", "m": "Ꮇ", "n": "Ꮑ",
	"o": "Ꮎ", "p": "Ꮕ", "q": "Ꭴ", "r": "Ꮢ", "s": "Ꮥ", "t": "Ꮏ", "u": "Ꮜ",
	"v": "Ꮩ", "w": "Ꮗ", "x": "Ꭻ", "y": "Ꮿ", "z": "Ꮓ",
	"A": "Ꭰ", "B": "Ꮟ", "C": "Ꮳ", "D": "Ꮷ", "E": "Ꭼ", "F": "Ꮥ", "G": "Ꭶ",
	"H": "Ꮵ", "I": "Ꮧ", "J": "Ꮷ", "K": "Ꭷ", "L": "Ꮃ", "M": "Ꮇ", "N": "Ꮑ",
	"O": "Ꮎ", "P": "Ꮕ", "Q": "Ꭴ", "R": "Ꮢ", "S": "Ꮥ", "T": "Ꮏ", "U": "Ꮜ",
	"V": "Ꮩ", "W": "Ꮗ", "X": "Ꭻ", "Y": "Ꮿ", "Z": "Ꮓ"
})`

// evalCharTable 在一个一次性的 otto 虚拟机里求值一个 JS 对象字面量脚本，
// 导出为一份 Go 字符映射表
func evalCharTable(script string) (map[string]string, error) {
	vm := otto.New()
	value, err := vm.Run(script)
	if err != nil {
		return nil, fmt.Errorf("pseudotranslate: evaluating character table: %w", err)
	}
	exported, err := value.Export()
	if err != nil {
		return nil, fmt.Errorf("pseudotranslate: exporting character table: %w", err)
	}
	raw, ok := exported.(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("pseudotranslate: character table script did not evaluate to an object")
	}
	table := make(map[string]string, len(raw))
	for k, v := range raw {
		s, ok := v.(string)
		if !ok {
			continue
		}
		table[k] = s
	}
	return table, nil
}

// europeanAccents 与 cherokee 在包初始化时求值一次，供 mangle.go 按字符查表替换
var (
	europeanAccents map[string]string
	cherokee        map[string]string
)

func init() {
	var err error
	europeanAccents, err = evalCharTable(europeanAccentsScript)
	if err != nil {
		panic(err)
	}
	cherokee, err = evalCharTable(cherokeeScript)
	if err != nil {
		panic(err)
	}
}

// mapByTable 把 s 中每个在 table 里有映射的 rune 替换为对应值，其余字符原样保留
func mapByTable(s string, table map[string]string) string {
	var b strings.Builder
	for _, r := range s {
		if mapped, ok := table[string(r)]; ok {
			b.WriteString(mapped)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
