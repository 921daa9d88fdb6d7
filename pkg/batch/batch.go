// Package batch 实现 BatchAnalyzer：按扩展名把文件派发给对应语言的审查器，
// 在全部文件处理完后运行跨字符串诊断，并把结果格式化为报告（spec §4.8）。
package batch

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"

	"github.com/Done-0/i18n-check/pkg/config"
	"github.com/Done-0/i18n-check/pkg/corereview"
	"github.com/Done-0/i18n-check/pkg/reviewer/cpp"
	"github.com/Done-0/i18n-check/pkg/reviewer/csharp"
	"github.com/Done-0/i18n-check/pkg/reviewer/po"
	"github.com/Done-0/i18n-check/pkg/reviewer/rc"
)

// language 标识 BatchAnalyzer 为哪个语言家族共享一个 Core + ScanDriver
// （spec §5 "BatchAnalyzer owns a shared reviewer per language"）
type language int

const (
	langCpp language = iota
	langCsharp
	langRc
	langPo
)

// languageForExt 按扩展名选择审查器，名单与 spec §4.8 的列表一一对应
func languageForExt(ext string) (language, bool) {
	switch strings.ToLower(ext) {
	case ".c", ".cc", ".cpp", ".cxx", ".h", ".hpp":
		return langCpp, true
	case ".cs":
		return langCsharp, true
	case ".rc":
		return langRc, true
	case ".po", ".pot":
		return langPo, true
	default:
		return 0, false
	}
}

// IsSupportedExt 报告给定扩展名（含前导 "."）是否有对应的语言审查器，
// 供调用方在遍历目录时预先过滤文件列表
func IsSupportedExt(ext string) bool {
	_, ok := languageForExt(ext)
	return ok
}

// FileError 记录一次文件级别的失败（I/O 或解析），不会中止批处理
type FileError struct {
	Path string
	Err  error
}

// Analyzer 是 BatchAnalyzer：每个语言家族持有一个共享的 Core 与 ScanDriver，
// 文件按输入顺序在各自的语言家族内顺序派发，保持状态单调性与确定性的桶排序。
type Analyzer struct {
	cores      map[language]*corereview.Core
	drivers    map[language]corereview.ScanDriver
	fileErrors []FileError
	partial    bool
}

// New 为给定的配置视图创建一个 Analyzer，四个语言家族各自拥有独立的 Core
func New(view *config.View) *Analyzer {
	a := &Analyzer{
		cores:   map[language]*corereview.Core{},
		drivers: map[language]corereview.ScanDriver{},
	}
	for _, lang := range []language{langCpp, langCsharp, langRc, langPo} {
		core := corereview.NewCore(view)
		a.cores[lang] = core
		switch lang {
		case langCpp:
			a.drivers[lang] = cpp.New(core)
		case langCsharp:
			a.drivers[lang] = csharp.New(core)
		case langRc:
			a.drivers[lang] = rc.New(core)
		case langPo:
			a.drivers[lang] = po.New(core)
		}
	}
	return a
}

// Core 返回某个语言家族的共享 Core，供报告格式化与测试检查桶内容
func (a *Analyzer) Core(lang string) *corereview.Core {
	switch lang {
	case "cpp":
		return a.cores[langCpp]
	case "csharp":
		return a.cores[langCsharp]
	case "rc":
		return a.cores[langRc]
	case "po":
		return a.cores[langPo]
	default:
		return nil
	}
}

// Partial 报告上一次 Analyze 调用是否因取消而提前结束
func (a *Analyzer) Partial() bool { return a.partial }

// FileErrors 返回上一次 Analyze 调用中遇到的全部文件级错误
func (a *Analyzer) FileErrors() []FileError { return a.fileErrors }

// Analyze 按 fileList 给定的顺序处理每个文件：按扩展名选择语言，读取文本
// （无效 UTF-8 回退到 latin1），派发给对应驱动。onProgress 返回 false 是
// 一个具有约束力的取消信号：循环立即停止，已处理的结果被标记为 partial
// （spec §5）。处理完全部（或被取消前的）文件后，对每个语言家族运行
// cross-string 检查与诊断收尾。
func (a *Analyzer) Analyze(fileList []string, onStart func(total int), onProgress func(index int, path string) bool) {
	a.fileErrors = nil
	a.partial = false

	if onStart != nil {
		onStart(len(fileList))
	}

	for i, path := range fileList {
		if onProgress != nil && !onProgress(i, path) {
			a.partial = true
			break
		}
		a.processFile(path)
	}

	for _, core := range a.cores {
		core.ReviewLocalizableStrings()
		core.RunDiagnostics()
	}
}

func (a *Analyzer) processFile(path string) {
	lang, ok := languageForExt(filepath.Ext(path))
	if !ok {
		return
	}
	core := a.cores[lang]

	text, err := readFileText(path, core)
	if err != nil {
		a.fileErrors = append(a.fileErrors, FileError{Path: path, Err: err})
		core.Log.Appendf("skipping %s: %v", path, err)
		return
	}

	if err := a.drivers[lang].Process(text, path); err != nil {
		a.fileErrors = append(a.fileErrors, FileError{Path: path, Err: err})
		core.Log.Appendf("error processing %s: %v", path, err)
	}
}

// readFileText 读取一个文件并作为文本返回。先剥离 UTF-8 BOM（记录到日志），
// 再校验剩余字节是否为合法 UTF-8；若不是，按 latin1 重新解码一遍供有损分析
// 使用，并记录一条诊断（spec §4.8 "Invalid UTF-8... re-read as latin-1"）。
func readFileText(path string, core *corereview.Core) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}

	const utf8BOM = "\xEF\xBB\xBF"
	if bytesHasPrefix(data, utf8BOM) {
		if core.View.Style.Has(config.CheckUTF8WithSignature) {
			core.Log.Appendf("%s: UTF-8 signature (BOM) present", path)
		}
		data = data[len(utf8BOM):]
	}

	if utf8.Valid(data) {
		return string(data), nil
	}

	if core.View.Style.Has(config.CheckUTF8Encoded) {
		core.Log.Appendf("%s: invalid UTF-8, re-reading as latin-1", path)
	}
	decoded, err := charmap.ISO8859_1.NewDecoder().String(string(data))
	if err != nil {
		return "", fmt.Errorf("decoding %s as latin-1: %w", path, err)
	}
	return decoded, nil
}

func bytesHasPrefix(data []byte, prefix string) bool {
	return len(data) >= len(prefix) && string(data[:len(prefix)]) == prefix
}
