package pseudotranslate

import (
	"fmt"
	"os"

	"github.com/Done-0/i18n-check/pkg/reviewer/po"
)

// PseudoTranslate 对 fileList 里的每个 .po 文件执行伪翻译重写：解析目录，
// 用 opts 描述的方法变形每条非空 msgstr，写回磁盘（spec §4.8 pseudo_translate）。
//
// onStart 在开始前以文件总数被调用一次。onProgress 在处理每个文件前以其下标
// 与路径被调用；返回 false 时立即停止并返回 partial=true，与 BatchAnalyzer
// 的取消协议一致（spec §5）。onError 在单个文件读取、解析或写回失败时被调用，
// 该文件被跳过，循环继续处理下一个文件。
func PseudoTranslate(
	fileList []string,
	opts Options,
	onStart func(total int),
	onProgress func(index int, path string) bool,
	onError func(path string, err error),
) (partial bool) {
	if onStart != nil {
		onStart(len(fileList))
	}

	for i, path := range fileList {
		if onProgress != nil && !onProgress(i, path) {
			return true
		}
		if err := rewriteFile(path, opts); err != nil {
			if onError != nil {
				onError(path, err)
			}
		}
	}
	return false
}

func rewriteFile(path string, opts Options) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("pseudotranslate: reading %s: %w", path, err)
	}

	cat, err := po.Parse(path, string(data))
	if err != nil {
		return fmt.Errorf("pseudotranslate: parsing %s: %w", path, err)
	}

	m := newMangler(opts, len(cat.Entries))
	out := serializeCatalog(cat, m)

	if err := os.WriteFile(path, []byte(out), 0o644); err != nil {
		return fmt.Errorf("pseudotranslate: writing %s: %w", path, err)
	}
	return nil
}
