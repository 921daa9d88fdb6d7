package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/Done-0/i18n-check/pkg/batch"
)

// collectFiles 遍历 root，收集扩展名受支持的文件路径，跳过 ignoreFolders
// 列出的任意子树（spec §6 "-i, --ignore <folder>" exclude folder subtree）
func collectFiles(root string, ignoreFolders []string) ([]string, error) {
	absIgnores := make([]string, 0, len(ignoreFolders))
	for _, folder := range ignoreFolders {
		abs, err := filepath.Abs(folder)
		if err != nil {
			continue
		}
		absIgnores = append(absIgnores, abs)
	}

	var files []string
	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			if isUnderAny(path, absIgnores) {
				return filepath.SkipDir
			}
			return nil
		}
		if isUnderAny(path, absIgnores) {
			return nil
		}
		if batch.IsSupportedExt(strings.ToLower(filepath.Ext(path))) {
			files = append(files, path)
		}
		return nil
	})
	return files, err
}

func isUnderAny(path string, dirs []string) bool {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	for _, dir := range dirs {
		if abs == dir || strings.HasPrefix(abs, dir+string(filepath.Separator)) {
			return true
		}
	}
	return false
}
