// Package main 提供 i18n-check 静态分析工具的命令行入口
// 创建者：Done-0
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/Done-0/i18n-check/pkg/batch"
	"github.com/Done-0/i18n-check/pkg/config"
	"github.com/Done-0/i18n-check/pkg/pseudotranslate"
)

var (
	progressStyle = color.New(color.FgHiBlack)
	errorStyle    = color.New(color.FgHiRed, color.Bold)
)

// exitError 把一个错误和它应当导致的退出码绑在一起（spec §6 exit codes）
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }

func newRootCommand() *cobra.Command {
	var ignoreFolders []string
	var checks []string
	var allChecks bool

	cmd := &cobra.Command{
		Use:           "i18n-check <folder>",
		Short:         "Scan a source tree for internationalization and localization defects",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			style, err := resolveStyle(checks, allChecks, cmd.Flags().Changed("all-l10n-checks"))
			if err != nil {
				return &exitError{code: 3, err: err}
			}
			return runAnalysis(args[0], ignoreFolders, style)
		},
	}

	addReviewFlags(cmd, &ignoreFolders, &checks, &allChecks)
	cmd.AddCommand(newReviewCommand())
	cmd.AddCommand(newPseudoTranslateCommand())
	return cmd
}

// addReviewFlags 把 review 相关标志注册到 cmd 上：--all-l10n-checks 默认打开
// spec §3 的全部检查位，--check 按名称逐个点亮某一位（可重复使用多次叠加）
func addReviewFlags(cmd *cobra.Command, ignoreFolders *[]string, checks *[]string, allChecks *bool) {
	cmd.Flags().StringArrayVarP(ignoreFolders, "ignore", "i", nil, "exclude a folder subtree from analysis (repeatable)")
	cmd.Flags().StringArrayVar(checks, "check", nil, "enable a single check_* flag by name (repeatable)")
	cmd.Flags().BoolVar(allChecks, "all-l10n-checks", true, "enable every check_* flag (default unless --check narrows it)")
}

// newReviewCommand 是根命令隐含行为的显式别名（spec §6 "review (default) and
// pseudo-translate subcommands"），让 `i18n-check review <folder>` 与
// `i18n-check <folder>` 等价
func newReviewCommand() *cobra.Command {
	var ignoreFolders []string
	var checks []string
	var allChecks bool

	cmd := &cobra.Command{
		Use:           "review <folder>",
		Short:         "Scan a source tree for internationalization and localization defects",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			style, err := resolveStyle(checks, allChecks, cmd.Flags().Changed("all-l10n-checks"))
			if err != nil {
				return &exitError{code: 3, err: err}
			}
			return runAnalysis(args[0], ignoreFolders, style)
		},
	}

	addReviewFlags(cmd, &ignoreFolders, &checks, &allChecks)
	return cmd
}

// resolveStyle 把 --check 与 --all-l10n-checks 组合为一个 ReviewStyle 位集。
// 不传 --check 时直接遵循 --all-l10n-checks（默认即 true，等价 AllL10NChecks）；
// 传了 --check 时只点亮列出的位，除非用户还显式传了 --all-l10n-checks=true 把
// 全部位并入其中。
func resolveStyle(checks []string, allChecks bool, allChecksExplicit bool) (config.ReviewStyle, error) {
	if len(checks) == 0 {
		if allChecks {
			return config.AllL10NChecks, nil
		}
		return 0, nil
	}

	var style config.ReviewStyle
	for _, name := range checks {
		flag, ok := config.ParseCheckName(name)
		if !ok {
			return 0, fmt.Errorf("unknown check name %q", name)
		}
		style |= flag
	}
	if allChecksExplicit && allChecks {
		style |= config.AllL10NChecks
	}
	return style, nil
}

func runAnalysis(root string, ignoreFolders []string, style config.ReviewStyle) error {
	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		return &exitError{code: 3, err: fmt.Errorf("input path %q does not exist or is not a directory", root)}
	}

	files, err := collectFiles(root, ignoreFolders)
	if err != nil {
		return &exitError{code: 3, err: fmt.Errorf("walking %s: %w", root, err)}
	}

	view := config.NewView(style, config.DefaultOptions(), nil)
	analyzer := batch.New(view)

	analyzer.Analyze(files, func(total int) {
		progressStyle.Fprintf(os.Stderr, "scanning %d file(s)...\n", total)
	}, func(index int, path string) bool {
		return true
	})

	fmt.Print(analyzer.FormatResults(true))
	fmt.Fprint(os.Stderr, analyzer.FormatSummary(true))

	for _, fe := range analyzer.FileErrors() {
		errorStyle.Fprintf(os.Stderr, "skipped %s: %v\n", fe.Path, fe.Err)
	}

	return nil
}

// newPseudoTranslateCommand 让 pkg/pseudotranslate 的实现能从构建出的二进制里
// 实际被调用（spec §4.8 pseudo_translate，§6 pseudo-translate 子命令）；只把
// .po 文件喂给 PseudoTranslate，其它受支持扩展名的文件在目录遍历中被丢弃。
func newPseudoTranslateCommand() *cobra.Command {
	var ignoreFolders []string
	var method string
	var addBrackets bool
	var widthIncreasePercent int
	var trackIDs bool

	cmd := &cobra.Command{
		Use:           "pseudo-translate <folder>",
		Short:         "Rewrite .po catalogs in place with pseudo-translated text",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := pseudotranslate.Options{
				Method:               pseudotranslate.Method(method),
				AddBrackets:          addBrackets,
				WidthIncreasePercent: widthIncreasePercent,
				TrackIDs:             trackIDs,
			}
			return runPseudoTranslate(args[0], ignoreFolders, opts)
		},
	}

	cmd.Flags().StringArrayVarP(&ignoreFolders, "ignore", "i", nil, "exclude a folder subtree from analysis (repeatable)")
	cmd.Flags().StringVar(&method, "method", string(pseudotranslate.UpperCase),
		"character mapping method: upper_case, european_accents, cherokee, fill")
	cmd.Flags().BoolVar(&addBrackets, "add-brackets", false, "wrap each mangled string in brackets")
	cmd.Flags().IntVar(&widthIncreasePercent, "width-increase-percent", 0,
		"pad mangled strings until they are at least this percent wider than the original")
	cmd.Flags().BoolVar(&trackIDs, "track-ids", false, "prefix each mangled string with an incrementing, zero-padded counter")
	return cmd
}

func runPseudoTranslate(root string, ignoreFolders []string, opts pseudotranslate.Options) error {
	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		return &exitError{code: 3, err: fmt.Errorf("input path %q does not exist or is not a directory", root)}
	}

	files, err := collectFiles(root, ignoreFolders)
	if err != nil {
		return &exitError{code: 3, err: fmt.Errorf("walking %s: %w", root, err)}
	}

	poFiles := files[:0:0]
	for _, f := range files {
		if strings.EqualFold(filepath.Ext(f), ".po") {
			poFiles = append(poFiles, f)
		}
	}

	pseudotranslate.PseudoTranslate(poFiles, opts, func(total int) {
		progressStyle.Fprintf(os.Stderr, "pseudo-translating %d file(s)...\n", total)
	}, func(index int, path string) bool {
		return true
	}, func(path string, err error) {
		errorStyle.Fprintf(os.Stderr, "failed %s: %v\n", path, err)
	})

	return nil
}

func main() {
	cmd := newRootCommand()
	if err := cmd.Execute(); err != nil {
		var ee *exitError
		if errors.As(err, &ee) {
			fmt.Fprintln(os.Stderr, ee.err)
			os.Exit(ee.code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
}
