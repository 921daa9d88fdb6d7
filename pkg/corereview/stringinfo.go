// Package corereview 提供审查器共享状态：字符串分桶、忽略集合借用、
// 日志环形缓冲与跨语言复用的词法辅助函数（spec §4.1, 重新设计见 spec §9）。
//
// 按 REDESIGN FLAGS 的指示，这里不是一条 ReviewerBase -> 各语言审查器的继承链，
// 而是一个普通的 ReviewerCore 记录加上语言审查器各自实现的 ScanDriver 能力接口；
// 语言审查器借用（而非拥有）同一个 ReviewerCore。
package corereview

import (
	"github.com/Done-0/i18n-check/pkg/classify"
	"github.com/Done-0/i18n-check/pkg/warn"
)

// Severity 标识一个 finding 的严重程度
type Severity int

const (
	// SeverityInfo 是信息性提示
	SeverityInfo Severity = iota
	// SeverityWarning 是需要关注的问题
	SeverityWarning
)

// StringInfo 是一次审查产生的发现项（spec §3）
type StringInfo struct {
	Text       string               // 提取出的文本（已解码、未去除装饰）
	File       string               // 来源文件路径
	Line       int                  // 1 基行号（开始定界符所在行）
	Column     int                  // 1 基列号（开始定界符所在列）
	Usage      classify.UsageContext // 使用上下文
	WarningID  warn.ID              // 稳定的短警告标签
	Severity   Severity
	ByteOffset int // 原始输入中的字节偏移，用于跨文件确定性排序
	Message    string // 人类可读的说明，供报告 explanation 列使用
}

// ScanDriver 是语言审查器必须实现的能力接口（spec §9 "Callback-driven" 重设计的姊妹设计）
type ScanDriver interface {
	// Process 扫描一段文本，把发现项追加到借用的 ReviewerCore 中
	Process(text string, fileName string) error
}
