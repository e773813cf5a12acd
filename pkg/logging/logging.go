// Package logging 配置全局日志输出
//
// 默认只输出警告及以上级别；--verbose 时输出调试日志。
// 各系统通过 For("Evasion") 获取带前缀的日志器，对应日志中的 "[Evasion]" 标签。
package logging

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// Init 安装默认日志器
//
// 参数：
//   - verbose: 是否输出调试日志
func Init(verbose bool) {
	InitWithWriter(os.Stderr, verbose)
}

// InitWithWriter 与 Init 相同，但输出到指定 writer（测试使用）
func InitWithWriter(w io.Writer, verbose bool) {
	level := log.WarnLevel
	if verbose {
		level = log.DebugLevel
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: verbose,
		Level:           level,
	})
	log.SetDefault(logger)
}

// For 返回带组件前缀的日志器
// 必须在 Init 之后调用，子日志器在创建时继承默认日志器的级别
func For(component string) *log.Logger {
	return log.Default().WithPrefix(component)
}
