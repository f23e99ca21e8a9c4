package sink

import (
	"strings"
	"time"

	"github.com/osse101/SmsAuto_Go/internal/domain"
)

// FormatLogLine renders one log entry. The leading newline separates it
// from whatever precedes it in the buffer.
func FormatLogLine(at time.Time, ev domain.CodeEvent) string {
	var b strings.Builder
	b.WriteString("\n[")
	b.WriteString(at.Format(TimeLayout))
	b.WriteString("] 【新通知】\n应用：")
	b.WriteString(ev.SourceApp)
	b.WriteString("\n标题：")
	b.WriteString(ev.Sender)
	b.WriteString("\n内容：")
	b.WriteString(ev.Content)
	b.WriteString("\n验证码：")
	b.WriteString(ev.CodeOrMissing())
	return b.String()
}

// ToastForCode is shown when a code was extracted. It does not mean the
// record was written.
func ToastForCode(code string) string {
	return ToastCodeExtracted + code
}

// StatusHint is non-empty when the listener is enabled but not connected.
func StatusHint(enabled, connected bool) string {
	if enabled && !connected {
		return HintReconnect
	}
	return ""
}

// RenderStatus renders the service status header shown above the log.
func RenderStatus(enabled, connected bool) string {
	var b strings.Builder
	b.WriteString("【服务状态】\n")
	b.WriteString("通知监听权限: ")
	b.WriteString(mark(enabled, "已开启", "未开启"))
	b.WriteString("\n服务连接状态: ")
	b.WriteString(mark(connected, "已连接", "未连接"))
	b.WriteString("\n")
	if hint := StatusHint(enabled, connected); hint != "" {
		b.WriteString("⚠ 提示：")
		b.WriteString(hint)
		b.WriteString("\n")
	}
	b.WriteString(LogSeparator)
	return b.String()
}

func mark(ok bool, yes, no string) string {
	if ok {
		return "✓ " + yes
	}
	return "✗ " + no
}
