package sink

// TimeLayout is the HH:MM:SS stamp put on every log entry.
const TimeLayout = "15:04:05"

// Live view strings
const (
	ToastCodeExtracted = "提取到6位验证码："
	HintReconnect      = "请在设置中关闭再重新开启通知监听权限"
	LogSeparator       = "\n———————— 通知监听日志 ————————"
)

// Event stream types published by the sink
const (
	StreamEventLogAppended = "log.appended"
	StreamEventToast       = "toast"
)

// Log messages
const (
	LogMsgCodeEventHandled = "Code event handled"
	LogMsgWriteQueued      = "Record write queued"
	LogMsgWriteNotQueued   = "Record write not queued"
	LogMsgHistoryNotQueued = "History entry not queued"
	LogMsgBadPayload       = "Unreadable code event payload"
)
