package termux

// whenLayout is how termux-notification-list prints the post time.
const whenLayout = "2006-01-02 15:04:05"

// Log messages
const (
	LogMsgBaseline     = "Termux baseline taken"
	LogMsgPollFailed   = "Termux poll failed"
	LogMsgNotification = "Termux notification"
)

// Error messages
const (
	ErrMsgRunCommand  = "failed to run notification command"
	ErrMsgParseOutput = "failed to parse notification list"
)
