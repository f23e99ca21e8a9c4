package discord

// PackageName is the source app reported for Discord messages.
const PackageName = "com.discord"

const tokenPrefix = "Bot "

// Log messages
const (
	LogMsgReady        = "Discord gateway ready"
	LogMsgOpenFailed   = "Discord gateway open failed"
	LogMsgIgnoredOwn   = "Ignoring own Discord message"
	LogMsgMessageRelay = "Discord message relayed"
)

// Error messages
const (
	ErrMsgCreateSession = "error creating Discord session"
	ErrMsgOpenSession   = "error opening Discord connection"
)
