package record

import "os"

// DefaultPath is the shared-storage location polled by consumers.
const DefaultPath = "/storage/emulated/0/verification_code.json"

// FileMode of the record file.
const FileMode os.FileMode = 0o644

const tempPattern = ".verification_code-*.tmp"

// User-facing delete messages
const (
	MsgFileNotFound = "文件不存在："
	MsgFileDeleted  = "已删除："
	MsgDeleteFailed = "删除失败，请检查「所有文件访问」权限"
)

// Error messages
const (
	ErrMsgEncodeRecord  = "failed to encode record"
	ErrMsgCreateTemp    = "failed to create temp record file"
	ErrMsgWriteTemp     = "failed to write temp record file"
	ErrMsgReplaceRecord = "failed to replace record file"
	ErrMsgReadRecord    = "failed to read record file"
	ErrMsgDecodeRecord  = "failed to decode record file"
)

// Log messages
const (
	LogMsgRecordWritten      = "Verification code record written"
	LogMsgRecordDeleted      = "Record delete handled"
	LogMsgRecordDeleteFailed = "Record delete failed"
)
