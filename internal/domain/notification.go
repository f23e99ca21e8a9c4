package domain

import "time"

// Placeholder values used when a notification is missing a field, so the
// live log always has something to show.
const (
	PlaceholderSender  = "未知标题"
	PlaceholderContent = "无通知内容"
	CodeNotRecognized  = "未识别到6位数字"
)

// CodeLength is the number of digits in a verification code.
const CodeLength = 6

// Notification is a single posted notification as delivered by a source.
type Notification struct {
	Key         string    `json:"key,omitempty"`
	Source      string    `json:"source"`
	PackageName string    `json:"package_name"`
	Title       string    `json:"title,omitempty"`
	Text        string    `json:"text,omitempty"`
	BigText     string    `json:"big_text,omitempty"`
	PostedAt    time.Time `json:"posted_at"`
}

// CodeEvent is produced once per processed notification.
// Code is empty when no six-digit run was found.
type CodeEvent struct {
	Code      string `json:"code,omitempty"`
	Sender    string `json:"sender"`
	Content   string `json:"content"`
	SourceApp string `json:"source_app"`
}

// HasCode reports whether a verification code was extracted.
func (e CodeEvent) HasCode() bool {
	return e.Code != ""
}

// CodeOrMissing returns the code, or the "not recognized" marker.
func (e CodeEvent) CodeOrMissing() string {
	if e.Code == "" {
		return CodeNotRecognized
	}
	return e.Code
}
