package domain

import "time"

// HistoryEntry is one stored code event in the optional notification history.
type HistoryEntry struct {
	ID         int64     `json:"id"`
	Source     string    `json:"source"`
	SourceApp  string    `json:"source_app"`
	Sender     string    `json:"sender"`
	Content    string    `json:"content"`
	Code       string    `json:"code,omitempty"`
	ReceivedAt time.Time `json:"received_at"`
}
