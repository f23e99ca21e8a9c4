package domain

// CodeRecord is the single persisted record holding the most recent code.
// The JSON keys are part of the file format read by other tools.
type CodeRecord struct {
	Sender string `json:"发送方"`
	Code   string `json:"验证码"`
}

// RecordFromEvent builds the persisted record for an event carrying a code.
func RecordFromEvent(e CodeEvent) CodeRecord {
	return CodeRecord{Sender: e.Sender, Code: e.Code}
}
