package sse

// ConnectedPayload is the first message on every stream.
type ConnectedPayload struct {
	ClientID string   `json:"client_id"`
	Filters  []string `json:"filters,omitempty"`
}

// CodeFallbackPayload carries a code event that reached the fallback bus
// because no primary consumer took it.
type CodeFallbackPayload struct {
	EventID   string `json:"event_id"`
	Code      string `json:"code,omitempty"`
	Sender    string `json:"sender"`
	Content   string `json:"content"`
	SourceApp string `json:"source_app"`
	Source    string `json:"source,omitempty"`
}
