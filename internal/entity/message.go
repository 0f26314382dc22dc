package entity

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
)

type Severity string

// Message is the status line a host shows after each event.
type Message struct {
	Severity Severity `json:"severity"`
	Text     string   `json:"text"`
}

func NewMessage(severity Severity, text string) *Message {
	return &Message{Severity: severity, Text: text}
}
