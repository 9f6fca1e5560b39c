package chat

import "time"

// Message is a single chat entry. Fields are unexported so a Message cannot be
// changed once it has been created.
type Message struct {
	content   string
	timestamp time.Time
}

// NewMessage creates a Message with the given content and timestamp.
func NewMessage(content string, timestamp time.Time) Message {
	return Message{content: content, timestamp: timestamp}
}

// Content returns the text of the message. It may be empty.
func (m Message) Content() string { return m.content }

// Timestamp returns the instant the message was created.
func (m Message) Timestamp() time.Time { return m.timestamp }
