package chat

import "time"

// Clock returns the current time. Store uses it to stamp new messages.
type Clock func() time.Time

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithClock overrides the clock used to stamp appended messages.
func WithClock(c Clock) StoreOption {
	return func(s *Store) {
		if c != nil {
			s.now = c
		}
	}
}

// Store is the ordered, append-only message sequence of one screen session.
// Order is insertion order, oldest first.
type Store struct {
	messages []Message
	now      Clock
}

// NewStore creates an empty store stamped by the system clock unless WithClock is given.
func NewStore(opts ...StoreOption) *Store {
	s := &Store{now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Append creates a Message from content and the current clock value and adds it
// to the end of the sequence. It always succeeds.
func (s *Store) Append(content string) Message {
	m := NewMessage(content, s.now())
	s.messages = append(s.messages, m)
	return m
}

// List returns the messages in insertion order. The returned slice is a copy.
func (s *Store) List() []Message {
	out := make([]Message, len(s.messages))
	copy(out, s.messages)
	return out
}

// Len returns the number of messages in the store.
func (s *Store) Len() int {
	return len(s.messages)
}
