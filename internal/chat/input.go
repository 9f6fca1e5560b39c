package chat

import (
	"errors"
	"strings"
)

// ErrBlankContent is returned by Input.Send under PolicyRejectBlank when the
// buffer is empty or whitespace only.
var ErrBlankContent = errors.New("message content is blank")

// SendPolicy decides which buffer values Send accepts.
type SendPolicy int

const (
	// PolicyAllowEmpty accepts any content, including "".
	PolicyAllowEmpty SendPolicy = iota
	// PolicyRejectBlank refuses empty and whitespace-only content.
	PolicyRejectBlank
)

func (p SendPolicy) String() string {
	switch p {
	case PolicyAllowEmpty:
		return "allow-empty"
	case PolicyRejectBlank:
		return "reject-blank"
	default:
		return "unknown"
	}
}

// Input is the compose buffer. Send moves its value into the Store.
type Input struct {
	text   string
	store  *Store
	policy SendPolicy
}

// NewInput creates an empty buffer that sends into store.
func NewInput(store *Store, policy SendPolicy) *Input {
	return &Input{store: store, policy: policy}
}

// SetText replaces the buffer value.
func (in *Input) SetText(value string) {
	in.text = value
}

// Text returns the current buffer value.
func (in *Input) Text() string {
	return in.text
}

// Policy returns the send policy in effect.
func (in *Input) Policy() SendPolicy {
	return in.policy
}

// Send appends the buffer value to the store and clears the buffer.
// Under PolicyRejectBlank a blank buffer yields ErrBlankContent and nothing changes.
func (in *Input) Send() (Message, error) {
	if in.policy == PolicyRejectBlank && strings.TrimSpace(in.text) == "" {
		return Message{}, ErrBlankContent
	}
	m := in.store.Append(in.text)
	in.text = ""
	return m, nil
}
