package ui

// SendMsg asks the screen to send the current input buffer.
type SendMsg struct{}

// FocusNextMsg rotates focus forward (tab).
type FocusNextMsg struct{}

// FocusPrevMsg rotates focus backward (shift+tab).
type FocusPrevMsg struct{}

// ScrollTopMsg jumps the message list to the oldest message.
type ScrollTopMsg struct{}

// ScrollBottomMsg jumps the message list to the newest message.
type ScrollBottomMsg struct{}
