package ui

// Panel IDs used by the chat layout.
const (
	PanelHeader   = "header"
	PanelMessages = "messages"
	PanelInput    = "input"
	PanelHelp     = "help"
)

// Fixed panel heights; the message list takes what is left.
const (
	headerHeight = 1
	inputHeight  = 3
	helpHeight   = 1
)

// Layout arranges panels and defines focus order.
type Layout interface {
	Panels() []Panel
	FocusOrder() []string // Tab order for focus
}

// ChatLayout stacks header, messages, input and help from top to bottom.
type ChatLayout struct {
	panels []Panel
}

// Ensure ChatLayout implements Layout.
var _ Layout = (*ChatLayout)(nil)

// NewChatLayout builds the layout around the four panel views.
func NewChatLayout(header, messages, input, help View) *ChatLayout {
	return &ChatLayout{panels: []Panel{
		{ID: PanelHeader, View: header, Bounds: func(w, h int) (int, int, int, int) {
			return 0, 0, w, headerHeight
		}},
		{ID: PanelMessages, View: messages, Bounds: func(w, h int) (int, int, int, int) {
			return 0, headerHeight, w, messageListHeight(h)
		}},
		{ID: PanelInput, View: input, Bounds: func(w, h int) (int, int, int, int) {
			return 0, headerHeight + messageListHeight(h), w, inputHeight
		}},
		{ID: PanelHelp, View: help, Bounds: func(w, h int) (int, int, int, int) {
			return 0, headerHeight + messageListHeight(h) + inputHeight, w, helpHeight
		}},
	}}
}

func messageListHeight(total int) int {
	h := total - headerHeight - inputHeight - helpHeight
	if h < 1 {
		return 1
	}
	return h
}

// Panels implements Layout.
func (l *ChatLayout) Panels() []Panel {
	return l.panels
}

// FocusOrder implements Layout. The header and help bar never take focus.
func (l *ChatLayout) FocusOrder() []string {
	return chatFocusOrder()
}

func chatFocusOrder() []string {
	return []string{PanelInput, PanelMessages}
}

// Panel returns the panel with the given ID.
func (l *ChatLayout) Panel(id string) (Panel, bool) {
	for _, p := range l.panels {
		if p.ID == id {
			return p, true
		}
	}
	return Panel{}, false
}

// Resize pushes each panel's bounds to views implementing Sizer.
func (l *ChatLayout) Resize(width, height int) {
	for _, p := range l.panels {
		if s, ok := p.View.(Sizer); ok {
			_, _, w, h := p.Bounds(width, height)
			s.SetSize(w, h)
		}
	}
}
