package ui

import (
	"strings"

	"chatscreen/internal/chat"
	"chatscreen/internal/ui/textutil"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/samber/lo"
)

const (
	defaultWidth      = 80
	defaultListHeight = 19
	emptyListHint     = "No messages yet. Type below and press Enter to send."
)

// MessageListView is the scrollable message history, oldest at top.
type MessageListView struct {
	viewport  viewport.Model
	formatter *chat.Formatter
	messages  []chat.Message
}

// Ensure MessageListView implements View.
var _ View = (*MessageListView)(nil)

// NewMessageListView creates an empty list rendering rows with f.
func NewMessageListView(f *chat.Formatter) *MessageListView {
	vp := viewport.New(defaultWidth, defaultListHeight)
	vp.MouseWheelEnabled = true
	v := &MessageListView{viewport: vp, formatter: f}
	v.refresh()
	return v
}

// SetMessages replaces the rendered history and scrolls to the newest row.
func (v *MessageListView) SetMessages(msgs []chat.Message) {
	v.messages = msgs
	v.refresh()
	v.viewport.GotoBottom()
}

// Rows returns the unstyled display rows in order.
func (v *MessageListView) Rows() []string {
	return lo.Map(v.messages, func(m chat.Message, _ int) string {
		return v.formatter.Format(m)
	})
}

// SetSize implements Sizer.
func (v *MessageListView) SetSize(width, height int) {
	atBottom := v.viewport.AtBottom()
	v.viewport.Width = width
	v.viewport.Height = height
	v.refresh()
	if atBottom {
		v.viewport.GotoBottom()
	}
}

// AtBottom reports whether the newest row is visible.
func (v *MessageListView) AtBottom() bool {
	return v.viewport.AtBottom()
}

// AtTop reports whether the oldest row is visible.
func (v *MessageListView) AtTop() bool {
	return v.viewport.AtTop()
}

// Init implements View.
func (v *MessageListView) Init() tea.Cmd {
	return v.viewport.Init()
}

// Update implements View.
func (v *MessageListView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg.(type) {
	case ScrollTopMsg:
		v.viewport.GotoTop()
		return v, nil
	case ScrollBottomMsg:
		v.viewport.GotoBottom()
		return v, nil
	}
	var cmd tea.Cmd
	v.viewport, cmd = v.viewport.Update(msg)
	return v, cmd
}

// View implements View.
func (v *MessageListView) View() string {
	return v.viewport.View()
}

// refresh rebuilds viewport content from messages. Even rows are tinted.
func (v *MessageListView) refresh() {
	width := v.viewport.Width
	if len(v.messages) == 0 {
		v.viewport.SetContent(Styles.Empty.Width(width).Render(textutil.Truncate(emptyListHint, width-2)))
		return
	}
	rows := lo.Map(v.Rows(), func(row string, i int) string {
		style := Styles.RowPlain
		if i%2 == 0 {
			style = Styles.RowTinted
		}
		return style.Width(width).Render(textutil.Truncate(row, width-2))
	})
	v.viewport.SetContent(strings.Join(rows, "\n"))
}
