package ui

import (
	"chatscreen/internal/ui/textutil"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	sendButtonLabel = "[ Send ]"
	inputPrompt     = "> "
	inputChrome     = 4 // rounded border plus one column of padding on each side
)

// InputView is the single-line compose field with a trailing send button.
type InputView struct {
	input   textinput.Model
	focused bool
	width   int
}

// Ensure InputView implements View.
var _ View = (*InputView)(nil)

// NewInputView creates a focused, empty input.
func NewInputView() *InputView {
	ti := textinput.New()
	ti.Prompt = inputPrompt
	ti.Placeholder = "Message"
	ti.Focus()
	v := &InputView{input: ti, focused: true}
	v.SetSize(defaultWidth, inputHeight)
	return v
}

// Value returns the text being composed.
func (v *InputView) Value() string {
	return v.input.Value()
}

// Reset clears the field.
func (v *InputView) Reset() {
	v.input.Reset()
}

// Focus gives the field the cursor.
func (v *InputView) Focus() tea.Cmd {
	v.focused = true
	return v.input.Focus()
}

// Blur removes the cursor.
func (v *InputView) Blur() {
	v.focused = false
	v.input.Blur()
}

// Focused reports whether the field has the cursor.
func (v *InputView) Focused() bool {
	return v.focused
}

// SetSize implements Sizer.
func (v *InputView) SetSize(width, _ int) {
	v.width = width
	w := v.fieldWidth() - textutil.VisualWidth(inputPrompt) - 1
	if w < 1 {
		w = 1
	}
	v.input.Width = w
}

// fieldWidth is the space left of the send button inside the box.
func (v *InputView) fieldWidth() int {
	w := v.width - inputChrome - textutil.VisualWidth(sendButtonLabel) - 1
	if w < 1 {
		return 1
	}
	return w
}

// SendButtonHit reports whether the panel-relative cell (x, y) lies on the send
// button. Any row of the box counts.
func (v *InputView) SendButtonHit(x, y int) bool {
	if y < 0 || y >= inputHeight {
		return false
	}
	end := v.width - inputChrome/2
	start := end - textutil.VisualWidth(sendButtonLabel)
	return x >= start && x < end
}

// Init implements View.
func (v *InputView) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements View.
func (v *InputView) Update(msg tea.Msg) (View, tea.Cmd) {
	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

// View implements View.
func (v *InputView) View() string {
	box := Styles.InputBlurred
	if v.focused {
		box = Styles.InputFocused
	}
	fw := v.fieldWidth()
	field := lipgloss.NewStyle().Width(fw).MaxWidth(fw).MaxHeight(1).Render(v.input.View())
	row := lipgloss.JoinHorizontal(lipgloss.Top, field, " ", Styles.SendButton.Render(sendButtonLabel))
	// Narrow terminals cut the row instead of wrapping it onto extra lines.
	inner := max(v.width-inputChrome, 1)
	row = lipgloss.NewStyle().MaxWidth(inner).Render(row)
	return box.Width(v.width - 2).MaxWidth(v.width).MaxHeight(inputHeight).Render(row)
}
