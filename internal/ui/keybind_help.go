package ui

import (
	"chatscreen/internal/ui/textutil"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// RenderKeybindHelp renders the one-line help for the focused panel.
func RenderKeybindHelp(reg *KeybindRegistry, panel string, width int) string {
	if reg == nil {
		return ""
	}
	h := help.New()
	h.Width = width
	h.Styles.ShortKey = Styles.HelpKey
	h.Styles.ShortDesc = Styles.HelpDesc
	h.Styles.ShortSeparator = Styles.HelpDesc
	return h.View(NewKeyMap(reg, panel))
}

// HelpView is the bottom bar: key help, or a warning after a refused send.
type HelpView struct {
	registry *KeybindRegistry
	focus    *FocusManager
	warning  string
	width    int
}

// Ensure HelpView implements View.
var _ View = (*HelpView)(nil)

// NewHelpView creates the help bar.
func NewHelpView(reg *KeybindRegistry, focus *FocusManager) *HelpView {
	return &HelpView{registry: reg, focus: focus, width: defaultWidth}
}

// SetWarning shows text instead of key help until cleared.
func (v *HelpView) SetWarning(text string) {
	v.warning = text
}

// Warning returns the warning being shown, if any.
func (v *HelpView) Warning() string {
	return v.warning
}

// SetSize implements Sizer.
func (v *HelpView) SetSize(width, _ int) {
	v.width = width
}

// Init implements View.
func (v *HelpView) Init() tea.Cmd { return nil }

// Update implements View.
func (v *HelpView) Update(tea.Msg) (View, tea.Cmd) { return v, nil }

// View implements View.
func (v *HelpView) View() string {
	if v.warning != "" {
		return Styles.Warning.MaxWidth(v.width).Render(textutil.Truncate(v.warning, v.width))
	}
	panel := ""
	if v.focus != nil {
		panel = v.focus.Current
	}
	return lipgloss.NewStyle().MaxWidth(v.width).Render(RenderKeybindHelp(v.registry, panel, v.width))
}
