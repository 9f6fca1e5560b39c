package ui

import (
	"chatscreen/internal/platform"
	"chatscreen/internal/ui/textutil"

	tea "github.com/charmbracelet/bubbletea"
)

// HeaderView is the top bar showing "Chat: <platform>".
type HeaderView struct {
	platform platform.Provider
	width    int
}

// Ensure HeaderView implements View.
var _ View = (*HeaderView)(nil)

// NewHeaderView creates a header for the given platform label provider.
func NewHeaderView(p platform.Provider) *HeaderView {
	return &HeaderView{platform: p, width: defaultWidth}
}

// Title returns the unstyled header text.
func (v *HeaderView) Title() string {
	name := ""
	if v.platform != nil {
		name = v.platform.Name()
	}
	return "Chat: " + name
}

// SetSize implements Sizer.
func (v *HeaderView) SetSize(width, _ int) {
	v.width = width
}

// Init implements View.
func (v *HeaderView) Init() tea.Cmd { return nil }

// Update implements View.
func (v *HeaderView) Update(tea.Msg) (View, tea.Cmd) { return v, nil }

// View implements View.
func (v *HeaderView) View() string {
	title := textutil.Truncate(v.Title(), v.width-Styles.Header.GetHorizontalPadding())
	return Styles.Header.Width(v.width).MaxWidth(v.width).Render(title)
}
