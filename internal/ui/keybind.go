package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Binding ties a key.Binding to a command and the panels it applies to.
// A nil Cmd makes the binding a help hint only; the key still reaches the
// focused view.
type Binding struct {
	Key    key.Binding
	Cmd    tea.Cmd
	Panels []string // nil/empty = applies to all panels
}

// KeybindRegistry maps keys to commands. Keys use tea.KeyMsg.String() notation:
// "enter", "tab", "shift+tab", "ctrl+c", "pgup".
type KeybindRegistry struct {
	bindings []Binding
}

// NewKeybindRegistry creates an empty registry.
func NewKeybindRegistry() *KeybindRegistry {
	return &KeybindRegistry{}
}

// Bind registers keys for all panels. The first key is shown in help.
func (r *KeybindRegistry) Bind(keys []string, cmd tea.Cmd, desc string) {
	r.BindForPanels(keys, cmd, desc, nil)
}

// BindForPanels registers keys that apply only while one of panels has focus.
// Later bindings for the same key take precedence.
func (r *KeybindRegistry) BindForPanels(keys []string, cmd tea.Cmd, desc string, panels []string) {
	if len(keys) == 0 {
		return
	}
	r.bindings = append(r.bindings, Binding{
		Key: key.NewBinding(
			key.WithKeys(keys...),
			key.WithHelp(keys[0], desc),
		),
		Cmd:    cmd,
		Panels: panels,
	})
}

// Lookup returns the command bound to msg for the focused panel, or nil.
func (r *KeybindRegistry) Lookup(msg tea.KeyMsg, panel string) tea.Cmd {
	for i := len(r.bindings) - 1; i >= 0; i-- {
		b := r.bindings[i]
		if b.Cmd == nil || !appliesTo(b, panel) {
			continue
		}
		if key.Matches(msg, b.Key) {
			return b.Cmd
		}
	}
	return nil
}

// Bindings returns the help-visible bindings for the focused panel in
// registration order.
func (r *KeybindRegistry) Bindings(panel string) []key.Binding {
	out := make([]key.Binding, 0, len(r.bindings))
	for _, b := range r.bindings {
		if appliesTo(b, panel) && b.Key.Help().Desc != "" {
			out = append(out, b.Key)
		}
	}
	return out
}

func appliesTo(b Binding, panel string) bool {
	if len(b.Panels) == 0 {
		return true
	}
	for _, p := range b.Panels {
		if p == panel {
			return true
		}
	}
	return false
}

// KeyHandler dispatches key presses to the registry for the focused panel.
type KeyHandler struct {
	Registry *KeybindRegistry
	Focus    *FocusManager
}

// NewKeyHandler creates a handler over reg, filtering by focus.
func NewKeyHandler(reg *KeybindRegistry, focus *FocusManager) *KeyHandler {
	return &KeyHandler{Registry: reg, Focus: focus}
}

// Handle processes a KeyMsg. Returns (consumed, cmd).
// If consumed is false the key should be passed to the focused view.
func (h *KeyHandler) Handle(msg tea.KeyMsg) (consumed bool, cmd tea.Cmd) {
	if h.Registry == nil {
		return false, nil
	}
	if c := h.Registry.Lookup(msg, h.focused()); c != nil {
		return true, c
	}
	return false, nil
}

func (h *KeyHandler) focused() string {
	if h.Focus == nil {
		return ""
	}
	return h.Focus.Current
}

// DefaultKeybinds registers the chat screen's bindings.
func DefaultKeybinds(reg *KeybindRegistry) {
	send := func() tea.Msg { return SendMsg{} }
	reg.BindForPanels([]string{"enter"}, send, "send", []string{PanelInput})
	reg.Bind([]string{"ctrl+s"}, send, "send")
	reg.Bind([]string{"tab"}, func() tea.Msg { return FocusNextMsg{} }, "focus")
	reg.Bind([]string{"shift+tab"}, func() tea.Msg { return FocusPrevMsg{} }, "")
	reg.BindForPanels([]string{"up", "down", "pgup", "pgdown"}, nil, "scroll", []string{PanelMessages})
	reg.BindForPanels([]string{"home"}, func() tea.Msg { return ScrollTopMsg{} }, "oldest", []string{PanelMessages})
	reg.BindForPanels([]string{"end"}, func() tea.Msg { return ScrollBottomMsg{} }, "newest", []string{PanelMessages})
	reg.Bind([]string{"esc", "ctrl+c"}, tea.Quit, "quit")
}

// KeyMap implements help.KeyMap for the focused panel's bindings.
type KeyMap struct {
	registry *KeybindRegistry
	panel    string
}

// NewKeyMap creates a KeyMap for the given registry and focused panel.
func NewKeyMap(registry *KeybindRegistry, panel string) help.KeyMap {
	return &KeyMap{registry: registry, panel: panel}
}

// ShortHelp implements help.KeyMap.
func (km *KeyMap) ShortHelp() []key.Binding {
	if km.registry == nil {
		return nil
	}
	return km.registry.Bindings(km.panel)
}

// FullHelp implements help.KeyMap with a single column.
func (km *KeyMap) FullHelp() [][]key.Binding {
	short := km.ShortHelp()
	if len(short) == 0 {
		return nil
	}
	return [][]key.Binding{short}
}
