package ui

import (
	"context"
	"errors"
	"time"
	"unicode/utf8"

	"chatscreen/internal/chat"
	"chatscreen/internal/platform"
	"chatscreen/internal/telemetry"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/text/language"
)

const defaultHeight = 24

// SendRecorder receives one event per send action.
type SendRecorder interface {
	RecordSend(ctx context.Context, ev telemetry.SendEvent)
}

// ScreenOptions configures NewScreen. Zero values select defaults.
type ScreenOptions struct {
	Store     *chat.Store
	Policy    chat.SendPolicy
	Formatter *chat.Formatter
	Platform  platform.Provider
	Logger    *zap.Logger
	Recorder  SendRecorder
	SessionID string
}

// Screen is the root model: it owns the chat state for one session and
// routes messages to the panels of its layout.
type Screen struct {
	SessionID  string
	Store      *chat.Store
	Input      *chat.Input
	Layout     *ChatLayout
	Focus      *FocusManager
	KeyHandler *KeyHandler

	header   *HeaderView
	list     *MessageListView
	input    *InputView
	help     *HelpView
	logger   *zap.Logger
	recorder SendRecorder
	started  time.Time
	width    int
	height   int
}

// NewScreen creates a screen with an empty store and the default keybinds.
func NewScreen(opts ScreenOptions) *Screen {
	store := opts.Store
	if store == nil {
		store = chat.NewStore()
	}
	formatter := opts.Formatter
	if formatter == nil {
		formatter = chat.NewFormatter(time.Local, language.English)
	}
	prov := opts.Platform
	if prov == nil {
		prov = platform.Static("Terminal")
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	recorder := opts.Recorder
	if recorder == nil {
		recorder = telemetry.Disabled()
	}
	sessionID := opts.SessionID
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	s := &Screen{
		SessionID: sessionID,
		Store:     store,
		Input:     chat.NewInput(store, opts.Policy),
		header:    NewHeaderView(prov),
		list:      NewMessageListView(formatter),
		input:     NewInputView(),
		logger:    logger.With(zap.String("session", sessionID)),
		recorder:  recorder,
		started:   time.Now(),
		width:     defaultWidth,
		height:    defaultHeight,
	}
	s.list.SetMessages(store.List())

	reg := NewKeybindRegistry()
	DefaultKeybinds(reg)
	s.Focus = NewFocusManager(chatFocusOrder())
	s.Focus.OnChange = s.onFocusChange
	s.KeyHandler = NewKeyHandler(reg, s.Focus)
	s.help = NewHelpView(reg, s.Focus)
	s.Layout = NewChatLayout(s.header, s.list, s.input, s.help)
	s.Layout.Resize(s.width, s.height)
	return s
}

// Messages returns the session's messages in insertion order.
func (s *Screen) Messages() []chat.Message {
	return s.Store.List()
}

// Header returns the unstyled header text.
func (s *Screen) Header() string {
	return s.header.Title()
}

// Rows returns the formatted message rows as displayed.
func (s *Screen) Rows() []string {
	return s.list.Rows()
}

// Warning returns the help bar warning, if a send was refused.
func (s *Screen) Warning() string {
	return s.help.Warning()
}

// Draft returns the text currently in the input field.
func (s *Screen) Draft() string {
	return s.input.Value()
}

// Ensure screenAdapter can be used as tea.Model.
var _ tea.Model = (*screenAdapter)(nil)

// screenAdapter wraps Screen to implement tea.Model.
type screenAdapter struct {
	*Screen
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (s *Screen) AsTeaModel() tea.Model {
	return &screenAdapter{Screen: s}
}

// Init implements tea.Model.
func (a *screenAdapter) Init() tea.Cmd {
	a.logger.Info("chat session started", zap.String("platform", a.header.Title()))
	return a.input.Init()
}

// Update implements tea.Model.
func (a *screenAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		a.Layout.Resize(msg.Width, msg.Height)
		return a, nil
	case SendMsg:
		a.send()
		return a, nil
	case FocusNextMsg:
		a.Focus.Next()
		return a, a.focusCmd()
	case FocusPrevMsg:
		a.Focus.Prev()
		return a, a.focusCmd()
	case ScrollTopMsg, ScrollBottomMsg:
		_, cmd := a.list.Update(msg)
		return a, cmd
	case tea.MouseMsg:
		return a, a.handleMouse(msg)
	case tea.KeyMsg:
		if consumed, cmd := a.KeyHandler.Handle(msg); consumed {
			if isQuit(msg) {
				a.logger.Info("chat session ended",
					zap.Int("messages", a.Store.Len()),
					zap.Duration("duration", time.Since(a.started)))
			}
			return a, cmd
		}
		if a.Focus.Is(PanelMessages) {
			_, cmd := a.list.Update(msg)
			return a, cmd
		}
		_, cmd := a.input.Update(msg)
		a.syncDraft()
		return a, cmd
	}

	// Cursor blink and other component messages belong to the input.
	_, cmd := a.input.Update(msg)
	return a, cmd
}

// View implements tea.Model.
func (a *screenAdapter) View() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		a.header.View(),
		a.list.View(),
		a.input.View(),
		a.help.View(),
	)
}

// syncDraft copies the field into the input buffer and clears stale warnings.
func (s *Screen) syncDraft() {
	if v := s.input.Value(); v != s.Input.Text() {
		s.Input.SetText(v)
		s.help.SetWarning("")
	}
}

// send runs the send action on the current draft.
func (s *Screen) send() {
	s.Input.SetText(s.input.Value())
	policy := s.Input.Policy().String()

	m, err := s.Input.Send()
	if err != nil {
		s.recorder.RecordSend(context.Background(), telemetry.SendEvent{
			SessionID: s.SessionID, Index: -1, Length: utf8.RuneCountInString(s.Input.Text()), Policy: policy, Err: err,
		})
		if errors.Is(err, chat.ErrBlankContent) {
			s.logger.Debug("send refused", zap.Error(err))
			s.help.SetWarning("Nothing to send: message is blank")
			return
		}
		s.logger.Warn("send failed", zap.Error(err))
		return
	}

	index := s.Store.Len() - 1
	s.input.Reset()
	s.help.SetWarning("")
	s.list.SetMessages(s.Store.List())
	length := utf8.RuneCountInString(m.Content())
	s.recorder.RecordSend(context.Background(), telemetry.SendEvent{
		SessionID: s.SessionID, Index: index, Length: length, Policy: policy,
	})
	s.logger.Info("message sent", zap.Int("index", index), zap.Int("length", length))
}

// handleMouse sends on a left click over the send button, focuses the panel
// under a left click and scrolls the list on wheel events.
func (s *Screen) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		if p, ok := s.Layout.Panel(PanelInput); ok && p.Contains(s.width, s.height, msg.X, msg.Y) {
			x, y, _, _ := p.Bounds(s.width, s.height)
			if s.input.SendButtonHit(msg.X-x, msg.Y-y) {
				return func() tea.Msg { return SendMsg{} }
			}
			if !s.Focus.Is(PanelInput) {
				s.Focus.SetFocus(PanelInput)
				return s.focusCmd()
			}
			return nil
		}
	}
	if p, ok := s.Layout.Panel(PanelMessages); ok && p.Contains(s.width, s.height, msg.X, msg.Y) {
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			s.Focus.SetFocus(PanelMessages)
		}
		_, cmd := s.list.Update(msg)
		return cmd
	}
	return nil
}

func (s *Screen) onFocusChange(_, to string) {
	if to == PanelInput {
		return
	}
	s.input.Blur()
}

func (s *Screen) focusCmd() tea.Cmd {
	if s.Focus.Is(PanelInput) && !s.input.Focused() {
		return s.input.Focus()
	}
	return nil
}

func isQuit(msg tea.KeyMsg) bool {
	switch msg.String() {
	case "esc", "ctrl+c":
		return true
	}
	return false
}
