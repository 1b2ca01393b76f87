// Package ui is the terminal front end: the account form, the timeline panel
// and the compose box.
package ui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"twitterui/internal/domain"
)

const (
	maxStatusLength = 140
	composeHeight   = 3
	ageRefresh      = 30 * time.Second

	msgLoading      = "Loading..."
	msgRefreshing   = "Refreshing..."
	msgMissingLogin = "Please enter both a login and a password."
)

// Controller is what the UI drives. Connect blocks and is only ever called
// from a command, never from Update itself.
type Controller interface {
	Connect(creds domain.Credentials) (domain.Session, error)
	Refresh(msg string)
	Post(text string)
	SetBusy(busy bool)
	Reenter()
}

type screen int

const (
	screenWelcome screen = iota
	screenConfig
	screenTimeline
)

type Options struct {
	Title   string
	BaseURL string
	// Width and Height pin the layout. Zero follows the terminal size.
	Width  int
	Height int
	// Session starts the UI on the timeline. Without it the welcome form is shown.
	Session domain.Session
	// Credentials prefill the account form.
	Credentials domain.Credentials
}

type Model struct {
	ctrl    Controller
	keys    KeyMap
	title   string
	baseURL string
	now     func() time.Time

	fixedWidth  int
	fixedHeight int
	width       int
	height      int

	screen     screen
	session    domain.Session
	timeline   domain.Timeline
	status     string
	viewport   viewport.Model
	compose    textarea.Model
	composing  bool
	login      textinput.Model
	password   textinput.Model
	focus      int
	formErr    string
	connecting bool
}

func New(ctrl Controller, opts Options) Model {
	login := textinput.New()
	login.Prompt = "Login:    "
	login.Placeholder = "your login"
	login.SetValue(opts.Credentials.Login)

	password := textinput.New()
	password.Prompt = "Password: "
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'
	password.SetValue(opts.Credentials.Password)

	compose := textarea.New()
	compose.Placeholder = "What are you doing?"
	compose.ShowLineNumbers = false
	compose.CharLimit = 0
	compose.SetHeight(composeHeight)

	m := Model{
		ctrl:        ctrl,
		keys:        DefaultKeyMap(),
		title:       opts.Title,
		baseURL:     opts.BaseURL,
		now:         time.Now,
		fixedWidth:  opts.Width,
		fixedHeight: opts.Height,
		session:     opts.Session,
		viewport:    viewport.New(opts.Width, opts.Height),
		compose:     compose,
		login:       login,
		password:    password,
	}

	if opts.Session.Login != "" {
		m.screen = screenTimeline
		m.status = msgLoading
	} else {
		m.screen = screenWelcome
		m.login.Focus()
	}
	m.resize(opts.Width, opts.Height)

	return m
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(tea.SetWindowTitle(m.title), textinput.Blink, ageTick())
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case TimelineMsg:
		m.timeline = msg.Timeline
		m.refreshContent()
		m.viewport.GotoTop()
		return m, nil

	case StatusMsg:
		m.status = msg.Text
		return m, nil

	case ClearComposeMsg:
		m.compose.Reset()
		return m, nil

	case CredentialsRequestMsg:
		return m.openConfig(msg.Err)

	case connectResultMsg:
		m.connecting = false
		if msg.Err != nil {
			m.formErr = msg.Err.Error()
			return m, nil
		}
		m.session = msg.Session
		m.formErr = ""
		m.screen = screenTimeline
		m.login.Blur()
		m.password.Blur()
		m.refreshContent()
		return m, nil

	case ageTickMsg:
		m.refreshContent()
		return m, ageTick()

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		if m.screen == screenTimeline {
			return m.updateTimeline(msg)
		}
		return m.updateForm(msg)
	}

	return m.forward(msg)
}

func (m Model) updateTimeline(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Refresh):
		m.ctrl.Refresh(msgRefreshing)
		return m, nil

	case key.Matches(msg, m.keys.Configure):
		return m.openConfig(nil)

	case key.Matches(msg, m.keys.ShowCompose):
		m.composing = true
		cmd := m.compose.Focus()
		m.layout()
		return m, cmd

	case m.composing && key.Matches(msg, m.keys.HideCompose):
		m.composing = false
		m.compose.Blur()
		m.layout()
		return m, nil

	case m.composing && key.Matches(msg, m.keys.Send):
		text := strings.TrimSpace(m.compose.Value())
		if text == "" {
			return m, nil
		}
		m.compose.Reset()
		m.ctrl.Post(text)
		return m, nil
	}

	return m.forward(msg)
}

func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.connecting {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Cancel):
		if m.screen == screenWelcome {
			return m, tea.Quit
		}
		m.screen = screenTimeline
		m.formErr = ""
		m.login.Blur()
		m.password.Blur()
		m.ctrl.Reenter()
		return m, nil

	case key.Matches(msg, m.keys.NextField), key.Matches(msg, m.keys.PrevField):
		return m, m.setFocus(1 - m.focus)

	case key.Matches(msg, m.keys.Submit):
		return m.submit()
	}

	return m.forward(msg)
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	creds := domain.Credentials{
		Login:    strings.TrimSpace(m.login.Value()),
		Password: m.password.Value(),
	}
	if !creds.Complete() {
		m.formErr = msgMissingLogin
		return m, nil
	}

	m.connecting = true
	m.formErr = ""
	m.status = msgLoading

	ctrl := m.ctrl
	return m, func() tea.Msg {
		session, err := ctrl.Connect(creds)
		return connectResultMsg{Session: session, Err: err}
	}
}

// openConfig shows the account form over the timeline. Polling stays busy
// until the form is saved or cancelled.
func (m Model) openConfig(err error) (tea.Model, tea.Cmd) {
	if m.screen != screenWelcome {
		m.screen = screenConfig
	}
	m.ctrl.SetBusy(true)

	m.formErr = ""
	if err != nil {
		m.formErr = err.Error()
	}
	m.composing = false
	m.compose.Blur()
	m.layout()

	return m, m.setFocus(0)
}

func (m *Model) setFocus(i int) tea.Cmd {
	m.focus = i
	if i == 0 {
		m.password.Blur()
		return m.login.Focus()
	}
	m.login.Blur()
	return m.password.Focus()
}

// forward hands msg to whichever component currently has focus.
func (m Model) forward(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch {
	case m.screen != screenTimeline:
		if m.focus == 0 {
			m.login, cmd = m.login.Update(msg)
		} else {
			m.password, cmd = m.password.Update(msg)
		}
	case m.composing:
		m.compose, cmd = m.compose.Update(msg)
	default:
		m.viewport, cmd = m.viewport.Update(msg)
	}
	return m, cmd
}

func (m *Model) resize(width, height int) {
	if m.fixedWidth > 0 {
		width = m.fixedWidth
	}
	if m.fixedHeight > 0 {
		height = m.fixedHeight
	}
	m.width = width
	m.height = height
	m.layout()
}

func (m *Model) layout() {
	// title and key hints
	reserved := 2
	if m.composing {
		reserved += composeHeight + 1
	}
	// status line
	reserved++

	m.viewport.Width = m.width
	m.viewport.Height = max(m.height-reserved, 1)
	m.compose.SetWidth(max(m.width-2, 10))
	m.refreshContent()
}

func (m *Model) refreshContent() {
	m.viewport.SetContent(renderTimeline(m.timeline, m.session, m.baseURL, m.width, m.now()))
}

func (m Model) View() string {
	if m.screen != screenTimeline {
		return m.formView()
	}

	sections := []string{
		titleStyle.Render(m.title),
		hintStyle.Render("ctrl+n new status • f5 refresh • ctrl+o account • ctrl+q quit"),
	}
	if m.composing {
		sections = append(sections,
			m.compose.View(),
			charactersLeft(m.compose.Value())+hintStyle.Render("  ctrl+s send • esc hide"),
		)
	}
	sections = append(sections, statusStyle.Render(m.status), m.viewport.View())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) formView() string {
	banner := "Account configuration"
	hint := "enter save • tab next field • esc cancel"
	if m.screen == screenWelcome {
		banner = "Welcome to " + m.title + "! Please enter your account details."
		hint = "enter save • tab next field • esc quit"
	}

	sections := []string{
		bannerStyle.Render(banner),
		labelStyle.Render(m.login.View()),
		labelStyle.Render(m.password.View()),
		"",
	}
	switch {
	case m.connecting:
		sections = append(sections, statusStyle.Render("Connecting..."))
	case m.formErr != "":
		sections = append(sections, errorStyle.Render(m.formErr))
	}
	sections = append(sections, hintStyle.Render(hint))

	return panelStyle.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func ageTick() tea.Cmd {
	return tea.Tick(ageRefresh, func(t time.Time) tea.Msg {
		return ageTickMsg(t)
	})
}
