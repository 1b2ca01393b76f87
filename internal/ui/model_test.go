package ui

import (
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"twitterui/internal/domain"
)

type fakeController struct {
	mu         sync.Mutex
	connectErr error
	connected  []domain.Credentials
	refreshes  []string
	posts      []string
	busy       []bool
	reentered  int
}

func (f *fakeController) Connect(creds domain.Credentials) (domain.Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.connected = append(f.connected, creds)
	if f.connectErr != nil {
		return domain.Session{}, f.connectErr
	}
	return domain.Session{Login: creds.Login, Password: creds.Password, ScreenName: creds.Login}, nil
}

func (f *fakeController) Refresh(msg string) { f.refreshes = append(f.refreshes, msg) }
func (f *fakeController) Post(text string)   { f.posts = append(f.posts, text) }
func (f *fakeController) SetBusy(busy bool) { f.busy = append(f.busy, busy) }
func (f *fakeController) Reenter()          { f.reentered++ }

type ModelTestSuite struct {
	suite.Suite
	ctrl *fakeController
}

func TestModelTestSuite(t *testing.T) {
	suite.Run(t, new(ModelTestSuite))
}

func (s *ModelTestSuite) SetupTest() {
	s.ctrl = &fakeController{}
}

func (s *ModelTestSuite) newTimelineModel() Model {
	return New(s.ctrl, Options{
		Title:   "Twitter UI",
		BaseURL: "https://twitter.com",
		Width:   80,
		Height:  24,
		Session: domain.Session{Login: "alice", ScreenName: "alice"},
	})
}

func keyMsg(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(m Model, msgs ...tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = m.Update(msg)
		m = next.(Model)
	}
	return m, cmd
}

func (s *ModelTestSuite) TestStartsOnWelcomeWithoutSession() {
	m := New(s.ctrl, Options{Title: "Twitter UI", Width: 80, Height: 24})

	s.Equal(screenWelcome, m.screen)
	s.Contains(m.View(), "Welcome to Twitter UI!")
}

func (s *ModelTestSuite) TestWelcome_SubmitRequiresBothFields() {
	m := New(s.ctrl, Options{Title: "Twitter UI", Width: 80, Height: 24})

	m, cmd := update(m, runes("alice"), keyMsg(tea.KeyEnter))

	s.Nil(cmd)
	s.Equal(msgMissingLogin, m.formErr)
	s.Empty(s.ctrl.connected)
}

func (s *ModelTestSuite) TestWelcome_ConnectSwitchesToTimeline() {
	m := New(s.ctrl, Options{Title: "Twitter UI", Width: 80, Height: 24})

	m, cmd := update(m, runes("alice"), keyMsg(tea.KeyTab), runes("secret"), keyMsg(tea.KeyEnter))
	s.Require().NotNil(cmd)
	s.True(m.connecting)
	s.Contains(m.View(), "Connecting...")

	m, _ = update(m, cmd())

	s.Require().Len(s.ctrl.connected, 1)
	s.Equal(domain.Credentials{Login: "alice", Password: "secret"}, s.ctrl.connected[0])
	s.Equal(screenTimeline, m.screen)
	s.Equal("alice", m.session.Login)
	s.False(m.connecting)
}

func (s *ModelTestSuite) TestWelcome_ConnectErrorStaysOnForm() {
	s.ctrl.connectErr = errors.New("authentication failed")
	m := New(s.ctrl, Options{Title: "Twitter UI", Width: 80, Height: 24})

	m, cmd := update(m, runes("alice"), keyMsg(tea.KeyTab), runes("wrong"), keyMsg(tea.KeyEnter))
	s.Require().NotNil(cmd)
	m, _ = update(m, cmd())

	s.Equal(screenWelcome, m.screen)
	s.Contains(m.View(), "authentication failed")
}

func (s *ModelTestSuite) TestWelcome_EscQuits() {
	m := New(s.ctrl, Options{Title: "Twitter UI", Width: 80, Height: 24})

	_, cmd := update(m, keyMsg(tea.KeyEsc))

	s.Require().NotNil(cmd)
	s.IsType(tea.QuitMsg{}, cmd())
}

func (s *ModelTestSuite) TestQuitFromTimeline() {
	_, cmd := update(s.newTimelineModel(), keyMsg(tea.KeyCtrlQ))

	s.Require().NotNil(cmd)
	s.IsType(tea.QuitMsg{}, cmd())
}

func (s *ModelTestSuite) TestRefreshKeys() {
	m := s.newTimelineModel()

	update(m, keyMsg(tea.KeyF5), keyMsg(tea.KeyCtrlR))

	s.Equal([]string{msgRefreshing, msgRefreshing}, s.ctrl.refreshes)
}

func (s *ModelTestSuite) TestConfigScreenSetsBusyAndCancelReenters() {
	m, _ := update(s.newTimelineModel(), keyMsg(tea.KeyCtrlO))

	s.Equal(screenConfig, m.screen)
	s.Equal([]bool{true}, s.ctrl.busy)
	s.Contains(m.View(), "Account configuration")

	m, _ = update(m, keyMsg(tea.KeyEsc))

	s.Equal(screenTimeline, m.screen)
	s.Equal(1, s.ctrl.reentered)
}

func (s *ModelTestSuite) TestCredentialsRequestOpensConfig() {
	m, _ := update(s.newTimelineModel(), CredentialsRequestMsg{Err: errors.New("authentication failed")})

	s.Equal(screenConfig, m.screen)
	s.Equal([]bool{true}, s.ctrl.busy)
	s.Contains(m.View(), "authentication failed")
}

func (s *ModelTestSuite) TestComposeAndSend() {
	m, _ := update(s.newTimelineModel(), keyMsg(tea.KeyCtrlN), runes("hello"))

	s.True(m.composing)
	s.Contains(m.View(), "135 characters left.")

	m, _ = update(m, keyMsg(tea.KeyCtrlS))
	s.Equal([]string{"hello"}, s.ctrl.posts)

	m, _ = update(m, ClearComposeMsg{})
	s.Empty(m.compose.Value())
	s.Contains(m.View(), "140 characters left.")
}

func (s *ModelTestSuite) TestSendClearsComposeAtOnce() {
	m, _ := update(s.newTimelineModel(), keyMsg(tea.KeyCtrlN), runes("hello world"), keyMsg(tea.KeyCtrlS))

	s.Empty(m.compose.Value())
	s.Contains(m.View(), "140 characters left.")

	update(m, keyMsg(tea.KeyCtrlS))
	s.Equal([]string{"hello world"}, s.ctrl.posts)
}

func (s *ModelTestSuite) TestSendIgnoresBlankText() {
	m, _ := update(s.newTimelineModel(), keyMsg(tea.KeyCtrlN), runes("   "), keyMsg(tea.KeyCtrlS))

	s.True(m.composing)
	s.Empty(s.ctrl.posts)
}

func (s *ModelTestSuite) TestEscHidesCompose() {
	m, _ := update(s.newTimelineModel(), keyMsg(tea.KeyCtrlN), keyMsg(tea.KeyEsc))

	s.False(m.composing)
	s.NotContains(m.View(), "characters left.")
}

func (s *ModelTestSuite) TestTimelineAndStatusMessages() {
	now := time.Now()
	timeline := domain.Timeline{
		{Author: "bob", Text: "hi there", CreatedAt: now.Add(-10 * time.Second)},
		{Author: "alice", Text: "my own post", CreatedAt: now.Add(-3 * time.Hour)},
	}

	m, _ := update(s.newTimelineModel(), TimelineMsg{Timeline: timeline}, StatusMsg{Text: "Refreshing..."})

	view := m.View()
	s.Contains(view, "bob")
	s.Contains(view, "hi there")
	s.Contains(view, "my own post")
	s.Contains(view, "Refreshing...")

	m, _ = update(m, StatusMsg{Text: ""})
	s.NotContains(m.View(), "Refreshing...")
}

func TestCharactersLeft(t *testing.T) {
	assert.Contains(t, charactersLeft(""), "140 characters left.")
	assert.Contains(t, charactersLeft(strings.Repeat("a", 139)), "1 character left.")

	long := make([]rune, 141)
	for i := range long {
		long[i] = 'é'
	}
	assert.Contains(t, charactersLeft(string(long)), "-1 character left.")
}

func TestRenderTimeline_Empty(t *testing.T) {
	out := renderTimeline(nil, domain.Session{}, "https://twitter.com", 80, time.Now())
	require.Contains(t, out, "Nothing to show yet.")
}
