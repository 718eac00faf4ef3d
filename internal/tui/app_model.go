package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/notetaker/notetaker/internal/service"
	"github.com/notetaker/notetaker/models"
)

type screen int

const (
	screenWelcome screen = iota
	screenSignIn
	screenSignUp
	screenOTP
	screenProviderSelect
	screenDashboard
	screenNoteForm
)

// appModel is the single Bubble Tea model for the whole client: it
// keeps the active screen, delegates key handling per screen, and runs
// service calls as async commands.
type appModel struct {
	ctx      context.Context
	services *service.Services

	currentScreen screen

	welcome        welcomeModel
	signIn         signInModel
	signUp         signUpModel
	otp            otpModel
	providerSelect providerSelectModel
	dashboard      dashboardModel
	noteForm       noteFormModel

	showError     bool
	errorOverlay  errorOverlayModel
	showConfirm   bool
	confirm       confirmModel
	pendingDelete string

	showBuildInfo bool
	buildInfo     models.AppBuildInfo

	quitByUser bool
}

func newAppModel(ctx context.Context, services *service.Services, buildInfo models.AppBuildInfo, signedIn bool) appModel {
	m := appModel{
		ctx:            ctx,
		services:       services,
		currentScreen:  screenWelcome,
		welcome:        newWelcomeModel(),
		signIn:         newSignInModel(),
		signUp:         newSignUpModel(),
		otp:            newOTPModel(),
		providerSelect: newProviderSelectModel(services.Auth.Roster().Profiles()),
		dashboard:      newDashboardModel(),
		noteForm:       newNoteFormModel(),
		buildInfo:      buildInfo,
	}

	if signedIn {
		m.currentScreen = screenDashboard
		m.refreshDashboard()
	}

	return m
}

func (m appModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitByUser = true
			return m, tea.Quit
		}
		if m.showBuildInfo {
			if key.Matches(msg, keys.esc) {
				m.showBuildInfo = false
			}
			return m, nil
		}
		if m.showError {
			if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
				m.showError = false
				m.errorOverlay.message = ""
			}
			return m, nil
		}
		if m.showConfirm {
			if key.Matches(msg, keys.yes) {
				m.showConfirm = false
				if m.pendingDelete == "" {
					return m, nil
				}
				return m, m.cmdDeleteNote(m.pendingDelete)
			}
			if key.Matches(msg, keys.no) || key.Matches(msg, keys.esc) {
				m.showConfirm = false
				m.pendingDelete = ""
			}
			return m, nil
		}

	case signInDoneMsg:
		m.signIn.submitting = false
		m.providerSelect.errMsg = ""
		if msg.err != nil {
			m.signIn.errMsg = humanizeAuthError(msg.err)
			if m.currentScreen == screenProviderSelect {
				m.providerSelect.errMsg = humanizeAuthError(msg.err)
			}
			if m.currentScreen == screenOTP {
				m.otp.submitting = false
				m.otp.errMsg = humanizeAuthError(msg.err)
			}
			return m, nil
		}
		m.signIn = m.signIn.reset()
		m.signUp = m.signUp.reset()
		m.dashboard.account = msg.session.Account
		m.dashboard.notes = msg.session.Notes
		m.dashboard = m.dashboard.clampIdx()
		m.currentScreen = screenDashboard
		return m, nil

	case challengeMsg:
		m.signUp.submitting = false
		if msg.err != nil {
			if fields := fieldErrors(msg.err); fields != nil {
				m.signUp.fieldErrs = fields
				m.signUp.errMsg = ""
			} else {
				m.signUp.errMsg = humanizeAuthError(msg.err)
			}
			if m.currentScreen == screenOTP {
				m.otp.errMsg = humanizeAuthError(msg.err)
			}
			return m, nil
		}
		m.signUp.fieldErrs = map[string]string{}
		m.signUp.errMsg = ""
		m.otp = m.otp.withChallenge(msg.challenge)
		if m.currentScreen == screenOTP {
			m.otp.status = "A new code was issued"
		}
		m.currentScreen = screenOTP
		return m, nil

	case noteSavedMsg:
		m.noteForm.submitting = false
		if msg.err != nil {
			if fields := fieldErrors(msg.err); fields != nil {
				m.noteForm.fieldErrs = fields
			} else {
				m.showErrorf(humanizeAuthError(msg.err))
			}
			return m, nil
		}
		m.noteForm = m.noteForm.reset()
		m.refreshDashboard()
		m.currentScreen = screenDashboard
		return m, nil

	case noteDeletedMsg:
		m.pendingDelete = ""
		if msg.err != nil {
			m.showErrorf(humanizeAuthError(msg.err))
			return m, nil
		}
		m.refreshDashboard()
		m.dashboard = m.dashboard.clampIdx()
		return m, nil

	case signedOutMsg:
		m.dashboard = newDashboardModel()
		m.signIn = m.signIn.reset()
		m.currentScreen = screenWelcome
		return m, nil

	case copiedMsg:
		switch m.currentScreen {
		case screenDashboard:
			m.dashboard.status = "Copied!"
		case screenOTP:
			m.otp.status = "Code copied!"
		}
		return m, cmdClearStatus()

	case clearStatusMsg:
		m.dashboard.status = ""
		m.otp.status = ""
		return m, nil

	case tea.WindowSizeMsg:
		return m, nil
	}

	switch m.currentScreen {
	case screenWelcome:
		return m.updateWelcome(msg)
	case screenSignIn:
		return m.updateSignIn(msg)
	case screenSignUp:
		return m.updateSignUp(msg)
	case screenOTP:
		return m.updateOTP(msg)
	case screenProviderSelect:
		return m.updateProviderSelect(msg)
	case screenDashboard:
		return m.updateDashboard(msg)
	case screenNoteForm:
		return m.updateNoteForm(msg)
	}

	return m, nil
}

func (m appModel) View() string {
	if m.showBuildInfo {
		return appStyle.Render(renderBuildInfoWindow(m.buildInfo))
	}

	var body string
	switch m.currentScreen {
	case screenWelcome:
		body = m.welcome.View()
	case screenSignIn:
		body = m.signIn.View()
	case screenSignUp:
		body = m.signUp.View()
	case screenOTP:
		body = m.otp.View()
	case screenProviderSelect:
		body = m.providerSelect.View()
	case screenDashboard:
		body = m.dashboard.View()
	case screenNoteForm:
		body = m.noteForm.View()
	}

	if m.showConfirm {
		body += "\n\n" + m.confirm.View()
	}
	if m.showError {
		body += "\n\n" + m.errorOverlay.View()
	}

	return appStyle.Render(body)
}

func (m *appModel) showErrorf(message string) {
	m.showError = true
	m.errorOverlay.message = message
}

// refreshDashboard re-reads the cached session state after a mutation.
func (m *appModel) refreshDashboard() {
	if account, ok := m.services.Auth.CurrentAccount(); ok {
		m.dashboard.account = account
	}
	m.dashboard.notes = m.services.Notes.List()
}

func (m appModel) updateWelcome(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.welcome.idx > 0 {
			m.welcome.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.welcome.idx < len(m.welcome.items)-1 {
			m.welcome.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		switch m.welcome.idx {
		case 0:
			m.currentScreen = screenSignIn
		case 1:
			m.currentScreen = screenSignUp
		case 2:
			m.currentScreen = screenProviderSelect
		}
	case keyMsg.String() == "v":
		m.showBuildInfo = true
	case key.Matches(keyMsg, keys.quit):
		m.quitByUser = true
		return m, tea.Quit
	}
	return m, nil
}

func (m appModel) updateSignIn(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.signIn = m.signIn.reset()
			m.currentScreen = screenWelcome
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.signIn.inputs, m.signIn.focus = focusNext(m.signIn.inputs, m.signIn.focus)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.signIn.inputs, m.signIn.focus = focusPrev(m.signIn.inputs, m.signIn.focus)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.signIn.submitting {
				return m, nil
			}
			email := strings.TrimSpace(m.signIn.inputs[0].Value())
			password := m.signIn.inputs[1].Value()
			m.signIn.errMsg = ""
			m.signIn.submitting = true
			return m, m.cmdSignIn(email, password)
		}
	}

	var cmd tea.Cmd
	m.signIn.inputs[m.signIn.focus], cmd = m.signIn.inputs[m.signIn.focus].Update(msg)
	return m, cmd
}

func (m appModel) updateSignUp(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.signUp = m.signUp.reset()
			m.currentScreen = screenWelcome
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.signUp.inputs, m.signUp.focus = focusNext(m.signUp.inputs, m.signUp.focus)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.signUp.inputs, m.signUp.focus = focusPrev(m.signUp.inputs, m.signUp.focus)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.signUp.submitting {
				return m, nil
			}
			name := m.signUp.inputs[0].Value()
			email := m.signUp.inputs[1].Value()
			password := m.signUp.inputs[2].Value()
			m.signUp.submitting = true
			return m, m.cmdBeginSignUp(name, email, password)
		}
	}

	var cmd tea.Cmd
	m.signUp.inputs[m.signUp.focus], cmd = m.signUp.inputs[m.signUp.focus].Update(msg)
	return m, cmd
}

func (m appModel) updateOTP(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenSignUp
			return m, nil
		case key.Matches(keyMsg, keys.resend):
			return m, m.cmdResendOTP()
		case keyMsg.String() == "ctrl+y":
			return m, cmdCopyToClipboard(m.otp.challenge.OTP)
		case key.Matches(keyMsg, keys.enter):
			if m.otp.submitting {
				return m, nil
			}
			m.otp.errMsg = ""
			m.otp.submitting = true
			return m, m.cmdVerifyOTP(m.otp.input.Value())
		}
	}

	var cmd tea.Cmd
	m.otp.input, cmd = m.otp.input.Update(msg)
	return m, cmd
}

func (m appModel) updateProviderSelect(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.providerSelect.errMsg = ""
		m.currentScreen = screenWelcome
	case key.Matches(keyMsg, keys.up):
		if m.providerSelect.idx > 0 {
			m.providerSelect.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.providerSelect.idx < len(m.providerSelect.profiles)-1 {
			m.providerSelect.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		profile, ok := m.providerSelect.current()
		if !ok {
			return m, nil
		}
		return m, m.cmdProviderSignIn(profile.ProviderAccountID)
	}
	return m, nil
}

func (m appModel) updateDashboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.dashboard.idx > 0 {
			m.dashboard.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.dashboard.idx < len(m.dashboard.notes)-1 {
			m.dashboard.idx++
		}
	case key.Matches(keyMsg, keys.newNote):
		m.noteForm = m.noteForm.reset()
		m.currentScreen = screenNoteForm
	case key.Matches(keyMsg, keys.delete):
		note, ok := m.dashboard.current()
		if !ok {
			return m, nil
		}
		m.showConfirm = true
		m.confirm.message = fitText(note.Title, 30)
		m.pendingDelete = note.NoteID
	case key.Matches(keyMsg, keys.copy):
		note, ok := m.dashboard.current()
		if !ok {
			return m, nil
		}
		return m, cmdCopyToClipboard(note.Content)
	case key.Matches(keyMsg, keys.logout):
		return m, m.cmdSignOut()
	case key.Matches(keyMsg, keys.quit):
		m.quitByUser = true
		return m, tea.Quit
	}
	return m, nil
}

func (m appModel) updateNoteForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.noteForm = m.noteForm.reset()
			m.currentScreen = screenDashboard
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.noteForm.inputs, m.noteForm.focus = focusNext(m.noteForm.inputs, m.noteForm.focus)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.noteForm.inputs, m.noteForm.focus = focusPrev(m.noteForm.inputs, m.noteForm.focus)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.noteForm.submitting {
				return m, nil
			}
			title := m.noteForm.inputs[0].Value()
			content := m.noteForm.inputs[1].Value()
			m.noteForm.fieldErrs = map[string]string{}
			m.noteForm.submitting = true
			return m, m.cmdCreateNote(title, content)
		}
	}

	var cmd tea.Cmd
	m.noteForm.inputs[m.noteForm.focus], cmd = m.noteForm.inputs[m.noteForm.focus].Update(msg)
	return m, cmd
}

func (m appModel) cmdSignIn(email, password string) tea.Cmd {
	ctx := m.ctx
	auth := m.services.Auth
	return func() tea.Msg {
		session, err := auth.SignIn(ctx, email, password)
		return signInDoneMsg{session: session, err: err}
	}
}

func (m appModel) cmdBeginSignUp(name, email, password string) tea.Cmd {
	ctx := m.ctx
	auth := m.services.Auth
	return func() tea.Msg {
		challenge, err := auth.BeginSignUp(ctx, name, email, password)
		return challengeMsg{challenge: challenge, err: err}
	}
}

func (m appModel) cmdResendOTP() tea.Cmd {
	ctx := m.ctx
	auth := m.services.Auth
	return func() tea.Msg {
		challenge, err := auth.ResendOTP(ctx)
		return challengeMsg{challenge: challenge, err: err}
	}
}

func (m appModel) cmdVerifyOTP(code string) tea.Cmd {
	ctx := m.ctx
	auth := m.services.Auth
	return func() tea.Msg {
		session, err := auth.VerifyOTP(ctx, code)
		return signInDoneMsg{session: session, err: err}
	}
}

func (m appModel) cmdProviderSignIn(providerAccountID string) tea.Cmd {
	ctx := m.ctx
	auth := m.services.Auth
	return func() tea.Msg {
		session, err := auth.SignInWithProvider(ctx, providerAccountID)
		return signInDoneMsg{session: session, err: err}
	}
}

func (m appModel) cmdCreateNote(title, content string) tea.Cmd {
	ctx := m.ctx
	notes := m.services.Notes
	return func() tea.Msg {
		note, err := notes.Create(ctx, title, content)
		return noteSavedMsg{note: note, err: err}
	}
}

func (m appModel) cmdDeleteNote(noteID string) tea.Cmd {
	ctx := m.ctx
	notes := m.services.Notes
	return func() tea.Msg {
		err := notes.Delete(ctx, noteID)
		return noteDeletedMsg{noteID: noteID, err: err}
	}
}

func (m appModel) cmdSignOut() tea.Cmd {
	ctx := m.ctx
	auth := m.services.Auth
	return func() tea.Msg {
		return signedOutMsg{err: auth.SignOut(ctx)}
	}
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return noteSavedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

func focusNext(inputs []textinput.Model, focus int) ([]textinput.Model, int) {
	inputs[focus].Blur()
	focus = (focus + 1) % len(inputs)
	inputs[focus].Focus()
	return inputs, focus
}

func focusPrev(inputs []textinput.Model, focus int) ([]textinput.Model, int) {
	inputs[focus].Blur()
	focus = (focus - 1 + len(inputs)) % len(inputs)
	inputs[focus].Focus()
	return inputs, focus
}
