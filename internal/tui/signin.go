package tui

import "github.com/charmbracelet/bubbles/textinput"

type signInModel struct {
	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string
}

func newSignInModel() signInModel {
	emailInput := textinput.New()
	emailInput.Placeholder = "email"
	emailInput.CharLimit = 100
	emailInput.Width = 40
	emailInput.Focus()

	passwordInput := textinput.New()
	passwordInput.Placeholder = "password"
	passwordInput.CharLimit = 256
	passwordInput.Width = 40
	passwordInput.EchoMode = textinput.EchoPassword
	passwordInput.EchoCharacter = '*'

	return signInModel{inputs: []textinput.Model{emailInput, passwordInput}}
}

func (m signInModel) View() string {
	out := viewTitle("Sign in")
	out += "\nEmail    [" + m.inputs[0].View() + "]\n"
	out += "Password [" + m.inputs[1].View() + "]\n"

	if m.submitting {
		out += "\n[Signing in...]\n"
	} else {
		out += "\n[Sign in]\n"
	}

	if m.errMsg != "" {
		out += "\n" + errorStyle.Render(m.errMsg) + "\n"
	}

	out += "\n" + helpStyle.Render("esc back  tab next field  enter submit")
	return out
}

func (m signInModel) reset() signInModel {
	for i := range m.inputs {
		m.inputs[i].SetValue("")
		m.inputs[i].Blur()
	}
	m.focus = 0
	m.inputs[0].Focus()
	m.submitting = false
	m.errMsg = ""
	return m
}
