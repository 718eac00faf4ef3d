package tui

import "github.com/charmbracelet/bubbles/textinput"

type signUpModel struct {
	inputs     []textinput.Model
	focus      int
	submitting bool

	// per-field messages keyed the way the auth service reports them
	fieldErrs map[string]string
	errMsg    string
}

func newSignUpModel() signUpModel {
	nameInput := textinput.New()
	nameInput.Placeholder = "name"
	nameInput.CharLimit = 50
	nameInput.Width = 40
	nameInput.Focus()

	emailInput := textinput.New()
	emailInput.Placeholder = "email"
	emailInput.CharLimit = 100
	emailInput.Width = 40

	passwordInput := textinput.New()
	passwordInput.Placeholder = "password"
	passwordInput.CharLimit = 256
	passwordInput.Width = 40
	passwordInput.EchoMode = textinput.EchoPassword
	passwordInput.EchoCharacter = '*'

	return signUpModel{
		inputs:    []textinput.Model{nameInput, emailInput, passwordInput},
		fieldErrs: map[string]string{},
	}
}

func (m signUpModel) View() string {
	out := viewTitle("Create account")
	out += "\nName     [" + m.inputs[0].View() + "]"
	out += fieldErrSuffix(m.fieldErrs, "name")
	out += "\nEmail    [" + m.inputs[1].View() + "]"
	out += fieldErrSuffix(m.fieldErrs, "email")
	out += "\nPassword [" + m.inputs[2].View() + "]"
	out += fieldErrSuffix(m.fieldErrs, "password")

	if m.submitting {
		out += "\n\n[Creating...]\n"
	} else {
		out += "\n\n[Create account]\n"
	}

	if m.errMsg != "" {
		out += "\n" + errorStyle.Render(m.errMsg) + "\n"
	}

	out += "\n" + helpStyle.Render("esc back  tab next field  enter submit")
	return out
}

func fieldErrSuffix(fieldErrs map[string]string, field string) string {
	msg := fieldErrs[field]
	if msg == "" {
		return ""
	}
	return "\n         " + errorStyle.Render("! "+msg)
}

func (m signUpModel) reset() signUpModel {
	for i := range m.inputs {
		m.inputs[i].SetValue("")
		m.inputs[i].Blur()
	}
	m.focus = 0
	m.inputs[0].Focus()
	m.submitting = false
	m.fieldErrs = map[string]string{}
	m.errMsg = ""
	return m
}
