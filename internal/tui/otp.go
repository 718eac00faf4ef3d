package tui

import (
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/notetaker/notetaker/models"
)

// otpModel displays the issued challenge and collects the entered code.
// The code is shown on screen because there is no out-of-band delivery
// channel in the demo setup.
type otpModel struct {
	challenge  models.Challenge
	input      textinput.Model
	submitting bool
	status     string
	errMsg     string
}

func newOTPModel() otpModel {
	codeInput := textinput.New()
	codeInput.Placeholder = "6-digit code"
	codeInput.CharLimit = 6
	codeInput.Width = 12
	codeInput.Focus()

	return otpModel{input: codeInput}
}

func (m otpModel) View() string {
	out := viewTitle("Verify your email")
	out += "\nA verification code was issued for " + m.challenge.Email + "\n"
	out += "\nYour code: " + titleStyle.Render(m.challenge.OTP) + "\n"
	out += "\nCode [" + m.input.View() + "]\n"

	if m.submitting {
		out += "\n[Verifying...]\n"
	} else {
		out += "\n[Verify]\n"
	}

	if m.status != "" {
		out += "\n" + m.status + "\n"
	}
	if m.errMsg != "" {
		out += "\n" + errorStyle.Render(m.errMsg) + "\n"
	}

	out += "\n" + helpStyle.Render("esc back  ctrl+r resend  ctrl+y copy code  enter verify")
	return out
}

func (m otpModel) withChallenge(challenge models.Challenge) otpModel {
	m.challenge = challenge
	m.input.SetValue("")
	m.input.Focus()
	m.submitting = false
	m.status = ""
	m.errMsg = ""
	return m
}
