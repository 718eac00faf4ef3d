package tui

import "github.com/charmbracelet/bubbles/textinput"

type noteFormModel struct {
	inputs     []textinput.Model
	focus      int
	submitting bool
	fieldErrs  map[string]string
	errMsg     string
}

func newNoteFormModel() noteFormModel {
	titleInput := textinput.New()
	titleInput.Placeholder = "title"
	titleInput.CharLimit = 100
	titleInput.Width = 40
	titleInput.Focus()

	contentInput := textinput.New()
	contentInput.Placeholder = "content"
	contentInput.CharLimit = 2000
	contentInput.Width = 60

	return noteFormModel{
		inputs:    []textinput.Model{titleInput, contentInput},
		fieldErrs: map[string]string{},
	}
}

func (m noteFormModel) View() string {
	out := viewTitle("New note")
	out += "\nTitle   [" + m.inputs[0].View() + "]"
	out += fieldErrSuffix(m.fieldErrs, "title")
	out += "\nContent [" + m.inputs[1].View() + "]"
	out += fieldErrSuffix(m.fieldErrs, "content")

	if m.submitting {
		out += "\n\n[Saving...]\n"
	} else {
		out += "\n\n[Save]\n"
	}

	if m.errMsg != "" {
		out += "\n" + errorStyle.Render(m.errMsg) + "\n"
	}

	out += "\n" + helpStyle.Render("esc back  tab next field  enter save")
	return out
}

func (m noteFormModel) reset() noteFormModel {
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
