package tui

import (
	"fmt"

	"github.com/notetaker/notetaker/models"
)

type dashboardModel struct {
	account models.Account
	notes   []models.Note
	idx     int
	status  string
}

func newDashboardModel() dashboardModel {
	return dashboardModel{}
}

func (m dashboardModel) current() (models.Note, bool) {
	if len(m.notes) == 0 || m.idx < 0 || m.idx >= len(m.notes) {
		return models.Note{}, false
	}
	return m.notes[m.idx], true
}

func (m dashboardModel) clampIdx() dashboardModel {
	if m.idx >= len(m.notes) {
		m.idx = len(m.notes) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
	return m
}

func (m dashboardModel) View() string {
	out := fmt.Sprintf("NoteTaker — %s <%s>\n\n", m.account.Name, m.account.Email)

	if len(m.notes) == 0 {
		out += "No notes yet. Press n to create your first note.\n"
	} else {
		for i, note := range m.notes {
			cursor := "  "
			if i == m.idx {
				cursor = "> "
			}
			out += fmt.Sprintf("%s%s  %s\n", cursor, note.CreatedAt.Format("2006-01-02"), fitText(note.Title, 40))
		}

		if selected, ok := m.current(); ok {
			out += "\n" + uiDivider + "\n"
			out += selected.Title + "\n\n"
			out += selected.Content + "\n"
		}
	}

	if m.status != "" {
		out += "\n" + m.status + "\n"
	}

	out += "\n" + helpStyle.Render("n new  d delete  c copy  l logout  q quit")
	return out
}
