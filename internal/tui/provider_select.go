package tui

import "github.com/notetaker/notetaker/models"

type providerSelectModel struct {
	profiles []models.ProviderProfile
	idx      int
	errMsg   string
}

func newProviderSelectModel(profiles []models.ProviderProfile) providerSelectModel {
	return providerSelectModel{profiles: profiles}
}

func (m providerSelectModel) current() (models.ProviderProfile, bool) {
	if len(m.profiles) == 0 || m.idx < 0 || m.idx >= len(m.profiles) {
		return models.ProviderProfile{}, false
	}
	return m.profiles[m.idx], true
}

func (m providerSelectModel) View() string {
	out := viewTitle("Continue with Google")
	out += "\nChoose a Google account:\n\n"
	for i, profile := range m.profiles {
		cursor := "  "
		if i == m.idx {
			cursor = "> "
		}
		out += cursor + profile.Name + " <" + profile.Email + ">\n"
	}

	if m.errMsg != "" {
		out += "\n" + errorStyle.Render(m.errMsg) + "\n"
	}

	out += "\n" + helpStyle.Render("esc back  enter continue")
	return out
}
