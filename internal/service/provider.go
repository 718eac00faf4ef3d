package service

import "github.com/notetaker/notetaker/models"

// fixedProviderRoster is an in-memory stand-in for a federated identity
// provider: a fixed list of resolvable provider accounts.
type fixedProviderRoster struct {
	profiles []models.ProviderProfile
}

// NewProviderRoster builds a roster over the given profiles.
func NewProviderRoster(profiles []models.ProviderProfile) ProviderRoster {
	return &fixedProviderRoster{profiles: profiles}
}

// NewDemoProviderRoster returns the two demo provider accounts the
// picker UI offers.
func NewDemoProviderRoster() ProviderRoster {
	return NewProviderRoster([]models.ProviderProfile{
		{
			ProviderAccountID: "google_user_1",
			Email:             "demouser1@gmail.com",
			Name:              "Demo-1234",
		},
		{
			ProviderAccountID: "google_user_2",
			Email:             "demouser2@gmail.com",
			Name:              "Demo-123",
		},
	})
}

func (r *fixedProviderRoster) Resolve(providerAccountID string) (models.ProviderProfile, error) {
	for _, profile := range r.profiles {
		if profile.ProviderAccountID == providerAccountID {
			return profile, nil
		}
	}

	return models.ProviderProfile{}, ErrUnknownProviderAccount
}

func (r *fixedProviderRoster) Profiles() []models.ProviderProfile {
	profiles := make([]models.ProviderProfile, len(r.profiles))
	copy(profiles, r.profiles)

	return profiles
}
