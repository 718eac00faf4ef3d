package models

// Session is the result of a successful login through any entry path
// (password signin, OTP verification, or federated login). All paths
// produce identical sessions.
type Session struct {
	// Account is the authenticated account.
	Account Account

	// Token is the encoded session token persisted for restart recovery.
	Token string

	// Notes is the owner's note partition at login time, in creation order.
	Notes []Note
}

// ProviderProfile is the identity data a federated provider exposes for
// one of its accounts. The roster of available profiles is fixed and
// injected; no real provider protocol is involved.
type ProviderProfile struct {
	// ProviderAccountID is the identifier assigned by the provider.
	ProviderAccountID string

	// Email is the address registered with the provider.
	Email string

	// Name is the display name registered with the provider.
	Name string
}
