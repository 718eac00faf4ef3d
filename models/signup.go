package models

// PendingAccount is an account draft awaiting OTP confirmation. It lives
// only in memory between signup submission and OTP verification; it is
// never persisted. At most one pending account exists at a time — a new
// signup attempt replaces the previous draft.
type PendingAccount struct {
	// Account is the fully built account that will be committed once the
	// challenge is confirmed. Its credential is already encoded.
	Account Account

	// OTP is the generated one-time passcode for this draft.
	OTP string
}

// Challenge is the caller-facing result of starting or re-sending a
// signup confirmation. The UI is responsible for presenting the OTP to
// the user; the core only hands the values back.
type Challenge struct {
	// Email is the address the passcode is addressed to.
	Email string

	// OTP is the generated 6-digit passcode.
	OTP string
}
