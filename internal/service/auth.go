package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/notetaker/notetaker/internal/logger"
	"github.com/notetaker/notetaker/internal/store"
	"github.com/notetaker/notetaker/models"
)

// AuthService drives the signup, signin, OTP, and federated-login flows
// and owns the pending-account state. All four login paths funnel
// through establishSession, so the post-login effects are identical
// regardless of entry path.
type AuthService struct {
	accounts    store.AccountRepository
	notes       store.NoteRepository
	tokens      store.SessionTokenRepository
	credentials CredentialCodec
	tokenCodec  TokenCodec
	roster      ProviderRoster
	ids         IDGenerator
	session     *activeSession
	logger      *logger.Logger

	mu      sync.Mutex
	pending *models.PendingAccount

	// overridable in tests for deterministic passcodes
	generateOTP func() string
}

// NewAuthService wires the auth orchestrator. session is the shared
// process-wide session state owned by the composition root.
func NewAuthService(
	storages *store.Storages,
	credentials CredentialCodec,
	tokenCodec TokenCodec,
	roster ProviderRoster,
	ids IDGenerator,
	session *activeSession,
	log *logger.Logger,
) *AuthService {
	return &AuthService{
		accounts:    storages.Accounts,
		notes:       storages.Notes,
		tokens:      storages.SessionToken,
		credentials: credentials,
		tokenCodec:  tokenCodec,
		roster:      roster,
		ids:         ids,
		session:     session,
		logger:      log,
		generateOTP: generateOTP,
	}
}

// BeginSignUp validates the signup form and, on success, stores a
// pending account and returns the OTP challenge for display. The
// account store is not touched until the challenge is verified.
//
// Every violated rule is reported in the returned *ValidationError, not
// just the first one, so the caller can show all field errors at once.
func (s *AuthService) BeginSignUp(ctx context.Context, name, email, password string) (models.Challenge, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)

	validation := &ValidationError{}

	if !validDisplayName(name) {
		validation.add("name", "name must be at least 2 characters")
	}
	if !validEmail(email) {
		validation.add("email", "enter a valid email address")
	}
	if !validPassword(password) {
		validation.add("password", "password must be at least 8 characters with uppercase, lowercase, and number")
	}
	if _, err := s.accounts.FindByEmail(ctx, email); err == nil {
		validation.add("email", "an account with this email already exists")
	}

	if validation.hasErrors() {
		return models.Challenge{}, validation
	}

	otp := s.generateOTP()
	pending := &models.PendingAccount{
		Account: models.Account{
			AccountID:  s.ids.Generate(),
			Email:      email,
			Name:       name,
			AuthKind:   models.AuthKindPassword,
			Credential: s.credentials.Encode(password),
			CreatedAt:  time.Now().UTC(),
		},
		OTP: otp,
	}

	s.mu.Lock()
	s.pending = pending
	s.mu.Unlock()

	s.logger.Info().
		Str("func", "AuthService.BeginSignUp").
		Str("email", email).
		Msg("sign-up challenge issued")

	return models.Challenge{Email: email, OTP: otp}, nil
}

// ResendOTP regenerates the passcode for the signup in progress.
func (s *AuthService) ResendOTP(ctx context.Context) (models.Challenge, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.pending == nil {
		return models.Challenge{}, ErrNoPendingSignUp
	}

	s.pending.OTP = s.generateOTP()

	s.logger.Info().
		Str("func", "AuthService.ResendOTP").
		Str("email", s.pending.Account.Email).
		Msg("sign-up challenge re-issued")

	return models.Challenge{Email: s.pending.Account.Email, OTP: s.pending.OTP}, nil
}

// VerifyOTP completes the signup in progress: it commits the pending
// account and logs it in.
//
// Any syntactically valid 6-digit code passes; the generated passcode
// is handed to the caller for display but is never compared against the
// entered value.
func (s *AuthService) VerifyOTP(ctx context.Context, code string) (models.Session, error) {
	s.mu.Lock()
	pending := s.pending
	s.mu.Unlock()

	if pending == nil {
		return models.Session{}, ErrNoPendingSignUp
	}

	code = strings.TrimSpace(code)
	if !otpPattern.MatchString(code) {
		validation := &ValidationError{}
		validation.add("otp", "verification code must be 6 digits")
		return models.Session{}, validation
	}

	if err := s.accounts.Add(ctx, pending.Account); err != nil {
		if errors.Is(err, store.ErrEmailAlreadyRegistered) {
			return models.Session{}, ErrDuplicateEmail
		}
		return models.Session{}, fmt.Errorf("commit pending account: %w", err)
	}

	s.mu.Lock()
	s.pending = nil
	s.mu.Unlock()

	s.logger.Info().
		Str("func", "AuthService.VerifyOTP").
		Str("email", pending.Account.Email).
		Msg("account created")

	return s.establishSession(ctx, pending.Account)
}

// SignIn authenticates a password-based account. All credential
// failures return the same ErrInvalidCredentials so callers cannot tell
// which part was wrong.
func (s *AuthService) SignIn(ctx context.Context, email, password string) (models.Session, error) {
	email = strings.TrimSpace(email)

	validation := &ValidationError{}
	if !validEmail(email) {
		validation.add("email", "enter a valid email address")
	}
	if password == "" {
		validation.add("password", "password is required")
	}
	if validation.hasErrors() {
		return models.Session{}, validation
	}

	account, err := s.accounts.FindByEmail(ctx, email)
	if err != nil {
		return models.Session{}, ErrInvalidCredentials
	}

	if !account.IsPasswordBased() || !s.credentials.Matches(password, account.Credential) {
		return models.Session{}, ErrInvalidCredentials
	}

	s.logger.Info().
		Str("func", "AuthService.SignIn").
		Str("email", email).
		Msg("signed in")

	return s.establishSession(ctx, account)
}

// SignInWithProvider performs the simulated federated login. An
// existing account with the provider's email is reused whatever its
// auth kind; otherwise a new federated account is registered. Once the
// provider account id resolves, a session is always produced.
func (s *AuthService) SignInWithProvider(ctx context.Context, providerAccountID string) (models.Session, error) {
	profile, err := s.roster.Resolve(providerAccountID)
	if err != nil {
		return models.Session{}, err
	}

	account, err := s.accounts.FindByEmail(ctx, profile.Email)
	if err != nil {
		account = models.Account{
			AccountID: s.ids.Generate(),
			Email:     profile.Email,
			Name:      profile.Name,
			AuthKind:  models.AuthKindFederated,
			CreatedAt: time.Now().UTC(),
		}
		if addErr := s.accounts.Add(ctx, account); addErr != nil {
			return models.Session{}, fmt.Errorf("register federated account: %w", addErr)
		}
	}

	s.logger.Info().
		Str("func", "AuthService.SignInWithProvider").
		Str("provider_account_id", providerAccountID).
		Msg("federated sign-in")

	return s.establishSession(ctx, account)
}

// SignOut clears the active session, its cached note partition, and the
// stored token. Persisted collections are untouched.
func (s *AuthService) SignOut(ctx context.Context) error {
	if err := s.tokens.Clear(ctx); err != nil {
		s.logger.Err(err).Str("func", "AuthService.SignOut").Msg("failed to clear stored token")
	}

	s.session.clear()

	return nil
}

// RestoreSession recovers the session from the stored token at startup.
// A missing, malformed, expired, or unresolvable token is discarded
// silently: the caller just sees "no session", never an error.
func (s *AuthService) RestoreSession(ctx context.Context) (models.Session, bool) {
	token, err := s.tokens.Load(ctx)
	if err != nil {
		return models.Session{}, false
	}

	claims, err := s.tokenCodec.Verify(token)
	if err != nil {
		s.discardStoredToken(ctx)
		return models.Session{}, false
	}

	accountID, err := claims.GetAccountID()
	if err != nil {
		s.discardStoredToken(ctx)
		return models.Session{}, false
	}

	account, err := s.accounts.FindByID(ctx, accountID)
	if err != nil {
		s.discardStoredToken(ctx)
		return models.Session{}, false
	}

	notes, err := s.notes.AllForOwner(ctx, account.AccountID)
	if err != nil {
		notes = nil
	}
	s.session.set(account, notes)

	s.logger.Info().
		Str("func", "AuthService.RestoreSession").
		Str("email", account.Email).
		Msg("session restored")

	return models.Session{Account: account, Token: token, Notes: notes}, true
}

// CurrentAccount returns the authenticated account, if any.
func (s *AuthService) CurrentAccount() (models.Account, bool) {
	return s.session.current()
}

// CurrentNotes returns the active account's note partition in creation
// order. Empty when nobody is logged in.
func (s *AuthService) CurrentNotes() []models.Note {
	return s.session.partition()
}

// Roster exposes the federated provider roster for the picker UI.
func (s *AuthService) Roster() ProviderRoster {
	return s.roster
}

// establishSession is the single choke point every login path funnels
// through: it activates the session, issues and persists the token, and
// loads the owner's note partition.
func (s *AuthService) establishSession(ctx context.Context, account models.Account) (models.Session, error) {
	token, err := s.tokenCodec.Issue(account)
	if err != nil {
		return models.Session{}, fmt.Errorf("issue session token: %w", err)
	}

	if err = s.tokens.Save(ctx, token); err != nil {
		// the in-memory session stays valid even if the token cannot be
		// persisted; only restart recovery is lost
		s.logger.Err(err).Str("func", "AuthService.establishSession").Msg("failed to persist session token")
	}

	notes, err := s.notes.AllForOwner(ctx, account.AccountID)
	if err != nil {
		notes = nil
	}

	s.session.set(account, notes)

	return models.Session{Account: account, Token: token, Notes: notes}, nil
}

func (s *AuthService) discardStoredToken(ctx context.Context) {
	if err := s.tokens.Clear(ctx); err != nil {
		s.logger.Err(err).Str("func", "AuthService.discardStoredToken").Msg("failed to discard stored token")
	}
}
