// Package accounts owns the registered-account collection and the current
// session. All mutations go through the Store, which persists the full
// snapshot synchronously before returning, so the persisted state never lags
// the in-memory state.
package accounts

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/helpdesk/internal/common"
	"github.com/dmitrijs2005/helpdesk/internal/logging"
	"github.com/dmitrijs2005/helpdesk/internal/models"
	"github.com/dmitrijs2005/helpdesk/internal/storage"
	"github.com/dmitrijs2005/helpdesk/internal/validation"
	"github.com/google/uuid"
)

// snapshot is the persisted layout of the account store: every registered
// account plus the active session, if any.
type snapshot struct {
	Users   []models.Account `json:"users"`
	Session *models.Session  `json:"session,omitempty"`
}

type Store struct {
	mu            sync.Mutex
	storage       storage.Store
	log           logging.Logger
	secretKey     []byte
	tokenValidity time.Duration
	adminMobile   string

	users   []models.Account
	session *models.Session
}

// NewStore loads the auth snapshot (if present) and returns a ready store.
// The account registered under adminMobile holds the admin role; the grant
// is re-applied on every load, so changing the configured number takes
// effect on the next start. A loaded session whose token no longer verifies
// is cleared.
func NewStore(st storage.Store, log logging.Logger, secretKey []byte, tokenValidity time.Duration, adminMobile string) (*Store, error) {
	s := &Store{
		storage:       st,
		log:           log.With("component", "accounts"),
		secretKey:     secretKey,
		tokenValidity: tokenValidity,
		adminMobile:   adminMobile,
	}

	var snap snapshot
	found, err := st.Load(storage.AuthSnapshot, &snap)
	if err != nil {
		return nil, fmt.Errorf("load auth snapshot: %w", err)
	}
	if found {
		s.users = snap.Users
		s.session = snap.Session
	}

	if adminMobile != "" {
		for i := range s.users {
			if s.users[i].Mobile == adminMobile {
				s.users[i].Role = models.RoleAdmin
			}
		}
		if s.session != nil && s.session.Account.Mobile == adminMobile {
			s.session.Account.Role = models.RoleAdmin
		}
	}

	if s.session != nil {
		if _, err := AccountIDFromToken(s.session.Token, secretKey); err != nil {
			s.log.Info(context.Background(), "stale session cleared", "error", err)
			s.session = nil
			if err := s.persist(); err != nil {
				return nil, fmt.Errorf("clear stale session: %w", err)
			}
		}
	}
	return s, nil
}

func (s *Store) persist() error {
	return s.storage.Save(storage.AuthSnapshot, snapshot{Users: s.users, Session: s.session})
}

// CheckExists returns the account registered under the given mobile number.
func (s *Store) CheckExists(mobile string) (*models.Account, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.findByMobile(mobile)
}

func (s *Store) findByMobile(mobile string) (*models.Account, bool) {
	for i := range s.users {
		if s.users[i].Mobile == mobile {
			a := s.users[i]
			return &a, true
		}
	}
	return nil, false
}

// Register validates the signup input and appends a new account. The mobile
// number must not be registered yet; on conflict the collection is left
// unchanged and ErrDuplicateAccount is returned.
func (s *Store) Register(ctx context.Context, in validation.AccountInput) (*models.Account, error) {
	if errs := validation.ValidateAccountInput(in); !errs.Ok() {
		return nil, errs
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.findByMobile(in.Mobile); exists {
		return nil, common.ErrDuplicateAccount
	}

	role := models.RoleUser
	if s.adminMobile != "" && in.Mobile == s.adminMobile {
		role = models.RoleAdmin
	}

	salt := newSalt()
	account := models.Account{
		ID:               uuid.NewString(),
		Mobile:           in.Mobile,
		Username:         in.Username,
		PasswordSalt:     salt,
		PasswordVerifier: deriveVerifier([]byte(in.Password), salt),
		Role:             role,
		CreatedAt:        time.Now(),
	}

	s.users = append(s.users, account)
	if err := s.persist(); err != nil {
		s.users = s.users[:len(s.users)-1]
		return nil, err
	}

	s.log.Info(ctx, "account registered", "id", account.ID, "username", account.Username)
	return &account, nil
}

// Authenticate returns the account only when both the mobile number and the
// password match exactly. There is no lockout or backoff policy.
func (s *Store) Authenticate(ctx context.Context, mobile, password string) (*models.Account, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	account, ok := s.findByMobile(mobile)
	if !ok {
		return nil, false
	}
	if !verifyPassword([]byte(password), account.PasswordSalt, account.PasswordVerifier) {
		s.log.Warn(ctx, "authentication failed", "mobile", mobile)
		return nil, false
	}
	return account, true
}

// Login mints a session token for the account and installs it as the active
// session, replacing any prior one.
func (s *Store) Login(ctx context.Context, account models.Account) (*models.Session, error) {
	token, err := GenerateToken(account.ID, s.secretKey, s.tokenValidity)
	if err != nil {
		return nil, fmt.Errorf("mint session token: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	prior := s.session
	s.session = &models.Session{Account: account, Token: token, IssuedAt: time.Now()}
	if err := s.persist(); err != nil {
		s.session = prior
		return nil, err
	}

	s.log.Info(ctx, "logged in", "id", account.ID, "role", account.Role)
	session := *s.session
	return &session, nil
}

// Logout clears the session entirely.
func (s *Store) Logout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session == nil {
		return nil
	}
	prior := s.session
	s.session = nil
	if err := s.persist(); err != nil {
		s.session = prior
		return err
	}
	s.log.Info(ctx, "logged out")
	return nil
}

// CurrentSession returns a copy of the active session, if any.
func (s *Store) CurrentSession() (*models.Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session == nil {
		return nil, false
	}
	session := *s.session
	return &session, true
}

func (s *Store) IsAuthenticated() bool {
	_, ok := s.CurrentSession()
	return ok
}

// Role returns the active session's role, or RoleUser when nobody is
// logged in.
func (s *Store) Role() models.Role {
	session, ok := s.CurrentSession()
	if !ok {
		return models.RoleUser
	}
	return session.Account.Role
}

// UpdateAccount merges the editable profile fields into the session account
// and the matching collection entry. Mobile uniqueness is re-checked against
// all other accounts; on conflict nothing changes.
func (s *Store) UpdateAccount(ctx context.Context, username, mobile string) (*models.Account, error) {
	if errs := validation.ValidateProfileInput(username, mobile); !errs.Ok() {
		return nil, errs
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session == nil {
		return nil, common.ErrNoActiveSession
	}

	id := s.session.Account.ID
	idx := -1
	for i := range s.users {
		if s.users[i].ID == id {
			idx = i
			continue
		}
		if s.users[i].Mobile == mobile {
			return nil, common.ErrDuplicateAccount
		}
	}
	if idx == -1 {
		return nil, common.ErrNotFound
	}

	priorUser := s.users[idx]
	priorSession := *s.session

	s.users[idx].Username = username
	s.users[idx].Mobile = mobile
	s.session.Account = s.users[idx]

	if err := s.persist(); err != nil {
		s.users[idx] = priorUser
		*s.session = priorSession
		return nil, err
	}

	s.log.Info(ctx, "account updated", "id", id)
	account := s.users[idx]
	return &account, nil
}

// ChangePassword verifies the current password and replaces the stored
// credential on both the session and collection copies. The new password is
// re-salted.
func (s *Store) ChangePassword(ctx context.Context, currentPassword, newPassword string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session == nil {
		return common.ErrNoActiveSession
	}

	account := s.session.Account
	if !verifyPassword([]byte(currentPassword), account.PasswordSalt, account.PasswordVerifier) {
		return common.ErrIncorrectCredential
	}

	return s.setPassword(ctx, account.ID, newPassword)
}

// ResetPassword implements the forgot-password flow: the mobile number must
// belong to a registered account, which then gets the new credential.
func (s *Store) ResetPassword(ctx context.Context, mobile, newPassword string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	account, ok := s.findByMobile(mobile)
	if !ok {
		return common.ErrNotFound
	}
	return s.setPassword(ctx, account.ID, newPassword)
}

// setPassword re-salts and overwrites the credential of the account with the
// given id. Caller must hold the lock.
func (s *Store) setPassword(ctx context.Context, id, newPassword string) error {
	idx := -1
	for i := range s.users {
		if s.users[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return common.ErrNotFound
	}

	priorUser := s.users[idx]
	salt := newSalt()
	s.users[idx].PasswordSalt = salt
	s.users[idx].PasswordVerifier = deriveVerifier([]byte(newPassword), salt)

	var priorSession *models.Session
	if s.session != nil && s.session.Account.ID == id {
		copySession := *s.session
		priorSession = &copySession
		s.session.Account = s.users[idx]
	}

	if err := s.persist(); err != nil {
		s.users[idx] = priorUser
		if priorSession != nil {
			*s.session = *priorSession
		}
		return err
	}

	s.log.Info(ctx, "password changed", "id", id)
	return nil
}

// Accounts returns a copy of the registered accounts, registration order.
func (s *Store) Accounts() []models.Account {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Account, len(s.users))
	copy(out, s.users)
	return out
}
