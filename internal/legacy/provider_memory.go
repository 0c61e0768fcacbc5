package legacy

import (
	"context"
	"crypto/rand"
	"crypto/sha1"
	"crypto/subtle"
	"encoding/hex"
	"strings"
	"sync"

	"passgate/pkg/platform/sentinel"
	dErrors "passgate/pkg/domain-errors"
)

// Account is a credential record held by the in-memory provider. When the
// provider is configured for retrieval the plaintext is kept alongside the
// hash, matching how retrievable legacy stores behave.
type Account struct {
	Username  string
	Question  string
	Answer    string
	salt      []byte
	hash      string
	plaintext string
}

// MemoryProvider is a Provider backed by an in-process map. It exists for
// tests and dev wiring; real deployments plug in whatever legacy system the
// account lives on.
type MemoryProvider struct {
	mu       sync.RWMutex
	settings Settings
	accounts map[string]*Account
}

// NewMemoryProvider builds an empty provider with the given settings.
func NewMemoryProvider(settings Settings) *MemoryProvider {
	return &MemoryProvider{
		settings: settings,
		accounts: make(map[string]*Account),
	}
}

// AddAccount registers an account with its initial password and optional
// question/answer pair.
func (p *MemoryProvider) AddAccount(username, password, question, answer string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	acct := &Account{Username: username, Question: question, Answer: answer}
	p.store(acct, password)
	p.accounts[strings.ToLower(username)] = acct
}

func (p *MemoryProvider) Settings() Settings {
	return p.settings
}

func (p *MemoryProvider) ResetPassword(ctx context.Context, username, answer, newPassword string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.settings.EnablePasswordReset {
		return dErrors.Wrap(sentinel.ErrUnsupported, dErrors.CodeUnsupported, "password reset is not enabled for this provider")
	}
	acct, ok := p.accounts[strings.ToLower(username)]
	if !ok {
		return dErrors.Wrap(sentinel.ErrNotFound, dErrors.CodeNotFound, "unknown user")
	}
	if p.settings.RequiresQuestionAndAnswer && !answerMatches(acct.Answer, answer) {
		return dErrors.New(dErrors.CodeUnauthorized, "incorrect password answer")
	}

	p.store(acct, newPassword)
	return nil
}

func (p *MemoryProvider) GetPassword(ctx context.Context, username, answer string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	p.mu.RLock()
	defer p.mu.RUnlock()

	if !p.settings.EnablePasswordRetrieval {
		return "", dErrors.Wrap(sentinel.ErrUnsupported, dErrors.CodeUnsupported, "password retrieval is not enabled for this provider")
	}
	acct, ok := p.accounts[strings.ToLower(username)]
	if !ok {
		return "", dErrors.Wrap(sentinel.ErrNotFound, dErrors.CodeNotFound, "unknown user")
	}
	if p.settings.RequiresQuestionAndAnswer && !answerMatches(acct.Answer, answer) {
		return "", dErrors.New(dErrors.CodeUnauthorized, "incorrect password answer")
	}
	return acct.plaintext, nil
}

func (p *MemoryProvider) ChangePassword(ctx context.Context, username, oldPassword, newPassword string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	acct, ok := p.accounts[strings.ToLower(username)]
	if !ok {
		return false, nil
	}
	if !acct.matches(oldPassword) {
		return false, nil
	}

	p.store(acct, newPassword)
	return true, nil
}

func (p *MemoryProvider) SetPassword(ctx context.Context, username, newPassword string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.settings.AllowManualPasswordChange {
		return false, dErrors.Wrap(sentinel.ErrUnsupported, dErrors.CodeUnsupported, "manual password change is not enabled for this provider")
	}
	acct, ok := p.accounts[strings.ToLower(username)]
	if !ok {
		return false, nil
	}

	p.store(acct, newPassword)
	return true, nil
}

// store replaces the account credential. Retrievable providers keep the
// plaintext; everyone gets a fresh salt and SHA-1 digest, which is what the
// legacy systems this mimics actually use.
func (p *MemoryProvider) store(acct *Account, password string) {
	salt := make([]byte, 16)
	_, _ = rand.Read(salt)
	acct.salt = salt
	acct.hash = digest(salt, password)
	if p.settings.EnablePasswordRetrieval {
		acct.plaintext = password
	} else {
		acct.plaintext = ""
	}
}

func (a *Account) matches(password string) bool {
	candidate := digest(a.salt, password)
	return subtle.ConstantTimeCompare([]byte(candidate), []byte(a.hash)) == 1
}

func digest(salt []byte, password string) string {
	h := sha1.New()
	h.Write(salt)
	h.Write([]byte(password))
	return hex.EncodeToString(h.Sum(nil))
}

// answerMatches compares answers case-insensitively, the way the legacy
// providers this wraps do.
func answerMatches(stored, given string) bool {
	return stored != "" && strings.EqualFold(strings.TrimSpace(stored), strings.TrimSpace(given))
}
