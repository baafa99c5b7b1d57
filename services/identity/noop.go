package identity

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
)

// NoopProvider keeps accounts in memory. It backs local development and tests
// when no identity provider is configured.
type NoopProvider struct {
	mu       sync.Mutex
	byEmail  map[string]string
	subjects map[string]string
}

func NewNoopProvider() *NoopProvider {
	return &NoopProvider{byEmail: map[string]string{}, subjects: map[string]string{}}
}

func (p *NoopProvider) CreateUser(_ context.Context, reg UserRegistration) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if _, ok := p.byEmail[reg.Email]; ok {
		return "", ErrIdentityConflict
	}
	subject := uuid.New().String()
	p.byEmail[reg.Email] = subject
	p.subjects[subject] = reg.Email
	return subject, nil
}

func (p *NoopProvider) DeleteUser(_ context.Context, subject string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	email, ok := p.subjects[subject]
	if !ok {
		return errors.New("unknown subject")
	}
	delete(p.subjects, subject)
	delete(p.byEmail, email)
	return nil
}
