// Package oskeyring wraps the operating system keyring behind a small
// interface so that commands can be tested with an in-memory fake.
package oskeyring

import (
	"errors"
	"fmt"
	"sync"

	keyringlib "github.com/zalando/go-keyring"
)

// ErrNotFound is returned by Get when the requested secret is not stored.
var ErrNotFound = errors.New("secret not found in keyring")

// Service is the set of keyring operations teamdir needs.
type Service interface {
	// Get retrieves a secret for a given service and key. It returns
	// ErrNotFound if the secret is not stored.
	Get(service, key string) (string, error)
	// Set stores a secret for a given service and key.
	Set(service, key, secret string) error
	// Delete removes a secret. Deleting a missing secret is not an error.
	Delete(service, key string) error
}

// DefaultService stores secrets in the operating system keyring.
type DefaultService struct{}

// NewDefaultService creates a new DefaultService.
func NewDefaultService() *DefaultService {
	return &DefaultService{}
}

// Get implements the Service interface.
func (s *DefaultService) Get(service, key string) (string, error) {
	secret, err := keyringlib.Get(service, key)
	if err != nil {
		if errors.Is(err, keyringlib.ErrNotFound) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("reading secret from OS keyring: %w", err)
	}
	return secret, nil
}

// Set implements the Service interface.
func (s *DefaultService) Set(service, key, secret string) error {
	return keyringlib.Set(service, key, secret)
}

// Delete implements the Service interface.
func (s *DefaultService) Delete(service, key string) error {
	err := keyringlib.Delete(service, key)
	if errors.Is(err, keyringlib.ErrNotFound) {
		return nil
	}
	return err
}

var _ Service = (*DefaultService)(nil)

// MemoryService is an in-memory Service implementation for tests.
type MemoryService struct {
	mu    sync.RWMutex
	store map[string]map[string]string
}

// NewMemoryService creates a new MemoryService.
func NewMemoryService() *MemoryService {
	return &MemoryService{store: make(map[string]map[string]string)}
}

// Get implements the Service interface.
func (s *MemoryService) Get(service, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if keys, ok := s.store[service]; ok {
		if secret, ok := keys[key]; ok {
			return secret, nil
		}
	}
	return "", ErrNotFound
}

// Set implements the Service interface.
func (s *MemoryService) Set(service, key, secret string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.store[service]; !ok {
		s.store[service] = make(map[string]string)
	}
	s.store[service][key] = secret
	return nil
}

// Delete implements the Service interface.
func (s *MemoryService) Delete(service, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if keys, ok := s.store[service]; ok {
		delete(keys, key)
	}
	return nil
}

var _ Service = (*MemoryService)(nil)
