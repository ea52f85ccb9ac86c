// Package tokenstore keeps the CLI's session token between invocations. The
// OS keyring is preferred; a private file is used where no keyring exists.
package tokenstore

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/nfrund/instaclone/internal/domain"
	"github.com/spf13/afero"
	"github.com/zalando/go-keyring"
)

const (
	keyringService = "instaclone"
	keyringUser    = "session"
)

// ErrNoToken means no session is stored.
var ErrNoToken = errors.New("no stored session")

// Keyring is the subset of the OS keyring the store needs.
type Keyring interface {
	Set(service, user, password string) error
	Get(service, user string) (string, error)
	Delete(service, user string) error
}

// SystemKeyring is the OS keyring.
type SystemKeyring struct{}

func (SystemKeyring) Set(service, user, password string) error {
	return keyring.Set(service, user, password)
}

func (SystemKeyring) Get(service, user string) (string, error) {
	return keyring.Get(service, user)
}

func (SystemKeyring) Delete(service, user string) error {
	return keyring.Delete(service, user)
}

// Store saves and loads the session token.
type Store struct {
	keyring Keyring
	fs      afero.Fs
	path    string
	logger  *slog.Logger
}

var _ domain.SessionInitializer = (*Store)(nil)

// New returns a Store using kr, falling back to the file at path on fsys.
func New(kr Keyring, fsys afero.Fs, path string, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{keyring: kr, fs: fsys, path: path, logger: logger}
}

// Default returns a Store on the OS keyring with a fallback file in the user
// config directory.
func Default(logger *slog.Logger) (*Store, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return nil, fmt.Errorf("locate config dir: %w", err)
	}
	return New(SystemKeyring{}, afero.NewOsFs(), filepath.Join(dir, "instaclone", "token"), logger), nil
}

// Init implements domain.SessionInitializer by saving token.
func (s *Store) Init(_ context.Context, token string) error {
	return s.Save(token)
}

// Save stores token, replacing any previous one.
func (s *Store) Save(token string) error {
	err := s.keyring.Set(keyringService, keyringUser, token)
	if err == nil {
		// A stale file would shadow nothing but should not linger either.
		s.removeFile()
		return nil
	}
	s.logger.Debug("Keyring unavailable, storing token in file", "path", s.path, "error", err)

	if err := s.fs.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("create token dir: %w", err)
	}
	if err := afero.WriteFile(s.fs, s.path, []byte(token), 0o600); err != nil {
		return fmt.Errorf("write token file: %w", err)
	}
	return nil
}

// Load returns the stored token or ErrNoToken.
func (s *Store) Load() (string, error) {
	token, err := s.keyring.Get(keyringService, keyringUser)
	if err == nil && token != "" {
		return token, nil
	}
	if err != nil && !errors.Is(err, keyring.ErrNotFound) {
		s.logger.Debug("Keyring unavailable, reading token file", "path", s.path, "error", err)
	}

	data, err := afero.ReadFile(s.fs, s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", ErrNoToken
	}
	if err != nil {
		return "", fmt.Errorf("read token file: %w", err)
	}
	token = strings.TrimSpace(string(data))
	if token == "" {
		return "", ErrNoToken
	}
	return token, nil
}

// Delete removes the token from both the keyring and the file.
func (s *Store) Delete() error {
	if err := s.keyring.Delete(keyringService, keyringUser); err != nil && !errors.Is(err, keyring.ErrNotFound) {
		s.logger.Debug("Keyring delete failed", "error", err)
	}
	return s.removeFile()
}

func (s *Store) removeFile() error {
	if err := s.fs.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove token file: %w", err)
	}
	return nil
}
