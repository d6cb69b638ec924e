package keyring

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/zalando/go-keyring"

	"github.com/julianstephens/datefmt/internal/constants"
)

var (
	// ErrNotFound is returned when no connection string is stored
	ErrNotFound = errors.New("connection string not found in keyring")
	// ErrKeyringUnavailable is returned when the OS keyring cannot be reached
	ErrKeyringUnavailable = errors.New("OS keyring is not available")
)

// Entry addresses one secret in the OS keyring.
type Entry struct {
	Service string
	User    string
}

// ConnectionEntry is where the PostgreSQL connection string is kept.
var ConnectionEntry = Entry{Service: constants.AppName, User: constants.DefaultKeyringUser}

// Get returns the stored secret, or ErrNotFound.
func (e Entry) Get() (string, error) {
	secret, err := keyring.Get(e.Service, e.User)
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("%w: %v", ErrKeyringUnavailable, err)
	}
	return secret, nil
}

// Set stores secret, replacing any previous value.
func (e Entry) Set(secret string) error {
	if strings.TrimSpace(secret) == "" {
		return errors.New("connection string cannot be empty")
	}
	if err := keyring.Set(e.Service, e.User, secret); err != nil {
		return fmt.Errorf("failed to store connection string in keyring: %w", err)
	}
	return nil
}

// Delete removes the secret. Deleting a missing entry returns ErrNotFound.
func (e Entry) Delete() error {
	if err := keyring.Delete(e.Service, e.User); err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete connection string from keyring: %w", err)
	}
	return nil
}

// GetConnectionString returns the PostgreSQL connection string from the OS keyring.
func GetConnectionString() (string, error) {
	return ConnectionEntry.Get()
}

// SetConnectionString stores the PostgreSQL connection string in the OS keyring.
func SetConnectionString(connStr string) error {
	return ConnectionEntry.Set(connStr)
}

// DeleteConnectionString removes the PostgreSQL connection string from the OS keyring.
func DeleteConnectionString() error {
	return ConnectionEntry.Delete()
}

// IsAvailable reports whether the OS keyring answers a read. An empty keyring counts as available.
func IsAvailable() bool {
	_, err := keyring.Get(constants.AppName, "availability-probe")
	return err == nil || errors.Is(err, keyring.ErrNotFound)
}

// Describe returns the connection string with the user name hidden, for display.
// DSN-style strings are reduced to their host and dbname keys.
func Describe(connStr string) string {
	if strings.HasPrefix(connStr, "postgres://") || strings.HasPrefix(connStr, "postgresql://") {
		u, err := url.Parse(connStr)
		if err != nil {
			return "<unparseable connection string>"
		}
		if u.User != nil {
			u.User = url.User("redacted")
		}
		u.RawQuery = ""
		return u.String()
	}

	var kept []string
	for _, pair := range strings.Fields(connStr) {
		key, _, ok := strings.Cut(pair, "=")
		if !ok {
			continue
		}
		switch strings.ToLower(key) {
		case "host", "port", "dbname":
			kept = append(kept, pair)
		}
	}
	if len(kept) == 0 {
		return "<dsn>"
	}
	return strings.Join(kept, " ")
}
