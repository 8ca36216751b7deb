package password

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	sqlite3 "github.com/mattn/go-sqlite3"
)

var (
	// ErrUserExists is returned when registering a username that is taken.
	ErrUserExists = errors.New("user already exists")

	// ErrUserNotFound is returned when authenticating an unknown username.
	ErrUserNotFound = errors.New("user not found")
)

// Store persists credential records in SQLite so the hashing scheme has a
// realistic home: only the salt and the two hashes are ever written, never
// the password or the pepper.
type Store struct {
	db     *sql.DB
	pepper []byte
}

// OpenStore opens (creating if needed) the credential database at path.
func OpenStore(path string, pepper []byte) (*Store, error) {
	if len(pepper) == 0 {
		return nil, ErrEmptyPepper
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	schema := `
	CREATE TABLE IF NOT EXISTS users (
		id            TEXT PRIMARY KEY,
		username      TEXT NOT NULL UNIQUE,
		salt          TEXT NOT NULL,
		password_hash TEXT NOT NULL,
		bcrypt_hash   TEXT NOT NULL,
		created_at    DATETIME NOT NULL
	);`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Store{db: db, pepper: pepper}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// Register creates a credential record for username and returns the new
// user's id. The password is stored both as a peppered HMAC-SHA-256 hash
// and as a bcrypt hash, so the demos can compare the two schemes against
// the same record. Username uniqueness is enforced by the database, so
// concurrent registrations of the same name cannot both succeed.
func (s *Store) Register(username, pass string) (string, error) {
	salt, err := GenerateSalt(DefaultSaltLength)
	if err != nil {
		return "", err
	}
	peppered, err := Hash(pass, salt, s.pepper)
	if err != nil {
		return "", err
	}
	bhash, err := BcryptHash(pass)
	if err != nil {
		return "", err
	}

	id := uuid.NewString()
	_, err = s.db.Exec(
		"INSERT INTO users (id, username, salt, password_hash, bcrypt_hash, created_at) VALUES (?, ?, ?, ?, ?, ?)",
		id, username, salt, peppered, bhash, time.Now().UTC(),
	)
	if err != nil {
		var sqlErr sqlite3.Error
		if errors.As(err, &sqlErr) && sqlErr.ExtendedCode == sqlite3.ErrConstraintUnique {
			return "", fmt.Errorf("%w: %q", ErrUserExists, username)
		}
		return "", err
	}
	return id, nil
}

// Authenticate verifies a password against the stored record. Both the
// peppered hash and the bcrypt hash must match.
func (s *Store) Authenticate(username, pass string) (bool, error) {
	var salt, peppered, bhash string
	err := s.db.QueryRow(
		"SELECT salt, password_hash, bcrypt_hash FROM users WHERE username = ?", username,
	).Scan(&salt, &peppered, &bhash)
	if errors.Is(err, sql.ErrNoRows) {
		return false, fmt.Errorf("%w: %q", ErrUserNotFound, username)
	}
	if err != nil {
		return false, err
	}

	ok, err := Verify(pass, salt, peppered, s.pepper)
	if err != nil {
		return false, err
	}
	return ok && BcryptVerify(pass, bhash), nil
}
