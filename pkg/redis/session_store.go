package redis

import (
	"context"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"io"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"keygate.backend/internal/domain/entities"
	domainerrors "keygate.backend/internal/domain/errors"
)

const sessionKeyPrefix = "session:"

// SessionStore persists session records in Redis. The record body is
// AES-GCM encrypted at rest; the token itself stays the lookup key. Key TTL
// acts as a backstop for the expiry window enforced at validation time.
type SessionStore struct {
	encryptionKey []byte
}

var (
	setSessionValue = Set
	getSessionValue = Get
	delSessionValue = Del
)

// NewSessionStore creates a new session store
func NewSessionStore(encryptionKeyHex string) (*SessionStore, error) {
	key, err := hex.DecodeString(encryptionKeyHex)
	if err != nil {
		return nil, errors.New("invalid encryption key hex")
	}
	if len(key) != 32 {
		return nil, errors.New("encryption key must be 32 bytes (64 hex chars)")
	}
	return &SessionStore{encryptionKey: key}, nil
}

// CreateSession stores an encrypted session record with the given TTL
func (s *SessionStore) CreateSession(ctx context.Context, session *entities.Session, ttl time.Duration) error {
	jsonData, err := json.Marshal(session)
	if err != nil {
		return err
	}

	encryptedData, err := s.encrypt(jsonData)
	if err != nil {
		return err
	}

	return setSessionValue(ctx, sessionKeyPrefix+session.Token, encryptedData, ttl)
}

// GetSession retrieves and decrypts a session record by its token.
// Returns domain ErrNotFound when the token is absent or already expired.
func (s *SessionStore) GetSession(ctx context.Context, token string) (*entities.Session, error) {
	encryptedDataStr, err := getSessionValue(ctx, sessionKeyPrefix+token)
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}

	decryptedData, err := s.decrypt(encryptedDataStr)
	if err != nil {
		return nil, err
	}

	var session entities.Session
	if err := json.Unmarshal(decryptedData, &session); err != nil {
		return nil, err
	}
	session.Token = token

	return &session, nil
}

// TouchSession rewrites the record with the remaining TTL. Callers pass the
// window minus the session age, so a touch never pushes expiry out.
func (s *SessionStore) TouchSession(ctx context.Context, session *entities.Session, ttl time.Duration) error {
	return s.CreateSession(ctx, session, ttl)
}

// DeleteSession removes a session. Deleting an absent token is not an error.
func (s *SessionStore) DeleteSession(ctx context.Context, token string) error {
	_, err := delSessionValue(ctx, sessionKeyPrefix+token)
	return err
}

func (s *SessionStore) encrypt(plaintext []byte) (string, error) {
	block, err := aes.NewCipher(s.encryptionKey)
	if err != nil {
		return "", err
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return "", err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", err
	}

	ciphertext := gcm.Seal(nonce, nonce, plaintext, nil)
	return hex.EncodeToString(ciphertext), nil
}

func (s *SessionStore) decrypt(ciphertextHex string) ([]byte, error) {
	ciphertext, err := hex.DecodeString(ciphertextHex)
	if err != nil {
		return nil, err
	}

	block, err := aes.NewCipher(s.encryptionKey)
	if err != nil {
		return nil, err
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}

	if len(ciphertext) < gcm.NonceSize() {
		return nil, errors.New("ciphertext too short")
	}

	nonce, ciphertext := ciphertext[:gcm.NonceSize()], ciphertext[gcm.NonceSize():]
	return gcm.Open(nil, nonce, ciphertext, nil)
}
