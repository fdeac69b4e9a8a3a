package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"unicode/utf8"

	"github.com/Freeeeeet/mathtutor_bot/internal/repository"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const (
	// PassphraseKey ключ хранилища для хэша пароля
	PassphraseKey = "mathtutor_auth_pin"

	// MinPassphraseLength минимальная длина пароля в символах
	MinPassphraseLength = 4

	// schemeSHA256 пароль перед bcrypt сводится к hex(sha256), bcrypt читает не больше 72 байт
	schemeSHA256 = "sha256-bcrypt"
)

// passphraseRecord хранится как JSON: postgres-хранилище принимает только jsonb.
// Пустой Scheme означает bcrypt от исходной строки.
type passphraseRecord struct {
	Hash   string `json:"hash"`
	Scheme string `json:"scheme,omitempty"`
}

func prehash(pin string) []byte {
	sum := sha256.Sum256([]byte(pin))
	return []byte(hex.EncodeToString(sum[:]))
}

// AuthService локальный пароль на вход. Это защита от случайного
// просмотра, а не аутентификация: нет ограничения попыток и восстановления.
type AuthService struct {
	store  repository.BlobStore
	logger *zap.Logger
	cost   int

	mu       sync.RWMutex
	sessions map[int64]bool
}

// NewAuthService создает новый сервис
func NewAuthService(store repository.BlobStore, logger *zap.Logger) *AuthService {
	return &AuthService{
		store:    store,
		logger:   logger,
		cost:     bcrypt.DefaultCost,
		sessions: make(map[int64]bool),
	}
}

// HasPassphrase проверяет, задан ли пароль
func (s *AuthService) HasPassphrase(ctx context.Context) (bool, error) {
	_, err := s.store.Get(ctx, PassphraseKey)
	if errors.Is(err, repository.ErrBlobNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("load passphrase: %w", err)
	}
	return true, nil
}

// CreatePassphrase задаёт пароль при первом входе
func (s *AuthService) CreatePassphrase(ctx context.Context, pin string) error {
	exists, err := s.HasPassphrase(ctx)
	if err != nil {
		return err
	}
	if exists {
		return ErrPassphraseExists
	}
	return s.SetPassphrase(ctx, pin)
}

// SetPassphrase перезаписывает пароль без проверки существующего
func (s *AuthService) SetPassphrase(ctx context.Context, pin string) error {
	if utf8.RuneCountInString(pin) < MinPassphraseLength {
		return ErrPassphraseTooShort
	}

	hash, err := bcrypt.GenerateFromPassword(prehash(pin), s.cost)
	if err != nil {
		return fmt.Errorf("hash passphrase: %w", err)
	}

	raw, err := json.Marshal(passphraseRecord{Hash: string(hash), Scheme: schemeSHA256})
	if err != nil {
		return fmt.Errorf("marshal passphrase: %w", err)
	}

	if err := s.store.Put(ctx, PassphraseKey, raw); err != nil {
		return fmt.Errorf("store passphrase: %w", err)
	}

	s.logger.Info("Passphrase set")
	return nil
}

// Verify сравнивает введённый пароль с сохранённым
func (s *AuthService) Verify(ctx context.Context, pin string) (bool, error) {
	raw, err := s.store.Get(ctx, PassphraseKey)
	if errors.Is(err, repository.ErrBlobNotFound) {
		return false, ErrNoPassphrase
	}
	if err != nil {
		return false, fmt.Errorf("load passphrase: %w", err)
	}

	var rec passphraseRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		return false, fmt.Errorf("decode passphrase: %w", err)
	}

	secret := []byte(pin)
	if rec.Scheme == schemeSHA256 {
		secret = prehash(pin)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(rec.Hash), secret); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return false, nil
		}
		return false, fmt.Errorf("compare passphrase: %w", err)
	}
	return true, nil
}

// Reset удаляет пароль и завершает все сессии
func (s *AuthService) Reset(ctx context.Context) error {
	if err := s.store.Delete(ctx, PassphraseKey); err != nil {
		return fmt.Errorf("delete passphrase: %w", err)
	}

	s.mu.Lock()
	s.sessions = make(map[int64]bool)
	s.mu.Unlock()

	s.logger.Warn("Passphrase reset")
	return nil
}

// Authenticate отмечает пользователя вошедшим до конца работы процесса
func (s *AuthService) Authenticate(telegramID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[telegramID] = true
}

// IsAuthenticated проверяет флаг сессии
func (s *AuthService) IsAuthenticated(telegramID int64) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sessions[telegramID]
}

// Logout сбрасывает флаг сессии
func (s *AuthService) Logout(telegramID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, telegramID)
}
