package auth

import "github.com/AgriPanel/AP-Backend/internal/db"

// SessionStore persists issued tokens. It is not authoritative: handlers log
// and continue when a call fails, and validation has a stateless fallback.
type SessionStore interface {
	Create(s *Session) error
	Find(id string) (*Session, error)
	Delete(id string) error
}

// GormStore keeps sessions in the admin_sessions table.
type GormStore struct{}

func (GormStore) Create(s *Session) error {
	return db.DB.Create(s).Error
}

func (GormStore) Find(id string) (*Session, error) {
	var s Session
	if err := db.DB.First(&s, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (GormStore) Delete(id string) error {
	return db.DB.Delete(&Session{}, "id = ?", id).Error
}
