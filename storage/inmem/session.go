package inmemdb

import (
	"github.com/vruksha/portal/core/portal"
	"github.com/vruksha/portal/core/teacher"
)

type sessionRepository struct {
	db *sessionRecord
}

func NewSessionRepository(db *DB) portal.SessionRepository {
	return &sessionRepository{db: db.session}
}

func (repo *sessionRepository) GetSession() (teacher.Teacher, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	if repo.db.current == nil {
		return teacher.Teacher{}, teacher.ErrNotFound
	}
	return *repo.db.current, nil
}

func (repo *sessionRepository) SaveSession(t teacher.Teacher) error {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	repo.db.current = &t
	return nil
}

func (repo *sessionRepository) ClearSession() error {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	repo.db.current = nil
	return nil
}
