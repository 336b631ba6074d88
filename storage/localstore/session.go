package localstore

import (
	"github.com/vruksha/portal/core/portal"
	"github.com/vruksha/portal/core/teacher"
)

// The durable session mirror is the Teacher model itself: its json tags
// already exclude the password.
type sessionRepository struct {
	db *DB
}

func NewSessionRepository(db *DB) portal.SessionRepository {
	return &sessionRepository{db: db}
}

func (repo *sessionRepository) GetSession() (teacher.Teacher, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	var t teacher.Teacher
	found, err := repo.db.read(sessionFile, &t)
	if err != nil {
		return teacher.Teacher{}, err
	}
	if !found || t.ID == "" {
		return teacher.Teacher{}, teacher.ErrNotFound
	}
	return t, nil
}

func (repo *sessionRepository) SaveSession(t teacher.Teacher) error {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	t.Password = ""
	return repo.db.write(sessionFile, t)
}

func (repo *sessionRepository) ClearSession() error {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()
	return repo.db.remove(sessionFile)
}
