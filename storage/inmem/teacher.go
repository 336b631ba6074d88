package inmemdb

import (
	"github.com/vruksha/portal/core/teacher"
)

type teacherRepository struct {
	db *teacherTable
}

func NewTeacherRepository(db *DB) teacher.Repository {
	return &teacherRepository{db: db.teacher}
}

func (repo *teacherRepository) query() []teacher.Teacher {
	teachers := make([]teacher.Teacher, 0, len(repo.db.table))
	for _, t := range repo.db.table {
		teachers = append(teachers, *t)
	}
	return teachers
}

// CheckEmailUniqueness compares emails exact-match, case-sensitive.
func (repo *teacherRepository) CheckEmailUniqueness(email string) error {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	for _, t := range repo.db.table {
		if t.Email == email {
			return teacher.ErrEmailExists
		}
	}
	return nil
}

func (repo *teacherRepository) CreateTeacher(t teacher.Teacher) (teacher.Teacher, error) {
	if err := repo.CheckEmailUniqueness(t.Email); err != nil {
		return teacher.Teacher{}, err
	}

	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()
	repo.db.table[t.ID] = &t
	return t, nil
}

func (repo *teacherRepository) GetTeacherByID(id string) (teacher.Teacher, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	if t, ok := repo.db.table[id]; ok {
		return *t, nil
	}
	return teacher.Teacher{}, teacher.ErrNotFound
}

func (repo *teacherRepository) GetTeacherByEmail(email string) (teacher.Teacher, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	for _, t := range repo.db.table {
		if t.Email == email {
			return *t, nil
		}
	}
	return teacher.Teacher{}, teacher.ErrNotFound
}

func (repo *teacherRepository) QueryAllTeachers() ([]teacher.Teacher, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()
	return repo.query(), nil
}
