package localstore

import (
	"github.com/vruksha/portal/core/teacher"
)

// teacherRecord re-exposes the password, which the domain model hides from
// JSON output; the account table must keep it to serve logins.
type teacherRecord struct {
	teacher.Teacher
	Password string `json:"password"`
}

type teacherRepository struct {
	db *DB
}

func NewTeacherRepository(db *DB) teacher.Repository {
	return &teacherRepository{db: db}
}

func (repo *teacherRepository) load() ([]teacherRecord, error) {
	var records []teacherRecord
	if _, err := repo.db.read(teachersFile, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// CheckEmailUniqueness compares emails exact-match, case-sensitive.
func (repo *teacherRepository) CheckEmailUniqueness(email string) error {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	records, err := repo.load()
	if err != nil {
		return err
	}
	for _, rec := range records {
		if rec.Email == email {
			return teacher.ErrEmailExists
		}
	}
	return nil
}

func (repo *teacherRepository) CreateTeacher(t teacher.Teacher) (teacher.Teacher, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	records, err := repo.load()
	if err != nil {
		return teacher.Teacher{}, err
	}
	for _, rec := range records {
		if rec.Email == t.Email {
			return teacher.Teacher{}, teacher.ErrEmailExists
		}
	}

	records = append(records, teacherRecord{Teacher: t, Password: t.Password})
	if err = repo.db.write(teachersFile, records); err != nil {
		return teacher.Teacher{}, err
	}
	return t, nil
}

func (repo *teacherRepository) GetTeacherByID(id string) (teacher.Teacher, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	records, err := repo.load()
	if err != nil {
		return teacher.Teacher{}, err
	}
	for _, rec := range records {
		if rec.ID == id {
			return rec.restore(), nil
		}
	}
	return teacher.Teacher{}, teacher.ErrNotFound
}

func (repo *teacherRepository) GetTeacherByEmail(email string) (teacher.Teacher, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	records, err := repo.load()
	if err != nil {
		return teacher.Teacher{}, err
	}
	for _, rec := range records {
		if rec.Email == email {
			return rec.restore(), nil
		}
	}
	return teacher.Teacher{}, teacher.ErrNotFound
}

func (repo *teacherRepository) QueryAllTeachers() ([]teacher.Teacher, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	records, err := repo.load()
	if err != nil {
		return nil, err
	}
	teachers := make([]teacher.Teacher, 0, len(records))
	for _, rec := range records {
		teachers = append(teachers, rec.restore())
	}
	return teachers, nil
}

func (rec teacherRecord) restore() teacher.Teacher {
	t := rec.Teacher
	t.Password = rec.Password
	return t
}
