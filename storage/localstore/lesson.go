package localstore

import (
	"github.com/vruksha/portal/core/lesson"
)

type lessonRepository struct {
	db *DB
}

func NewLessonRepository(db *DB) lesson.Repository {
	return &lessonRepository{db: db}
}

func (repo *lessonRepository) load() ([]lesson.Lesson, error) {
	var lessons []lesson.Lesson
	if _, err := repo.db.read(lessonsFile, &lessons); err != nil {
		return nil, err
	}
	return lessons, nil
}

func (repo *lessonRepository) CreateLesson(l lesson.Lesson) (lesson.Lesson, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	lessons, err := repo.load()
	if err != nil {
		return lesson.Lesson{}, err
	}
	lessons = append(lessons, l)
	if err = repo.db.write(lessonsFile, lessons); err != nil {
		return lesson.Lesson{}, err
	}
	return l, nil
}

// QueryLessonsByTeacher filters at read time; the stored list is unscoped.
func (repo *lessonRepository) QueryLessonsByTeacher(teacherID string) ([]lesson.Lesson, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	lessons, err := repo.load()
	if err != nil {
		return nil, err
	}
	scoped := make([]lesson.Lesson, 0, len(lessons))
	for _, l := range lessons {
		if l.TeacherID == teacherID {
			scoped = append(scoped, l)
		}
	}
	return scoped, nil
}

func (repo *lessonRepository) QueryAllLessons() ([]lesson.Lesson, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()
	return repo.load()
}
