package inmemdb

import (
	"github.com/vruksha/portal/core/lesson"
)

type lessonRepository struct {
	db *lessonTable
}

func NewLessonRepository(db *DB) lesson.Repository {
	return &lessonRepository{db: db.lesson}
}

func (repo *lessonRepository) CreateLesson(l lesson.Lesson) (lesson.Lesson, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	repo.db.table = append(repo.db.table, l)
	return l, nil
}

func (repo *lessonRepository) QueryLessonsByTeacher(teacherID string) ([]lesson.Lesson, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	lessons := make([]lesson.Lesson, 0)
	for _, l := range repo.db.table {
		if l.TeacherID == teacherID {
			lessons = append(lessons, l)
		}
	}
	return lessons, nil
}

func (repo *lessonRepository) QueryAllLessons() ([]lesson.Lesson, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	lessons := make([]lesson.Lesson, len(repo.db.table))
	copy(lessons, repo.db.table)
	return lessons, nil
}
