// Package inmemdb provides map-backed repositories for tests and dev mode.
package inmemdb

import (
	"sync"

	"github.com/vruksha/portal/core/lesson"
	"github.com/vruksha/portal/core/teacher"
)

type (
	DB struct {
		teacher *teacherTable
		lesson  *lessonTable
		session *sessionRecord
	}

	teacherTable struct {
		table map[string]*teacher.Teacher // keyed by ID
		mutex sync.RWMutex
	}

	lessonTable struct {
		table []lesson.Lesson // insertion order
		mutex sync.RWMutex
	}

	sessionRecord struct {
		current *teacher.Teacher
		mutex   sync.RWMutex
	}
)

func Open() (*DB, error) {
	db := &DB{
		teacher: &teacherTable{table: make(map[string]*teacher.Teacher)},
		lesson:  &lessonTable{},
		session: &sessionRecord{},
	}
	return db, nil
}
