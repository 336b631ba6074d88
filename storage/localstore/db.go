// Package localstore persists the portal's state as JSON records on disk,
// one file per key: teachers.json (account table, passwords included),
// session.json (current session, password excluded) and lessons.json
// (content items for all owners).
//
// Every mutation rewrites the whole record (read-all/write-all); absent or
// unparsable files are treated as the empty/initial state, never an error.
package localstore

import (
	"encoding/json"
	"io/ioutil"
	"os"
	"path/filepath"
	"sync"

	"github.com/pkg/errors"
)

const (
	teachersFile = "teachers.json"
	sessionFile  = "session.json"
	lessonsFile  = "lessons.json"
)

type DB struct {
	dir   string
	mutex sync.RWMutex
}

func Open(dir string) (*DB, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrapf(err, "creating storage dir %s", dir)
	}
	return &DB{dir: dir}, nil
}

func (db *DB) path(name string) string {
	return filepath.Join(db.dir, name)
}

// read unmarshals name into v. A missing or corrupt file leaves v untouched
// and reports found=false.
func (db *DB) read(name string, v interface{}) (found bool, err error) {
	data, err := ioutil.ReadFile(db.path(name))
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, errors.Wrapf(err, "reading %s", name)
	}
	if err = json.Unmarshal(data, v); err != nil {
		// unparsable durable state is treated as the initial state
		return false, nil
	}
	return true, nil
}

// write rewrites name whole; a temp file + rename keeps the record readable
// if the process dies mid-write.
func (db *DB) write(name string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errors.Wrapf(err, "marshalling %s", name)
	}

	tmp := db.path(name) + ".tmp"
	if err = ioutil.WriteFile(tmp, data, 0o644); err != nil {
		return errors.Wrapf(err, "writing %s", name)
	}
	if err = os.Rename(tmp, db.path(name)); err != nil {
		return errors.Wrapf(err, "replacing %s", name)
	}
	return nil
}

// remove deletes name; a missing file is not an error.
func (db *DB) remove(name string) error {
	if err := os.Remove(db.path(name)); err != nil && !os.IsNotExist(err) {
		return errors.Wrapf(err, "removing %s", name)
	}
	return nil
}
