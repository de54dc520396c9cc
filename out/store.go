// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"database/sql"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/cpmech/gofgr/state"
	"github.com/cpmech/gosl/chk"
	"github.com/google/uuid"
	_ "modernc.org/sqlite" // pure go sqlite driver
)

// timeLayout keeps the lexical order of creation times
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// Run holds the description of one run in the database
type Run struct {
	Id      uuid.UUID // identifier
	Key     string    // simulation key
	Desc    string    // description
	Created time.Time // creation time (UTC)
	Steps   int       // number of stored steps
}

// Store holds the snapshots of the steps of many runs in a SQLite database
type Store struct {
	db   *sql.DB
	mu   sync.Mutex
	path string
}

// OpenStore opens (or creates) the database at path. ":memory:" keeps the database in memory
func OpenStore(path string) (o *Store, err error) {
	if path != ":memory:" {
		if err = os.MkdirAll(filepath.Dir(path), 0777); err != nil {
			return nil, chk.Err("cannot create directory for database %q: %v", path, err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, chk.Err("cannot open database %q: %v", path, err)
	}
	if path == ":memory:" {
		db.SetMaxOpenConns(1)
	}
	for _, stmt := range []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id          TEXT PRIMARY KEY,
			simkey      TEXT NOT NULL,
			description TEXT NOT NULL,
			created     TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS steps (
			run      TEXT NOT NULL REFERENCES runs(id),
			step     INTEGER NOT NULL,
			hours    REAL NOT NULL,
			snapshot BLOB NOT NULL,
			PRIMARY KEY (run, step)
		)`,
	} {
		if _, err = db.Exec(stmt); err != nil {
			db.Close()
			return nil, chk.Err("cannot create tables in database %q: %v", path, err)
		}
	}
	return &Store{db: db, path: path}, nil
}

// Close closes the database
func (o *Store) Close() error {
	return o.db.Close()
}

// Path returns the path of the database
func (o *Store) Path() string { return o.path }

// NewRun registers a new run and returns its identifier
func (o *Store) NewRun(key, desc string) (id uuid.UUID, err error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	id = uuid.New()
	_, err = o.db.Exec(`INSERT INTO runs(id,simkey,description,created) VALUES(?,?,?,?)`,
		id.String(), key, desc, time.Now().UTC().Format(timeLayout))
	if err != nil {
		return uuid.Nil, chk.Err("cannot insert run %q: %v", key, err)
	}
	return
}

// Put stores the snapshot of one step. A step stored twice is replaced
func (o *Store) Put(id uuid.UUID, snap *state.Snapshot) (err error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	b, err := snap.Encode()
	if err != nil {
		return chk.Err("cannot encode snapshot of step %d: %v", snap.Step, err)
	}
	_, err = o.db.Exec(`INSERT INTO steps(run,step,hours,snapshot) VALUES(?,?,?,?)
		ON CONFLICT(run,step) DO UPDATE SET hours=excluded.hours, snapshot=excluded.snapshot`,
		id.String(), snap.Step, snap.Time, b)
	if err != nil {
		return chk.Err("cannot store step %d of run %v: %v", snap.Step, id, err)
	}
	return
}

// Snapshots returns the snapshots of run id ordered by step
func (o *Store) Snapshots(id uuid.UUID) (snaps []*state.Snapshot, err error) {
	rows, err := o.db.Query(`SELECT snapshot FROM steps WHERE run = ? ORDER BY step`, id.String())
	if err != nil {
		return nil, chk.Err("cannot select steps of run %v: %v", id, err)
	}
	defer rows.Close()
	for rows.Next() {
		var b []byte
		if err = rows.Scan(&b); err != nil {
			return nil, chk.Err("cannot scan step of run %v: %v", id, err)
		}
		snap, err := state.DecodeSnapshot(b)
		if err != nil {
			return nil, err
		}
		snaps = append(snaps, snap)
	}
	if err = rows.Err(); err != nil {
		return nil, chk.Err("cannot read steps of run %v: %v", id, err)
	}
	return
}

// Last returns the snapshot of the last step of run id; e.g. to restart a simulation
func (o *Store) Last(id uuid.UUID) (snap *state.Snapshot, err error) {
	var b []byte
	err = o.db.QueryRow(`SELECT snapshot FROM steps WHERE run = ? ORDER BY step DESC LIMIT 1`, id.String()).Scan(&b)
	if err == sql.ErrNoRows {
		return nil, chk.Err("run %v has no steps", id)
	}
	if err != nil {
		return nil, chk.Err("cannot select last step of run %v: %v", id, err)
	}
	return state.DecodeSnapshot(b)
}

// Runs returns all runs ordered by creation time
func (o *Store) Runs() (runs []Run, err error) {
	rows, err := o.db.Query(`SELECT r.id, r.simkey, r.description, r.created, COUNT(s.step)
		FROM runs r LEFT JOIN steps s ON s.run = r.id
		GROUP BY r.id ORDER BY r.created, r.rowid`)
	if err != nil {
		return nil, chk.Err("cannot select runs: %v", err)
	}
	defer rows.Close()
	for rows.Next() {
		var r Run
		var id, created string
		if err = rows.Scan(&id, &r.Key, &r.Desc, &created, &r.Steps); err != nil {
			return nil, chk.Err("cannot scan run: %v", err)
		}
		if r.Id, err = uuid.Parse(id); err != nil {
			return nil, chk.Err("run has invalid id %q: %v", id, err)
		}
		if r.Created, err = time.Parse(timeLayout, created); err != nil {
			return nil, chk.Err("run %v has invalid creation time %q: %v", id, created, err)
		}
		runs = append(runs, r)
	}
	if err = rows.Err(); err != nil {
		return nil, chk.Err("cannot read runs: %v", err)
	}
	return
}
