// SPDX-License-Identifier: GPL-3.0-or-later
package persistence

import (
	"fmt"

	"github.com/davrk/go-pop3-forward/log"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	migrate "github.com/rubenv/sql-migrate"
	"github.com/sirupsen/logrus"
)

// Journal records which messages were already transmitted downstream,
// keyed by the stable message hash. It exists purely to suppress duplicate
// forwards after a crash between transmission and commit; forwarding
// decisions never read anything else from it.
type Journal struct {
	db *sqlx.DB
	l  *logrus.Logger
}

var migrations = &migrate.MemoryMigrationSource{
	Migrations: []*migrate.Migration{
		{
			Id: "1-create-forwarded",
			Up: []string{
				`CREATE TABLE forwarded (
					mailidhash TEXT PRIMARY KEY,
					subject TEXT NOT NULL,
					forwardedat TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
				)`,
			},
			Down: []string{`DROP TABLE forwarded`},
		},
	},
}

func NewJournal(datasource string) (*Journal, error) {
	db, err := sqlx.Connect("sqlite3", datasource)
	if err != nil {
		return nil, fmt.Errorf("could not open db: %w", err)
	}
	db.SetMaxOpenConns(1)

	l := log.Logger(log.LOG_PERSISTENCE)
	l.WithField("file", datasource).Info("Connected")

	_, err = db.Exec(`PRAGMA journal_mode=WAL`)
	if err != nil {
		return nil, fmt.Errorf("could not set journal mode: %w", err)
	}
	_, err = db.Exec(`PRAGMA synchronous=normal`)
	if err != nil {
		return nil, fmt.Errorf("could not set synchronous mode: %w", err)
	}

	appliedMigrations, err := migrate.Exec(db.DB, "sqlite3", migrations, migrate.Up)
	if err != nil {
		return nil, fmt.Errorf("could not migrate to newest version: %w", err)
	}

	l.WithField("migrations", appliedMigrations).Debug("Executed migrations")

	return &Journal{
		db: db,
		l:  l,
	}, nil
}

func (j *Journal) Close() error {
	err := j.db.Close()
	if err != nil {
		return fmt.Errorf("could not close db: %w", err)
	}
	j.l.Info("Disconnected")
	return nil
}

func (j *Journal) WasForwarded(mailIdHash string) (bool, error) {
	if mailIdHash == "" {
		return false, nil
	}

	count := 0
	err := j.db.Get(
		&count,
		`SELECT count(*) from forwarded WHERE mailidhash = ?`,
		mailIdHash,
	)
	if err != nil {
		return false, fmt.Errorf("could not query db: %w", err)
	}

	return count > 0, nil
}

func (j *Journal) MarkForwarded(mailIdHash, subject string) error {
	if mailIdHash == "" {
		return nil
	}

	_, err := j.db.Exec(
		"INSERT OR REPLACE INTO forwarded (mailidhash, subject) VALUES (?, ?)",
		mailIdHash,
		subject,
	)
	if err != nil {
		return fmt.Errorf("could not save forwarded message: %w", err)
	}

	j.l.WithFields(logrus.Fields{"hash": mailIdHash, "subject": subject}).Debug("Recorded forwarded message")
	return nil
}
