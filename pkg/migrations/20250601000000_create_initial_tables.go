package migrations

import (
	"context"

	"github.com/pkg/errors"
	"github.com/uptrace/bun"
)

func init() {
	up := func(_ context.Context, db *bun.DB) error {
		// Cached book documents, one row per (language, file). The document
		// column holds the full chapter/verse JSON and is replaced wholesale.
		_, err := db.Exec(`
			CREATE TABLE books (
				language_code TEXT NOT NULL,
				file_name TEXT NOT NULL,
				title TEXT,
				document TEXT,
				created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
				PRIMARY KEY (language_code, file_name)
			)
		`)
		if err != nil {
			return errors.WithStack(err)
		}

		_, err = db.Exec(`
			CREATE TABLE languages (
				code TEXT PRIMARY KEY,
				name TEXT,
				native_name TEXT,
				book_count INTEGER NOT NULL DEFAULT 0
			)
		`)
		if err != nil {
			return errors.WithStack(err)
		}

		_, err = db.Exec(`
			CREATE TABLE highlights (
				id TEXT PRIMARY KEY,
				language_code TEXT NOT NULL,
				book_id TEXT NOT NULL,
				chapter INTEGER NOT NULL,
				verse INTEGER NOT NULL,
				color TEXT NOT NULL,
				created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
			)
		`)
		if err != nil {
			return errors.WithStack(err)
		}

		// One highlight per verse position; replacement happens on this key,
		// not on id.
		_, err = db.Exec(`CREATE UNIQUE INDEX ux_highlights_verse ON highlights(language_code, book_id, chapter, verse)`)
		if err != nil {
			return errors.WithStack(err)
		}

		_, err = db.Exec(`
			CREATE TABLE notes (
				id TEXT PRIMARY KEY,
				language_code TEXT NOT NULL,
				book_id TEXT NOT NULL,
				chapter INTEGER NOT NULL,
				verse INTEGER NOT NULL,
				text TEXT NOT NULL,
				created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
				updated_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
			)
		`)
		if err != nil {
			return errors.WithStack(err)
		}

		_, err = db.Exec(`CREATE UNIQUE INDEX ux_notes_verse ON notes(language_code, book_id, chapter, verse)`)
		if err != nil {
			return errors.WithStack(err)
		}

		_, err = db.Exec(`
			CREATE TABLE reading_plans (
				plan_id TEXT PRIMARY KEY,
				started_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
				completed_days TEXT,
				current_day INTEGER NOT NULL DEFAULT 1
			)
		`)
		if err != nil {
			return errors.WithStack(err)
		}

		_, err = db.Exec(`
			CREATE TABLE jobs (
				id TEXT PRIMARY KEY,
				type TEXT NOT NULL,
				status TEXT NOT NULL,
				data TEXT,
				process_id TEXT,
				error TEXT,
				created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
				updated_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
			)
		`)
		if err != nil {
			return errors.WithStack(err)
		}

		return nil
	}

	down := func(_ context.Context, db *bun.DB) error {
		for _, table := range []string{"jobs", "reading_plans", "notes", "highlights", "languages", "books"} {
			_, err := db.Exec("DROP TABLE IF EXISTS " + table)
			if err != nil {
				return errors.WithStack(err)
			}
		}
		return nil
	}

	Migrations.MustRegister(up, down)
}
