package migrations

import (
	"context"

	"github.com/pkg/errors"
	"github.com/uptrace/bun"
)

func init() {
	up := func(_ context.Context, db *bun.DB) error {
		_, err := db.Exec(`ALTER TABLE jobs ADD COLUMN progress_current INTEGER NOT NULL DEFAULT 0`)
		if err != nil {
			return errors.WithStack(err)
		}

		_, err = db.Exec(`ALTER TABLE jobs ADD COLUMN progress_total INTEGER NOT NULL DEFAULT 0`)
		if err != nil {
			return errors.WithStack(err)
		}

		_, err = db.Exec(`ALTER TABLE jobs ADD COLUMN progress_book TEXT`)
		if err != nil {
			return errors.WithStack(err)
		}

		// Per-chapter annotation loads filter on these prefixes.
		_, err = db.Exec(`CREATE INDEX ix_highlights_chapter ON highlights(language_code, book_id, chapter)`)
		if err != nil {
			return errors.WithStack(err)
		}

		_, err = db.Exec(`CREATE INDEX ix_notes_chapter ON notes(language_code, book_id, chapter)`)
		return errors.WithStack(err)
	}

	down := func(_ context.Context, db *bun.DB) error {
		_, err := db.Exec(`DROP INDEX IF EXISTS ix_notes_chapter`)
		if err != nil {
			return errors.WithStack(err)
		}

		_, err = db.Exec(`DROP INDEX IF EXISTS ix_highlights_chapter`)
		if err != nil {
			return errors.WithStack(err)
		}

		for _, column := range []string{"progress_book", "progress_total", "progress_current"} {
			_, err = db.Exec(`ALTER TABLE jobs DROP COLUMN ` + column)
			if err != nil {
				return errors.WithStack(err)
			}
		}
		return nil
	}

	Migrations.MustRegister(up, down)
}
