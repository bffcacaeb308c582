package migrations

import (
	"context"

	"github.com/pkg/errors"
	"github.com/uptrace/bun"
)

func init() {
	up := func(_ context.Context, db *bun.DB) error {
		_, err := db.Exec(`ALTER TABLE reading_plans ADD COLUMN notifications_enabled BOOLEAN NOT NULL DEFAULT FALSE`)
		if err != nil {
			return errors.WithStack(err)
		}

		_, err = db.Exec(`ALTER TABLE reading_plans ADD COLUMN notification_time TEXT`)
		return errors.WithStack(err)
	}

	down := func(_ context.Context, db *bun.DB) error {
		_, err := db.Exec(`ALTER TABLE reading_plans DROP COLUMN notifications_enabled`)
		if err != nil {
			return errors.WithStack(err)
		}

		_, err = db.Exec(`ALTER TABLE reading_plans DROP COLUMN notification_time`)
		return errors.WithStack(err)
	}

	Migrations.MustRegister(up, down)
}
