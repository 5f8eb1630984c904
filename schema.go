package bloglist

import (
	"context"

	"github.com/uptrace/bun"
)

// CreateSchema creates the users and blogs tables when they do not exist.
// There is no migration tooling here on purpose; the schema is small enough
// to bootstrap from the models.
func CreateSchema(ctx context.Context, db *bun.DB) error {
	models := []any{
		(*User)(nil),
		(*Blog)(nil),
	}

	for _, model := range models {
		if _, err := db.NewCreateTable().
			Model(model).
			IfNotExists().
			Exec(ctx); err != nil {
			return err
		}
	}

	return nil
}
