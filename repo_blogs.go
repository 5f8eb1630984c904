package bloglist

import (
	"context"

	repository "github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Blogs is the blog repository
type Blogs interface {
	repository.Repository[*Blog]

	ListWithOwners(ctx context.Context) ([]*Blog, error)
	GetWithOwner(ctx context.Context, id string) (*Blog, error)
	UpdateLikes(ctx context.Context, id string, likes int64) (*Blog, error)
	DeleteByID(ctx context.Context, id string) error
	DeleteByIDTx(ctx context.Context, tx bun.IDB, id string) error
}

type blogs struct {
	repository.Repository[*Blog]
	db *bun.DB
}

var (
	_ Blogs                        = (*blogs)(nil)
	_ repository.Repository[*Blog] = (*blogs)(nil)
)

func NewBlogsRepository(db *bun.DB) Blogs {
	repo := repository.NewRepository[*Blog](db, repository.ModelHandlers[*Blog]{
		NewRecord: func() *Blog { return &Blog{} },
		GetID: func(b *Blog) uuid.UUID {
			if b == nil {
				return uuid.Nil
			}
			return b.ID
		},
		SetID: func(b *Blog, id uuid.UUID) {
			if b != nil {
				b.ID = id
			}
		},
	})

	return &blogs{
		Repository: repo,
		db:         db,
	}
}

// ListWithOwners returns the blog collection in creation order, each record
// carrying the owner's public fields. This is the materialized snapshot the
// statistics engine consumes.
func (r *blogs) ListWithOwners(ctx context.Context) ([]*Blog, error) {
	records := []*Blog{}

	err := r.db.NewSelect().
		Model(&records).
		Relation("User", func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Column("id", "username", "name")
		}).
		Order("blg.created_at ASC").
		Scan(ctx)
	if err != nil {
		return nil, err
	}

	return records, nil
}

func (r *blogs) GetWithOwner(ctx context.Context, id string) (*Blog, error) {
	record := &Blog{}

	err := r.db.NewSelect().
		Model(record).
		Relation("User", func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Column("id", "username", "name")
		}).
		Where("?TableAlias.id = ?", id).
		Limit(1).
		Scan(ctx)
	if err != nil {
		if repository.IsRecordNotFound(err) {
			return nil, repository.NewRecordNotFound().
				WithMetadata(map[string]any{"id": id})
		}
		return nil, err
	}

	return record, nil
}

// UpdateLikes sets the like counter and returns the updated record.
func (r *blogs) UpdateLikes(ctx context.Context, id string, likes int64) (*Blog, error) {
	res, err := r.db.NewUpdate().
		Model((*Blog)(nil)).
		Set("likes = ?", likes).
		Set("updated_at = CURRENT_TIMESTAMP").
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return nil, err
	}

	if rows, err := res.RowsAffected(); err == nil && rows == 0 {
		return nil, repository.NewRecordNotFound().
			WithMetadata(map[string]any{"id": id})
	}

	return r.GetWithOwner(ctx, id)
}

func (r *blogs) DeleteByID(ctx context.Context, id string) error {
	return r.DeleteByIDTx(ctx, r.db, id)
}

func (r *blogs) DeleteByIDTx(ctx context.Context, tx bun.IDB, id string) error {
	res, err := tx.NewDelete().
		Model((*Blog)(nil)).
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return err
	}

	if rows, err := res.RowsAffected(); err == nil && rows == 0 {
		return repository.NewRecordNotFound().
			WithMetadata(map[string]any{"id": id})
	}

	return nil
}
