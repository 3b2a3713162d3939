package data

import (
	"context"
	"fmt"
	"iter"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOptions configures a GormProvider.
type GormOptions[T any] struct {
	// FilterColumn must contain the filter as a plain substring; LIKE wildcards in
	// the filter are escaped. Empty disables filtering.
	FilterColumn string
	// DefaultSort is used when the query has no SortBy, e.g. "id".
	DefaultSort string
	// ID identifies rows. Nil falls back to the row value itself.
	ID Identifier[T]
}

// GormProvider streams rows of the GORM model T.
type GormProvider[T any] struct {
	Listeners[T]

	db   *gorm.DB
	opts GormOptions[T]
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)

// NewGormProvider creates a provider reading model T from db.
func NewGormProvider[T any](db *gorm.DB, opts GormOptions[T]) *GormProvider[T] {
	return &GormProvider[T]{db: db, opts: opts}
}

// ID implements Identifiable.
func (p *GormProvider[T]) ID(item T) any {
	if p.opts.ID == nil {
		return ItemIdentity(item)
	}
	return p.opts.ID(item)
}

// Fetch implements DataProvider. Rows are scanned one at a time while the caller
// iterates; stopping early closes the cursor.
func (p *GormProvider[T]) Fetch(ctx context.Context, q Query) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		var zero T

		tx := p.db.WithContext(ctx).Model(new(T))
		if q.Filter != "" && p.opts.FilterColumn != "" {
			tx = tx.Where(clause.Expr{
				SQL:  "? LIKE ? ESCAPE ?",
				Vars: []any{clause.Column{Name: p.opts.FilterColumn}, "%" + likeEscaper.Replace(q.Filter) + "%", `\`},
			})
		}

		sortBy, desc := q.SortBy, q.Desc
		if sortBy != "" {
			if !p.db.Migrator().HasColumn(new(T), sortBy) {
				yield(zero, fmt.Errorf("%w: unknown column %q", ErrUnsupportedSort, sortBy))
				return
			}
		} else {
			sortBy, desc = p.opts.DefaultSort, false
		}
		if sortBy != "" {
			tx = tx.Order(clause.OrderByColumn{Column: clause.Column{Name: sortBy}, Desc: desc})
		}
		if q.Offset > 0 {
			tx = tx.Offset(q.Offset)
		}
		if q.Limit > 0 {
			tx = tx.Limit(q.Limit)
		}

		rows, err := tx.Rows()
		if err != nil {
			yield(zero, fmt.Errorf("failed to query rows: %w", err))
			return
		}
		defer rows.Close()

		for rows.Next() {
			var item T
			if err := p.db.ScanRows(rows, &item); err != nil {
				yield(zero, fmt.Errorf("failed to scan row: %w", err))
				return
			}
			if !yield(item, nil) {
				return
			}
		}
		if err := rows.Err(); err != nil {
			yield(zero, fmt.Errorf("failed to iterate rows: %w", err))
		}
	}
}
