package readstore

import (
	"context"

	"workspace-booking/internal/domain/booking"
	"workspace-booking/internal/infra"
	"workspace-booking/internal/infra/db"
	"workspace-booking/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

const allVariantsSQL = `SELECT id, kind, name, stock, pax, term_months, active, sort_order
FROM variants
ORDER BY kind, sort_order, name`

type VariantReadStore struct {
	db db.DBTX
}

func NewVariantReadStore(db db.DBTX) *VariantReadStore {
	return &VariantReadStore{db: db}
}

func (r *VariantReadStore) FindAll(ctx context.Context) ([]booking.Variant, error) {
	rows, err := r.db.Query(ctx, allVariantsSQL)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find variants", err)
	}
	defer rows.Close()

	var result []booking.Variant
	for rows.Next() {
		var (
			v          booking.Variant
			kind       string
			stock      pgtype.Int4
			pax        int32
			termMonths int32
			sortOrder  int32
		)
		if err := rows.Scan(&v.ID, &kind, &v.Name, &stock, &pax, &termMonths, &v.Active, &sortOrder); err != nil {
			return nil, infra.WrapRepoErr("failed to scan variant", err)
		}
		v.Kind = booking.ResourceKind(kind)
		v.Stock = pgconv.IntPtrFromPgtype(stock)
		v.Pax = int(pax)
		v.TermMonths = int(termMonths)
		v.SortOrder = int(sortOrder)
		result = append(result, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate variants", err)
	}
	return result, nil
}
