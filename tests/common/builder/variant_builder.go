//go:build unit || e2e

package builder

import (
	"workspace-booking/internal/domain/booking"

	"github.com/google/uuid"
)

type VariantBuilder struct {
	ID         uuid.UUID
	Kind       booking.ResourceKind
	Name       string
	Stock      *int
	Pax        int
	TermMonths int
	Active     bool
	SortOrder  int
}

func NewVariantBuilder(kind booking.ResourceKind) *VariantBuilder {
	return &VariantBuilder{
		ID:     uuid.New(),
		Kind:   kind,
		Name:   string(kind),
		Pax:    1,
		Active: true,
	}
}

func (v *VariantBuilder) With(mutate func(*VariantBuilder)) *VariantBuilder {
	mutate(v)
	return v
}

func (v *VariantBuilder) WithStock(n int) *VariantBuilder {
	v.Stock = &n
	return v
}

func (v *VariantBuilder) AsInactive() *VariantBuilder {
	v.Active = false
	return v
}

func (v *VariantBuilder) BuildDomain() booking.Variant {
	var stock *int
	if v.Stock != nil {
		n := *v.Stock
		stock = &n
	}
	return booking.Variant{
		ID:         v.ID,
		Kind:       v.Kind,
		Name:       v.Name,
		Stock:      stock,
		Pax:        v.Pax,
		TermMonths: v.TermMonths,
		Active:     v.Active,
		SortOrder:  v.SortOrder,
	}
}

// StandardCatalog is the catalog most tests run against: eight desks, one
// exclusive room, one office suite on a one-month term, virtual office.
func StandardCatalog() []booking.Variant {
	return []booking.Variant{
		NewVariantBuilder(booking.KindSharedDeskPool).With(func(b *VariantBuilder) { b.Name = "Hot Desk" }).BuildDomain(),
		NewVariantBuilder(booking.KindExclusiveRoom).With(func(b *VariantBuilder) {
			b.Name = "Exclusive Room"
			b.Pax = 8
		}).BuildDomain(),
		NewVariantBuilder(booking.KindOfficeSuite).With(func(b *VariantBuilder) {
			b.Name = "Private Office 4 pax"
			b.Pax = 4
			b.TermMonths = 1
		}).BuildDomain(),
		NewVariantBuilder(booking.KindVirtualSubscription).With(func(b *VariantBuilder) {
			b.Name = "Virtual Office 12 bulan"
			b.Pax = 0
			b.TermMonths = 12
		}).BuildDomain(),
	}
}

// VariantOf returns the first variant of kind in vs.
func VariantOf(vs []booking.Variant, kind booking.ResourceKind) booking.Variant {
	for _, v := range vs {
		if v.Kind == kind {
			return v
		}
	}
	return booking.Variant{}
}
