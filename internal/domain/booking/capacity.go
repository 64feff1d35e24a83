package booking

import (
	"sort"

	"github.com/google/uuid"
)

// Variant is a bookable catalog package of a resource kind. Every variant of
// a kind draws from the same capacity pool.
type Variant struct {
	ID         uuid.UUID
	Kind       ResourceKind
	Name       string
	Stock      *int
	Pax        int
	TermMonths int
	Active     bool
	SortOrder  int
}

// Policy carries the per-kind fallbacks used when a variant has no stock set.
type Policy struct {
	Hours           OperatingHours
	DefaultCapacity map[ResourceKind]int
}

func DefaultPolicy() Policy {
	return Policy{
		Hours: DefaultOperatingHours(),
		DefaultCapacity: map[ResourceKind]int{
			KindSharedDeskPool:      8,
			KindExclusiveRoom:       1,
			KindOfficeSuite:         1,
			KindVirtualSubscription: 10000,
		},
	}
}

// DefaultFor never returns an unbounded value: kinds without an explicit
// policy entry fall back to a single unit.
func (p Policy) DefaultFor(k ResourceKind) int {
	if n, ok := p.DefaultCapacity[k]; ok && n > 0 {
		return n
	}
	return 1
}

type Catalog struct {
	policy   Policy
	variants []Variant
	byID     map[uuid.UUID]Variant
}

func NewCatalog(policy Policy, variants []Variant) *Catalog {
	sorted := make([]Variant, len(variants))
	copy(sorted, variants)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].SortOrder < sorted[j].SortOrder
	})

	byID := make(map[uuid.UUID]Variant, len(sorted))
	for _, v := range sorted {
		byID[v.ID] = v
	}
	return &Catalog{policy: policy, variants: sorted, byID: byID}
}

func (c *Catalog) Policy() Policy {
	return c.policy
}

func (c *Catalog) Hours() OperatingHours {
	return c.policy.Hours
}

func (c *Catalog) Variant(id uuid.UUID) (Variant, error) {
	v, ok := c.byID[id]
	if !ok {
		return Variant{}, ErrVariantNotFound
	}
	return v, nil
}

// VariantsOf returns the variants of k in catalog order.
func (c *Catalog) VariantsOf(k ResourceKind) []Variant {
	var out []Variant
	for _, v := range c.variants {
		if v.Kind == k {
			out = append(out, v)
		}
	}
	return out
}

// FirstActive returns the first active variant of k.
func (c *Catalog) FirstActive(k ResourceKind) (Variant, bool) {
	for _, v := range c.variants {
		if v.Kind == k && v.Active {
			return v, true
		}
	}
	return Variant{}, false
}

// TotalCapacity is the configured stock of the first active variant of k.
// A variant without stock falls back to the policy default; a kind with no
// active variant at all is a configuration error.
func (c *Catalog) TotalCapacity(k ResourceKind) (int, error) {
	if !k.IsValid() {
		return 0, ErrInvalidKind
	}
	v, ok := c.FirstActive(k)
	if !ok {
		return 0, ErrCapacityNotConfigured
	}
	if v.Stock == nil {
		return c.policy.DefaultFor(k), nil
	}
	if *v.Stock < 0 {
		return 0, nil
	}
	return *v.Stock, nil
}
