package booking

import (
	"errors"
	"fmt"
	"sort"
	"time"
)

type Occupancy string

const (
	OccupancyAvailable Occupancy = "Available"
	OccupancyFull      Occupancy = "Full"
)

type RosterGroupType string

const (
	GroupCoworking   RosterGroupType = "coworking"
	GroupOfficeSuite RosterGroupType = "office_suite"
)

func ParseRosterGroup(s string) (RosterGroupType, error) {
	switch g := RosterGroupType(s); g {
	case GroupCoworking, GroupOfficeSuite:
		return g, nil
	default:
		return "", ErrInvalidKind
	}
}

type RosterRow struct {
	SubType       string
	CapacityLabel string
	Occupancy     Occupancy
	OrderRef      string
	CustomerName  string
	CheckIn       *time.Time
	CheckOut      *time.Time
}

type RosterGroup struct {
	RoomLabel string
	Date      time.Time
	Type      RosterGroupType
	Rows      []RosterRow
	// Overflow counts reserved units that found no display slot.
	Overflow int
}

// SlotAssigner maps active reservations onto numbered display slots. The
// assignment is presentation only and carries no room identity across days.
type SlotAssigner interface {
	Assign(slots int, reservations []Reservation) (assigned []*Reservation, overflow int)
}

// SequentialAssigner fills slots in reservation order, quantity units each.
type SequentialAssigner struct{}

func (SequentialAssigner) Assign(slots int, reservations []Reservation) ([]*Reservation, int) {
	assigned := make([]*Reservation, slots)
	next, overflow := 0, 0
	for i := range reservations {
		r := &reservations[i]
		for u := 0; u < r.Quantity; u++ {
			if next >= slots {
				overflow++
				continue
			}
			assigned[next] = r
			next++
		}
	}
	return assigned, overflow
}

type RosterLabels struct {
	CoworkingRoom string `yaml:"coworking_room"`
	OfficeSuite   string `yaml:"office_suite"`
	Desk          string `yaml:"desk"`
	ExclusiveRoom string `yaml:"exclusive_room"`
	SuiteRoom     string `yaml:"suite_room"`
	Pax           string `yaml:"pax"`
}

func DefaultRosterLabels() RosterLabels {
	return RosterLabels{
		CoworkingRoom: "Coworking Space",
		OfficeSuite:   "Private Office",
		Desk:          "Desk %d",
		ExclusiveRoom: "Exclusive Room",
		SuiteRoom:     "Room %d",
		Pax:           "%d pax",
	}
}

type RosterBuilder struct {
	catalog  *Catalog
	assigner SlotAssigner
	labels   RosterLabels
}

func NewRosterBuilder(catalog *Catalog, assigner SlotAssigner, labels RosterLabels) *RosterBuilder {
	if assigner == nil {
		assigner = SequentialAssigner{}
	}
	return &RosterBuilder{catalog: catalog, assigner: assigner, labels: labels}
}

// BuildAll renders every physical group for date. Virtual subscriptions
// never appear.
func (b *RosterBuilder) BuildAll(date time.Time, reservations []Reservation, now time.Time) ([]RosterGroup, error) {
	groups := make([]RosterGroup, 0, 2)
	for _, g := range []RosterGroupType{GroupCoworking, GroupOfficeSuite} {
		group, err := b.BuildRoster(g, date, reservations, now)
		if err != nil {
			return nil, err
		}
		groups = append(groups, group)
	}
	return groups, nil
}

func (b *RosterBuilder) BuildRoster(group RosterGroupType, date time.Time, reservations []Reservation, now time.Time) (RosterGroup, error) {
	switch group {
	case GroupCoworking:
		return b.buildCoworking(date, reservations, now)
	case GroupOfficeSuite:
		return b.buildOfficeSuite(date, reservations, now)
	default:
		return RosterGroup{}, ErrInvalidKind
	}
}

func (b *RosterBuilder) buildCoworking(date time.Time, reservations []Reservation, now time.Time) (RosterGroup, error) {
	desks, err := b.units(KindSharedDeskPool)
	if err != nil {
		return RosterGroup{}, err
	}
	rooms, err := b.units(KindExclusiveRoom)
	if err != nil {
		return RosterGroup{}, err
	}

	deskActive := b.activeOn(date, reservations, KindSharedDeskPool, now)
	roomActive := b.activeOn(date, reservations, KindExclusiveRoom, now)

	out := RosterGroup{
		RoomLabel: b.labels.CoworkingRoom,
		Date:      StartOfDay(date),
		Type:      GroupCoworking,
		Rows:      make([]RosterRow, 0, desks+rooms),
	}

	deskLabel := fmt.Sprintf(b.labels.Pax, 1)
	if len(roomActive) > 0 {
		for i := 0; i < desks; i++ {
			out.Rows = append(out.Rows, occupiedRow(fmt.Sprintf(b.labels.Desk, i+1), deskLabel, &roomActive[0]))
		}
	} else {
		assigned, overflow := b.assigner.Assign(desks, deskActive)
		out.Overflow += overflow
		for i, r := range assigned {
			name := fmt.Sprintf(b.labels.Desk, i+1)
			if r == nil {
				out.Rows = append(out.Rows, availableRow(name, deskLabel))
				continue
			}
			out.Rows = append(out.Rows, occupiedRow(name, deskLabel, r))
		}
	}

	roomLabel := ""
	if v, ok := b.catalog.FirstActive(KindExclusiveRoom); ok && v.Pax > 0 {
		roomLabel = fmt.Sprintf(b.labels.Pax, v.Pax)
	}
	assigned, overflow := b.assigner.Assign(rooms, roomActive)
	out.Overflow += overflow
	for i, r := range assigned {
		name := b.labels.ExclusiveRoom
		if rooms > 1 {
			name = fmt.Sprintf("%s %d", b.labels.ExclusiveRoom, i+1)
		}
		switch {
		case r != nil:
			out.Rows = append(out.Rows, occupiedRow(name, roomLabel, r))
		case len(deskActive) > 0:
			out.Rows = append(out.Rows, occupiedRow(name, roomLabel, &deskActive[0]))
		default:
			out.Rows = append(out.Rows, availableRow(name, roomLabel))
		}
	}
	return out, nil
}

func (b *RosterBuilder) buildOfficeSuite(date time.Time, reservations []Reservation, now time.Time) (RosterGroup, error) {
	suites, err := b.units(KindOfficeSuite)
	if err != nil {
		return RosterGroup{}, err
	}
	active := b.activeOn(date, reservations, KindOfficeSuite, now)
	assigned, overflow := b.assigner.Assign(suites, active)

	out := RosterGroup{
		RoomLabel: b.labels.OfficeSuite,
		Date:      StartOfDay(date),
		Type:      GroupOfficeSuite,
		Rows:      make([]RosterRow, 0, suites),
		Overflow:  overflow,
	}
	for i, r := range assigned {
		name := fmt.Sprintf(b.labels.SuiteRoom, i+1)
		if r == nil {
			out.Rows = append(out.Rows, availableRow(name, ""))
			continue
		}
		out.Rows = append(out.Rows, occupiedRow(name, b.variantLabel(r), r))
	}
	return out, nil
}

// units is the number of physical rows for k. A kind without catalog
// entries simply has no rows.
func (b *RosterBuilder) units(k ResourceKind) (int, error) {
	n, err := b.catalog.TotalCapacity(k)
	if errors.Is(err, ErrCapacityNotConfigured) {
		return 0, nil
	}
	return n, err
}

// activeOn returns reservations of kind occupying date, ordered by start.
func (b *RosterBuilder) activeOn(date time.Time, reservations []Reservation, kind ResourceKind, now time.Time) []Reservation {
	from, to := DayWindow(date, now)
	var out []Reservation
	for _, r := range reservations {
		if r.Kind != kind || !r.CountsTowardCapacity() {
			continue
		}
		start, end := r.WindowStart, EffectiveEndForToday(date, r.WindowEnd, now)
		if kind.Slicing() == DateSliced {
			s, e := DateRange(r.WindowStart.In(date.Location()), inLocation(r.WindowEnd, date.Location()))
			start = s
			if e != nil {
				end = *e
			}
		}
		if Overlaps(from, &to, start, &end) {
			out = append(out, r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].WindowStart.Before(out[j].WindowStart)
	})
	return out
}

func (b *RosterBuilder) variantLabel(r *Reservation) string {
	v, err := b.catalog.Variant(r.VariantID)
	if err != nil {
		return ""
	}
	if v.Pax > 0 {
		return fmt.Sprintf(b.labels.Pax, v.Pax)
	}
	return v.Name
}

func availableRow(subType, capacityLabel string) RosterRow {
	return RosterRow{SubType: subType, CapacityLabel: capacityLabel, Occupancy: OccupancyAvailable}
}

func occupiedRow(subType, capacityLabel string, r *Reservation) RosterRow {
	checkIn := r.WindowStart
	return RosterRow{
		SubType:       subType,
		CapacityLabel: capacityLabel,
		Occupancy:     OccupancyFull,
		OrderRef:      r.OrderRef,
		CustomerName:  r.CustomerName,
		CheckIn:       &checkIn,
		CheckOut:      r.WindowEnd,
	}
}
