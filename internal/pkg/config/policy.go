package config

import (
	"fmt"
	"os"

	"workspace-booking/internal/domain/booking"

	"gopkg.in/yaml.v3"
)

// PolicyFile is the on-disk shape of the booking policy.
type PolicyFile struct {
	OperatingHours struct {
		Open  string `yaml:"open"`
		Close string `yaml:"close"`
	} `yaml:"operating_hours"`
	DefaultCapacity map[string]int `yaml:"default_capacity"`
	Roster          RosterPolicy   `yaml:"roster"`
}

type RosterPolicy struct {
	Labels booking.RosterLabels `yaml:"labels"`
}

// BookingPolicy is the resolved policy handed to the domain.
type BookingPolicy struct {
	Capacity booking.Policy
	Labels   booking.RosterLabels
}

func DefaultBookingPolicy() BookingPolicy {
	return BookingPolicy{
		Capacity: booking.DefaultPolicy(),
		Labels:   booking.DefaultRosterLabels(),
	}
}

// LoadPolicy reads the YAML policy at path. An empty path yields the
// built-in defaults; keys missing from the file keep their defaults.
func LoadPolicy(path string) (BookingPolicy, error) {
	policy := DefaultBookingPolicy()
	if path == "" {
		return policy, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return BookingPolicy{}, fmt.Errorf("open booking policy: %w", err)
	}
	defer f.Close()

	var file PolicyFile
	if err := yaml.NewDecoder(f).Decode(&file); err != nil {
		return BookingPolicy{}, fmt.Errorf("decode booking policy: %w", err)
	}
	return file.apply(policy)
}

func (f PolicyFile) apply(policy BookingPolicy) (BookingPolicy, error) {
	if f.OperatingHours.Open != "" {
		open, err := booking.ParseTimeOfDay(f.OperatingHours.Open)
		if err != nil {
			return BookingPolicy{}, err
		}
		policy.Capacity.Hours.Open = open
	}
	if f.OperatingHours.Close != "" {
		closing, err := booking.ParseTimeOfDay(f.OperatingHours.Close)
		if err != nil {
			return BookingPolicy{}, err
		}
		policy.Capacity.Hours.Close = closing
	}
	if err := policy.Capacity.Hours.Validate(); err != nil {
		return BookingPolicy{}, err
	}

	for name, n := range f.DefaultCapacity {
		kind, err := booking.ParseKind(name)
		if err != nil {
			return BookingPolicy{}, fmt.Errorf("default_capacity: unknown kind %q", name)
		}
		if n <= 0 {
			return BookingPolicy{}, fmt.Errorf("default_capacity.%s must be positive", name)
		}
		policy.Capacity.DefaultCapacity[kind] = n
	}

	mergeLabel(&policy.Labels.CoworkingRoom, f.Roster.Labels.CoworkingRoom)
	mergeLabel(&policy.Labels.OfficeSuite, f.Roster.Labels.OfficeSuite)
	mergeLabel(&policy.Labels.Desk, f.Roster.Labels.Desk)
	mergeLabel(&policy.Labels.ExclusiveRoom, f.Roster.Labels.ExclusiveRoom)
	mergeLabel(&policy.Labels.SuiteRoom, f.Roster.Labels.SuiteRoom)
	mergeLabel(&policy.Labels.Pax, f.Roster.Labels.Pax)
	return policy, nil
}

func mergeLabel(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
