package domain

import "time"

// DutyEntry is one date of the duty rotation.
// Invariant (enforced by validation, not construction): no two assignments
// in the same entry share the same (role, service) pair.
type DutyEntry struct {
	Date        *time.Time       `json:"date,omitempty"`
	Assignments []DutyAssignment `json:"assignments"`
}

type DutyAssignment struct {
	Role    RoleName    `json:"role"`
	Service ServiceSlot `json:"service"`
	Person  string      `json:"person,omitempty"`
}
