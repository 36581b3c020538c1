package domain

import (
	"time"
)

// to iterate thru layers: handler -> service -> storage
type BulletinCreationData struct {
	Date            time.Time
	ChurchName      string
	ChurchAddress   string
	WelcomeMessage  string
	Services        []ServiceSchedule
	Announcements   []Announcement
	DutySchedule    []DutyEntry
	FaithPrinciples []string
	Contacts        ContactBook
}

type BulletinMetadata struct {
	Id         BulletinId `json:"id"`
	Date       time.Time  `json:"date"`
	ChurchName string     `json:"church_name"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// Bulletin is the weekly worship document. During editing it is partial;
// the validation rules report what is missing rather than rejecting it.
type Bulletin struct {
	BulletinMetadata
	ChurchAddress   string            `json:"church_address,omitempty"`
	WelcomeMessage  string            `json:"welcome_message"`
	Services        []ServiceSchedule `json:"services"`
	Announcements   []Announcement    `json:"announcements"`
	DutySchedule    []DutyEntry       `json:"duty_schedule"`
	FaithPrinciples []string          `json:"faith_principles"`
	Contacts        ContactBook       `json:"contacts"`
}

// ServiceSchedule is a named time window within the bulletin's day.
// StartTime/EndTime are "HH:mm" strings; the window is half-open [start, end).
type ServiceSchedule struct {
	Id        string           `json:"id"`
	Name      string           `json:"name"`
	Type      ServiceType      `json:"type"`
	StartTime ClockTime        `json:"start_time"`
	EndTime   ClockTime        `json:"end_time"`
	Roles     []RoleAssignment `json:"roles"`
	Program   []ProgramItem    `json:"program,omitempty"`
}

// ProgramItem is one (key, value) pair of a service's program, kept as an
// ordered sequence so renderers never have to shape-sniff.
type ProgramItem struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

type RoleAssignment struct {
	Role   RoleName `json:"role"`
	Person string   `json:"person,omitempty"`
	Hymn   string   `json:"hymn,omitempty"`
	Song   string   `json:"song,omitempty"`
	Sermon string   `json:"sermon,omitempty"`
}
