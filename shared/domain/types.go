package domain

type (
	Email    = string
	Password = string
	UserId   = int64

	BulletinId = int64

	// ClockTime is a wall-clock string in "HH:mm" (or "H:mm") form.
	// Parsing and comparison live in backend/internal/timeslot.
	ClockTime = string

	RoleName     = string
	TemplateName = string
)

// ServiceType tags a service schedule entry.
type ServiceType string

const (
	SongService   ServiceType = "song_service"
	SabbathSchool ServiceType = "sabbath_school"
	FirstService  ServiceType = "first_service"
	SecondService ServiceType = "second_service"
	OtherService  ServiceType = "other"
)

// Well-known role identifiers referenced by the validation rules and the
// duty-rotation scaffolding.
const (
	RolePulpitManager RoleName = "pulpit_manager"
	RolePianist       RoleName = "pianist"
	RoleOpeningPrayer RoleName = "opening_prayer"
)

// ServiceSlot selects which of the two worship services a duty assignment covers.
type ServiceSlot string

const (
	SlotFirst  ServiceSlot = "first"
	SlotSecond ServiceSlot = "second"
)
