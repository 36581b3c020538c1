package domain

type ContactBook struct {
	Pastors     []Pastor     `json:"pastors"`
	Departments []Department `json:"departments"`
	PrayerLines []PrayerLine `json:"prayer_lines,omitempty"`
}

type Pastor struct {
	Name  string `json:"name"`
	Phone string `json:"phone,omitempty"`
	Email string `json:"email,omitempty"`
}

type Department struct {
	Name        string `json:"name"`
	Head        string `json:"head,omitempty"`
	Phone       string `json:"phone,omitempty"`
	Email       string `json:"email,omitempty"`
	Description string `json:"description,omitempty"`
}

type PrayerLine struct {
	Type    string `json:"type"`
	Contact string `json:"contact"`
	Hours   string `json:"hours,omitempty"`
}
