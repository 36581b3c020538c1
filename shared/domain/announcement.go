package domain

import "time"

type Announcement struct {
	Title            string       `json:"title"`
	Description      string       `json:"description"`
	Type             string       `json:"type,omitempty"`
	StartDate        *time.Time   `json:"start_date,omitempty"`
	EndDate          *time.Time   `json:"end_date,omitempty"`
	Deadline         *time.Time   `json:"deadline,omitempty"`
	ContactPerson    string       `json:"contact_person,omitempty"`
	ContactPhone     string       `json:"contact_phone,omitempty"`
	RegistrationLink string       `json:"registration_link,omitempty"`
	Payment          *PaymentInfo `json:"payment,omitempty"`
}

type PaymentInfo struct {
	Amount   float64    `json:"amount"`
	Currency string     `json:"currency"`
	Methods  []string   `json:"methods,omitempty"`
	Deadline *time.Time `json:"deadline,omitempty"`
}
