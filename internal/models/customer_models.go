package models

import "time"

// DateLayout is the wire format for the customer's date of birth.
const DateLayout = "2006-01-02"

// Customer is the stored representation of a customer record.
// Datebirth carries date precision only; Gender is a single character,
// "M" or "F".
type Customer struct {
	ID        int64     `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Lastname  string    `json:"lastname" db:"lastname"`
	Datebirth time.Time `json:"datebirth" db:"datebirth"`
	Gender    string    `json:"gender" db:"gender"`
	Country   string    `json:"country" db:"country"`
}
