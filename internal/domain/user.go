package domain

import "time"

type User struct {
	ID               int32     `json:"id"`
	Login            string    `json:"login"`
	RegistrationDate time.Time `json:"registration_date"`
}
