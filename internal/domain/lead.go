package domain

import "time"

// LeadStatus grades how likely a lead is to convert.
type LeadStatus string

const (
	LeadStatusHot  LeadStatus = "Hot"
	LeadStatusWarm LeadStatus = "Warm"
	LeadStatusCold LeadStatus = "Cold"
)

// Lead is a prospective customer.
type Lead struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Email       string     `json:"email"`
	Phone       string     `json:"phone"`
	Source      string     `json:"source"`
	Product     string     `json:"product"`
	Status      LeadStatus `json:"status"`
	AssignedTo  string     `json:"assigned_to"`
	Value       int64      `json:"value"`
	CreatedDate time.Time  `json:"created_date"`
	LastContact time.Time  `json:"last_contact"`
}
