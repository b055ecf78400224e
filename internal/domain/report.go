package domain

import "time"

// Report is a generated analytics export.
type Report struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Type          string    `json:"type"`
	GeneratedDate time.Time `json:"generated_date"`
	Format        string    `json:"format"`
	Size          string    `json:"size"`
}
