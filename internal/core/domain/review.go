package domain

import "time"

// Review is a customer testimonial shown on the landing page.
type Review struct {
	ID        string    `json:"_id"`
	Name      string    `json:"name"`
	Details   string    `json:"details"`
	Rating    float64   `json:"rating"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
}
