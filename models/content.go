package models

// Service is one of the service offerings shown in the services section
type Service struct {
	Slug        string   `json:"slug"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Features    []string `json:"features"`
}

// ProcessStep is one step of the "how it works" strip
type ProcessStep struct {
	Step        string `json:"step"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type Testimonial struct {
	Name     string `json:"name"`
	Position string `json:"position"`
	Company  string `json:"company"`
	Image    string `json:"image"`
	Rating   int    `json:"rating"` // 1-5
	Text     string `json:"text"`
	Logo     string `json:"logo"`
}

type ClientLogo struct {
	Name string `json:"name"`
	Logo string `json:"logo"`
}

// Option is a value/label pair for a form select
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// FormOptions holds the select options for both lead forms
type FormOptions struct {
	ContactServiceTypes []Option `json:"contactServiceTypes"`
	PickupServiceTypes  []Option `json:"pickupServiceTypes"`
	Volumes             []Option `json:"volumes"`
	TimeSlots           []Option `json:"timeSlots"`
}

// FeaturedTestimonial is the carousel's current slide
type FeaturedTestimonial struct {
	Index       int         `json:"index"`
	Total       int         `json:"total"`
	Testimonial Testimonial `json:"testimonial"`
}
