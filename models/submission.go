package models

import "strings"

// Contact form service types
const (
	ServiceHotelLaundry   = "hotel-laundry"
	ServiceHospitalLinen  = "hospital-linen"
	ServicePickupDelivery = "pickup-delivery"
	ServiceBulkWashing    = "bulk-washing"
	ServiceCustomSolution = "custom-solution"
	ServiceRegularPickup  = "regular-pickup" // Pickup form only
)

// Pickup volume estimates
const (
	VolumeSmall  = "small"
	VolumeMedium = "medium"
	VolumeLarge  = "large"
	VolumeBulk   = "bulk"
)

// ContactSubmission is the payload of the general contact form
type ContactSubmission struct {
	Name        string `json:"name"`
	CompanyName string `json:"companyName"`
	Email       string `json:"email" validate:"email"`
	Phone       string `json:"phone"`
	ServiceType string `json:"serviceType"`
	Message     string `json:"message,omitempty"` // Optional
}

// Normalize trims surrounding whitespace from every field
func (s *ContactSubmission) Normalize() {
	trimAll(&s.Name, &s.CompanyName, &s.Email, &s.Phone, &s.ServiceType, &s.Message)
}

// MissingFields returns the JSON names of required fields that are empty
func (s ContactSubmission) MissingFields() []string {
	return missing(
		field{"name", s.Name},
		field{"companyName", s.CompanyName},
		field{"email", s.Email},
		field{"phone", s.Phone},
		field{"serviceType", s.ServiceType},
	)
}

// PickupSubmission is the payload of the schedule pickup form
type PickupSubmission struct {
	CompanyName         string `json:"companyName"`
	ContactPerson       string `json:"contactPerson"`
	Email               string `json:"email" validate:"email"`
	Phone               string `json:"phone"`
	Address             string `json:"address"`
	City                string `json:"city"`
	ZipCode             string `json:"zipCode"`
	ServiceType         string `json:"serviceType"`
	PickupDate          string `json:"pickupDate"` // YYYY-MM-DD
	PickupTime          string `json:"pickupTime"` // HH:MM, 24h
	EstimatedVolume     string `json:"estimatedVolume,omitempty"`
	SpecialInstructions string `json:"specialInstructions,omitempty"`
	UrgentPickup        bool   `json:"urgentPickup,omitempty"`
}

// Normalize trims surrounding whitespace from every string field
func (s *PickupSubmission) Normalize() {
	trimAll(&s.CompanyName, &s.ContactPerson, &s.Email, &s.Phone, &s.Address, &s.City,
		&s.ZipCode, &s.ServiceType, &s.PickupDate, &s.PickupTime, &s.EstimatedVolume,
		&s.SpecialInstructions)
}

// MissingFields returns the JSON names of required fields that are empty
func (s PickupSubmission) MissingFields() []string {
	return missing(
		field{"companyName", s.CompanyName},
		field{"contactPerson", s.ContactPerson},
		field{"email", s.Email},
		field{"phone", s.Phone},
		field{"address", s.Address},
		field{"city", s.City},
		field{"zipCode", s.ZipCode},
		field{"serviceType", s.ServiceType},
		field{"pickupDate", s.PickupDate},
		field{"pickupTime", s.PickupTime},
	)
}

// SubmissionResponse is the envelope returned by every relay endpoint
type SubmissionResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type field struct {
	name  string
	value string
}

func missing(fields ...field) []string {
	var names []string
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			names = append(names, f.name)
		}
	}
	return names
}

func trimAll(values ...*string) {
	for _, v := range values {
		*v = strings.TrimSpace(*v)
	}
}
