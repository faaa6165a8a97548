package services

import "purebiz_laundry_go/models"

// Hotline is the 24/7 phone number printed in customer emails and the footer
const Hotline = "+91 (8318424372)"

var services = []models.Service{
	{
		Slug:        models.ServiceHotelLaundry,
		Title:       "Hotel Laundry",
		Description: "Premium laundry services for luxury hotels and resorts. We handle bed linens, towels, uniforms, and guest laundry with the highest standards.",
		Features: []string{
			"Luxury linen care",
			"Guest laundry services",
			"Staff uniform cleaning",
			"Express turnaround options",
		},
	},
	{
		Slug:        models.ServiceHospitalLinen,
		Title:       "Hospital Linen Cleaning",
		Description: "Medical-grade cleaning and sterilization for healthcare facilities. We ensure complete hygiene and safety for all medical linens.",
		Features: []string{
			"Medical-grade sterilization",
			"Infection control protocols",
			"Specialized detergents",
			"Compliance with health standards",
		},
	},
	{
		Slug:        models.ServicePickupDelivery,
		Title:       "Pickup & Delivery",
		Description: "Convenient pickup and delivery services that fit your schedule. We provide reliable transportation with tracking and scheduling.",
		Features: []string{
			"Scheduled pickups",
			"Real-time tracking",
			"Flexible delivery windows",
			"Emergency service available",
		},
	},
	{
		Slug:        models.ServiceBulkWashing,
		Title:       "Bulk Washing & Sterilization",
		Description: "Large-volume processing with industrial-grade equipment. Perfect for high-capacity needs with consistent quality.",
		Features: []string{
			"High-capacity processing",
			"Industrial equipment",
			"Quality consistency",
			"Cost-effective pricing",
		},
	},
}

var processSteps = []models.ProcessStep{
	{Step: "01", Title: "Collection", Description: "Scheduled pickup from your facility"},
	{Step: "02", Title: "Processing", Description: "Professional cleaning and sterilization"},
	{Step: "03", Title: "Quality Check", Description: "Thorough inspection and packaging"},
	{Step: "04", Title: "Delivery", Description: "On-time delivery to your location"},
}

var testimonials = []models.Testimonial{
	{
		Name:     "Sarah Johnson",
		Position: "General Manager",
		Company:  "Grand Plaza Hotel",
		Image:    "https://images.unsplash.com/photo-1494790108755-2616b612b786?w=150&h=150&fit=crop&crop=face",
		Rating:   5,
		Text:     "PureBiz has transformed our laundry operations. Their attention to detail and consistent quality has elevated our guest experience significantly. The 24/7 support is invaluable for our 24-hour operations.",
		Logo:     "🏨",
	},
	{
		Name:     "Dr. Michael Chen",
		Position: "Operations Director",
		Company:  "Metropolitan Medical Center",
		Image:    "https://images.unsplash.com/photo-1612349317150-e413f6a5b16d?w=150&h=150&fit=crop&crop=face",
		Rating:   5,
		Text:     "The medical-grade sterilization and infection control protocols give us complete confidence. PureBiz understands the critical nature of hospital linens and delivers exceptional results every time.",
		Logo:     "🏥",
	},
	{
		Name:     "Robert Martinez",
		Position: "Facility Manager",
		Company:  "Luxury Resort & Spa",
		Image:    "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?w=150&h=150&fit=crop&crop=face",
		Rating:   5,
		Text:     "Outstanding service and reliability. PureBiz handles our high-volume needs with ease, and their eco-friendly approach aligns perfectly with our sustainability goals. Highly recommended!",
		Logo:     "🌴",
	},
	{
		Name:     "Lisa Thompson",
		Position: "Housekeeping Director",
		Company:  "City General Hospital",
		Image:    "https://images.unsplash.com/photo-1559839734-2b71ea197ec2?w=150&h=150&fit=crop&crop=face",
		Rating:   5,
		Text:     "The pickup and delivery service is seamless, and the quality is consistently excellent. PureBiz has become an integral part of our operations, and we couldn't be happier with their service.",
		Logo:     "⚕️",
	},
}

var clientLogos = []models.ClientLogo{
	{Name: "Grand Plaza Hotel", Logo: "🏨"},
	{Name: "Metropolitan Medical", Logo: "🏥"},
	{Name: "Luxury Resort & Spa", Logo: "🌴"},
	{Name: "City General Hospital", Logo: "⚕️"},
	{Name: "Business Hotel Chain", Logo: "🏢"},
	{Name: "Regional Medical Center", Logo: "🩺"},
}

// Catalog serves the static page content. Every accessor returns a copy.
type Catalog struct{}

func NewCatalog() *Catalog {
	return &Catalog{}
}

func (c *Catalog) Services() []models.Service {
	out := make([]models.Service, len(services))
	for i, s := range services {
		s.Features = append([]string(nil), s.Features...)
		out[i] = s
	}
	return out
}

func (c *Catalog) ProcessSteps() []models.ProcessStep {
	return append([]models.ProcessStep(nil), processSteps...)
}

func (c *Catalog) Testimonials() []models.Testimonial {
	return append([]models.Testimonial(nil), testimonials...)
}

// Testimonial returns the testimonial at index i
func (c *Catalog) Testimonial(i int) (models.Testimonial, bool) {
	if i < 0 || i >= len(testimonials) {
		return models.Testimonial{}, false
	}
	return testimonials[i], true
}

func (c *Catalog) ClientLogos() []models.ClientLogo {
	return append([]models.ClientLogo(nil), clientLogos...)
}

func (c *Catalog) FormOptions() models.FormOptions {
	return models.FormOptions{
		ContactServiceTypes: options(contactServiceOrder, ServiceTypeLabel),
		PickupServiceTypes:  options(pickupServiceOrder, ServiceTypeLabel),
		Volumes:             options(volumeOrder, VolumeLabel),
		TimeSlots:           pickupTimeSlots(),
	}
}
