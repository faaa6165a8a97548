package services

import (
	"fmt"
	"strings"
	"time"

	"purebiz_laundry_go/models"
)

var serviceLabels = map[string]string{
	models.ServiceHotelLaundry:   "Hotel Laundry",
	models.ServiceHospitalLinen:  "Hospital Linen Cleaning",
	models.ServicePickupDelivery: "Pickup & Delivery",
	models.ServiceBulkWashing:    "Bulk Washing & Sterilization",
	models.ServiceCustomSolution: "Custom Solution",
	models.ServiceRegularPickup:  "Regular Pickup Service",
}

var volumeLabels = map[string]string{
	models.VolumeSmall:  "Small (1-5 bags)",
	models.VolumeMedium: "Medium (6-15 bags)",
	models.VolumeLarge:  "Large (16-30 bags)",
	models.VolumeBulk:   "Bulk (30+ bags)",
}

// Select order for the forms
var (
	contactServiceOrder = []string{
		models.ServiceHotelLaundry,
		models.ServiceHospitalLinen,
		models.ServicePickupDelivery,
		models.ServiceBulkWashing,
		models.ServiceCustomSolution,
	}
	pickupServiceOrder = []string{
		models.ServiceHotelLaundry,
		models.ServiceHospitalLinen,
		models.ServiceBulkWashing,
		models.ServiceRegularPickup,
	}
	volumeOrder = []string{models.VolumeSmall, models.VolumeMedium, models.VolumeLarge, models.VolumeBulk}
)

const (
	firstPickupHour = 6
	lastPickupHour  = 22
)

// ServiceTypeLabel returns the display name of a service code. Unknown codes
// are shown with hyphens replaced by spaces.
func ServiceTypeLabel(code string) string {
	if label, ok := serviceLabels[code]; ok {
		return label
	}
	return strings.ReplaceAll(code, "-", " ")
}

// VolumeLabel returns the display name of a volume estimate; unknown codes are
// returned unchanged
func VolumeLabel(code string) string {
	if label, ok := volumeLabels[code]; ok {
		return label
	}
	return code
}

// FormatPickupTime turns "15:00" into "3:00 PM". Unparsable input is returned as is.
func FormatPickupTime(hhmm string) string {
	t, err := time.Parse("15:04", hhmm)
	if err != nil {
		return hhmm
	}
	return t.Format("3:04 PM")
}

// FormatPickupDate turns "2024-01-15" into "Monday, January 15, 2024".
// Unparsable input is returned as is.
func FormatPickupDate(date string) string {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return date
	}
	return t.Format("Monday, January 2, 2006")
}

// pickupTimeSlots lists the hourly slots offered by the pickup form
func pickupTimeSlots() []models.Option {
	slots := make([]models.Option, 0, lastPickupHour-firstPickupHour+1)
	for hour := firstPickupHour; hour <= lastPickupHour; hour++ {
		value := fmt.Sprintf("%02d:00", hour)
		slots = append(slots, models.Option{Value: value, Label: FormatPickupTime(value)})
	}
	return slots
}

func options(codes []string, label func(string) string) []models.Option {
	out := make([]models.Option, 0, len(codes))
	for _, code := range codes {
		out = append(out, models.Option{Value: code, Label: label(code)})
	}
	return out
}
