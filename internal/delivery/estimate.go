package delivery

import (
	"strconv"
	"strings"
	"time"

	"shopswift-be/internal/utils"
)

type Speed string

const (
	SpeedExpress  Speed = "Express"
	SpeedStandard Speed = "Standard"
)

type Estimate struct {
	Pincode   string    `json:"pincode"`
	Type      Speed     `json:"type"`
	Days      int       `json:"days"`
	Date      time.Time `json:"date"`
	DateLabel string    `json:"dateLabel"`
	COD       bool      `json:"cod"`
}

// zones maps pincode prefixes to express delivery days. Everything else is
// standard delivery.
var zones = []struct {
	prefixes []string
	days     int
}{
	{[]string{"700", "110", "400"}, 1},
	{[]string{"560", "600"}, 2},
}

const standardDays = 3

// Quote computes the estimate for pincode as of now. Cash on delivery is
// offered for even pincodes.
func Quote(pincode string, now time.Time) (Estimate, error) {
	if !utils.IsPincode(pincode) {
		return Estimate{}, ErrInvalidPincode
	}

	days, speed := standardDays, SpeedStandard
	for _, z := range zones {
		for _, p := range z.prefixes {
			if strings.HasPrefix(pincode, p) {
				days, speed = z.days, SpeedExpress
			}
		}
	}

	n, _ := strconv.Atoi(pincode)
	date := now.AddDate(0, 0, days)

	return Estimate{
		Pincode:   pincode,
		Type:      speed,
		Days:      days,
		Date:      date,
		DateLabel: date.Format("Monday, 2 Jan"),
		COD:       n%2 == 0,
	}, nil
}
