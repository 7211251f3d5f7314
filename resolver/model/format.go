package model

import "fmt"

// FormatETA renders minutes the way offers display them: "Now", "45 min", "2 hr", "2 hr 5 min".
func FormatETA(minutes int) string {
	switch {
	case minutes <= 0:
		return "Now"
	case minutes < 60:
		return fmt.Sprintf("%d min", minutes)
	case minutes%60 == 0:
		return fmt.Sprintf("%d hr", minutes/60)
	default:
		return fmt.Sprintf("%d hr %d min", minutes/60, minutes%60)
	}
}

func FormatMiles(miles float64) string {
	return fmt.Sprintf("%.1f mi", miles)
}
