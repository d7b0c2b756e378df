// Package season maps calendar dates to culinary seasons.
package season

import "time"

const (
	Spring = "spring"
	Summer = "summer"
	Autumn = "autumn"
	Winter = "winter"
)

// Order lists the seasons in calendar order starting at spring.
var Order = []string{Spring, Summer, Autumn, Winter}

// Of returns the season containing t. Boundaries follow the astronomical
// dates: spring starts Mar 20, summer Jun 21, autumn Sep 22, winter Dec 21.
func Of(t time.Time) string {
	key := int(t.Month())*100 + t.Day()
	switch {
	case key >= 320 && key < 621:
		return Spring
	case key >= 621 && key < 922:
		return Summer
	case key >= 922 && key < 1221:
		return Autumn
	default:
		return Winter
	}
}

// Valid reports whether s names a known season.
func Valid(s string) bool {
	for _, v := range Order {
		if v == s {
			return true
		}
	}
	return false
}
