// internal/discover/age.go

package discover

import "time"

// AgeAt returns the anniversary-based age at the given time: whole years
// since the birthday, minus one if this year's anniversary hasn't passed.
func AgeAt(birthday, now time.Time) int {
	age := now.Year() - birthday.Year()
	if now.Month() < birthday.Month() ||
		(now.Month() == birthday.Month() && now.Day() < birthday.Day()) {
		age--
	}
	return age
}
