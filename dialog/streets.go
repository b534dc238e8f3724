package dialog

import "strings"

var streetSuffixes = map[string]string{
	"street":    "st",
	"avenue":    "ave",
	"boulevard": "blvd",
	"drive":     "dr",
	"road":      "rd",
	"place":     "pl",
	"lane":      "ln",
	"court":     "ct",
	"terrace":   "ter",
	"highway":   "hwy",
	"parkway":   "pkwy",
	"alley":     "aly",
	"circle":    "cir",
	"square":    "sq",
}

// Abbreviate lower-cases a spoken street name, collapses whitespace and
// abbreviates a trailing street suffix: "Church Street" -> "church st".
func Abbreviate(street string) string {
	words := strings.Fields(strings.ToLower(street))
	if len(words) == 0 {
		return ""
	}
	last := len(words) - 1
	if short, ok := streetSuffixes[words[last]]; ok && last > 0 {
		words[last] = short
	}
	return strings.Join(words, " ")
}

// StopName joins two cross streets into the provider's "<a> & <b>" form.
func StopName(first, second string) string {
	return Abbreviate(first) + " & " + Abbreviate(second)
}
