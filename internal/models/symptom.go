package models

type Mood string

const (
	MoodGood Mood = "Good"
	MoodOkay Mood = "Okay"
	MoodBad  Mood = "Bad"
)

type Cramps string

const (
	CrampsNone   Cramps = "None"
	CrampsMild   Cramps = "Mild"
	CrampsSevere Cramps = "Severe"
)

type Bloating string

const (
	BloatingNo  Bloating = "No"
	BloatingYes Bloating = "Yes"
)

// Moods, CrampLevels and BloatingOptions list the accepted values in display order.
var (
	Moods           = []Mood{MoodGood, MoodOkay, MoodBad}
	CrampLevels     = []Cramps{CrampsNone, CrampsMild, CrampsSevere}
	BloatingOptions = []Bloating{BloatingNo, BloatingYes}
)

// ParseMood converts s into a Mood. Matching is exact.
func ParseMood(s string) (Mood, error) {
	for _, m := range Moods {
		if string(m) == s {
			return m, nil
		}
	}
	return "", &ValidationError{Field: "mood", Value: s, Reason: "must be one of Good, Okay, Bad"}
}

// ParseCramps converts s into a Cramps level.
func ParseCramps(s string) (Cramps, error) {
	for _, c := range CrampLevels {
		if string(c) == s {
			return c, nil
		}
	}
	return "", &ValidationError{Field: "cramps", Value: s, Reason: "must be one of None, Mild, Severe"}
}

// ParseBloating converts s into a Bloating value.
func ParseBloating(s string) (Bloating, error) {
	for _, b := range BloatingOptions {
		if string(b) == s {
			return b, nil
		}
	}
	return "", &ValidationError{Field: "bloating", Value: s, Reason: "must be one of No, Yes"}
}
