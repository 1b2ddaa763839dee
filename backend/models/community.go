package models

// StudyGroup is a community circle listed alongside the other catalogs.
type StudyGroup struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Members     int    `json:"members"`
	NextMeeting string `json:"next_meeting"`
	Category    string `json:"category"`
	Difficulty  int    `json:"difficulty"`
}

var StudyGroups = []StudyGroup{
	{
		ID:          "gita-study-circle",
		Name:        "Bhagavad Gita Study Circle",
		Description: "Weekly deep-dive discussions on Krishna's teachings",
		Members:     156,
		NextMeeting: "Tomorrow 7:00 PM EST",
		Category:    "Study Group",
		Difficulty:  3,
	},
	{
		ID:          "sanskrit-beginners",
		Name:        "Sanskrit Beginners",
		Description: "Learn Sanskrit script and basic vocabulary together",
		Members:     89,
		NextMeeting: "Sunday 3:00 PM PST",
		Category:    "Language",
		Difficulty:  1,
	},
	{
		ID:          "philosophy-debate-club",
		Name:        "Philosophy Debate Club",
		Description: "Scholarly discussions on Vedantic philosophy",
		Members:     203,
		NextMeeting: "Friday 6:00 PM GMT",
		Category:    "Philosophy",
		Difficulty:  4,
	},
}
