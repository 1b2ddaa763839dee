package models

// Scripture is a text in the library. Its ID keys bookmarks and notes.
type Scripture struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	Verses        int    `json:"verses"`
	EstimatedTime string `json:"estimated_time"`
	Difficulty    int    `json:"difficulty"`
	Category      string `json:"category"` // Vedas, Upanishads, Epics, Puranas
	Popularity    int    `json:"popularity"`
}

var Scriptures = []Scripture{
	{
		ID:            "bhagavad-gita",
		Title:         "Bhagavad Gītā",
		Description:   "The eternal dialogue between Prince Arjuna and Lord Krishna on the battlefield of life",
		Verses:        700,
		EstimatedTime: "25-30 hours",
		Difficulty:    4,
		Category:      "Epics",
		Popularity:    95,
	},
	{
		ID:            "rigveda",
		Title:         "Rigveda",
		Description:   "The oldest of the Vedas, containing hymns of praise and philosophical insights",
		Verses:        1028,
		EstimatedTime: "80+ hours",
		Difficulty:    5,
		Category:      "Vedas",
		Popularity:    78,
	},
	{
		ID:            "isha-upanishad",
		Title:         "Īśāvāsya Upanishad",
		Description:   "A profound meditation on the divine presence in all of creation",
		Verses:        18,
		EstimatedTime: "2-3 hours",
		Difficulty:    3,
		Category:      "Upanishads",
		Popularity:    89,
	},
	{
		ID:            "ramayana",
		Title:         "Rāmāyaṇa",
		Description:   "The epic journey of Prince Rama, embodying dharma and devotion",
		Verses:        24000,
		EstimatedTime: "120+ hours",
		Difficulty:    4,
		Category:      "Epics",
		Popularity:    92,
	},
	{
		ID:            "katha-upanishad",
		Title:         "Kaṭha Upanishad",
		Description:   "The timeless dialogue between young Nachiketa and Death himself",
		Verses:        119,
		EstimatedTime: "8-10 hours",
		Difficulty:    4,
		Category:      "Upanishads",
		Popularity:    85,
	},
	{
		ID:            "bhagavata-purana",
		Title:         "Bhāgavata Purāṇa",
		Description:   "Stories of divine love and the supreme devotion to Lord Krishna",
		Verses:        18000,
		EstimatedTime: "100+ hours",
		Difficulty:    3,
		Category:      "Puranas",
		Popularity:    88,
	},
}

func FindScripture(id string) (Scripture, bool) {
	for _, s := range Scriptures {
		if s.ID == id {
			return s, true
		}
	}
	return Scripture{}, false
}
