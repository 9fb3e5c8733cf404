package model

// Anime is the display record of one title in the user's Bangumi collection.
type Anime struct {
	// Title is the localized (Chinese) title.
	Title string `json:"title"`

	// Cover is the URL of the medium-size cover image.
	Cover string `json:"cover"`

	// OriginalTitle is the title in the original language.
	OriginalTitle string `json:"original_title"`

	// Year is the air date string as reported by Bangumi, e.g. "2021-04-03".
	Year string `json:"year"`

	// Genre holds at most two descriptive tags.
	Genre []string `json:"genre"`

	// Progress is the number of episodes the user has watched.
	Progress int `json:"progress"`

	// TotalEpisodes is the episode count of the subject. When Bangumi does not
	// know the count it falls back to Progress.
	TotalEpisodes int `json:"total_episodes"`
}

// Percent returns watch progress in the range [0, 1].
func (a Anime) Percent() float64 {
	if a.TotalEpisodes <= 0 {
		return 0
	}
	p := float64(a.Progress) / float64(a.TotalEpisodes)
	if p > 1 {
		return 1
	}
	return p
}

// AnimeStats summarizes the collection counts.
type AnimeStats struct {
	Total     int `json:"total"`
	Watching  int `json:"watching"`
	Completed int `json:"completed"`
}

// AnimeOverview is everything the anime page needs.
type AnimeOverview struct {
	Stats     AnimeStats `json:"stats"`
	AnimeList []Anime    `json:"anime_list"`
}
