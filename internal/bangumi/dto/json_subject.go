package dto

import (
	"regexp"

	"github.com/handiism/blog-index/internal/model"
)

// maxGenres is how many descriptive tags are kept per title.
const maxGenres = 2

// containsDigit matches tags like "2021" or "12话" that carry no genre information.
var containsDigit = regexp.MustCompile(`\d`)

// JSONSubject is the slim subject embedded in a collection entry.
type JSONSubject struct {
	ID      int         `json:"id"`
	Type    int         `json:"type"`
	Name    string      `json:"name"`
	NameCN  string      `json:"name_cn"`
	Date    string      `json:"date"`
	Eps     int         `json:"eps"`
	Score   float64     `json:"score"`
	Rank    int         `json:"rank"`
	Images  *JSONImages `json:"images"`
	Tags    []JSONTag   `json:"tags"`
	Summary string      `json:"short_summary"`
}

// JSONImages holds the cover image URLs in several sizes.
type JSONImages struct {
	Large  string `json:"large"`
	Common string `json:"common"`
	Medium string `json:"medium"`
	Small  string `json:"small"`
	Grid   string `json:"grid"`
}

// JSONTag is a user-contributed subject tag.
type JSONTag struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// ToAnime converts the collection entry to a model.Anime.
//
// Mapping rules:
//   - Progress is ep_status (0 when absent)
//   - TotalEpisodes is subject.eps, or Progress when eps is unknown (0)
//   - Genre is the first two tags whose name contains no digit
//   - Everything else is copied as is
func (ci *JSONCollectionItem) ToAnime() model.Anime {
	progress := ci.EpStatus

	anime := model.Anime{
		Progress:      progress,
		TotalEpisodes: progress,
		Genre:         []string{},
	}

	s := ci.Subject
	if s == nil {
		return anime
	}

	if s.Eps > 0 {
		anime.TotalEpisodes = s.Eps
	}
	anime.Title = s.NameCN
	anime.OriginalTitle = s.Name
	anime.Year = s.Date
	if s.Images != nil {
		anime.Cover = s.Images.Medium
	}

	for _, tag := range s.Tags {
		if len(anime.Genre) == maxGenres {
			break
		}
		if containsDigit.MatchString(tag.Name) {
			continue
		}
		anime.Genre = append(anime.Genre, tag.Name)
	}

	return anime
}
