package dto

// JSONCollectionPage is one page of GET /v0/users/{user}/collections.
//
// Data is nil when the field is missing from the response, which callers
// treat the same as an empty page.
type JSONCollectionPage struct {
	Total  int                  `json:"total"`
	Limit  int                  `json:"limit"`
	Offset int                  `json:"offset"`
	Data   []JSONCollectionItem `json:"data"`
}

// JSONCollectionItem is one entry of the user's collection.
type JSONCollectionItem struct {
	SubjectID   int          `json:"subject_id"`
	SubjectType int          `json:"subject_type"`
	Type        int          `json:"type"`
	Rate        int          `json:"rate"`
	EpStatus    int          `json:"ep_status"`
	VolStatus   int          `json:"vol_status"`
	UpdatedAt   string       `json:"updated_at"`
	Private     bool         `json:"private"`
	Subject     *JSONSubject `json:"subject"`
}
