package models

// Posting is one shift listing. Favorited is the only field that changes at
// runtime and only the catalog writes it.
type Posting struct {
	ID           int    `json:"id"`
	Title        string `json:"title"`
	Compensation string `json:"compensation"`
	Employer     string `json:"employer"`
	Location     string `json:"location"`
	ContactPhone string `json:"contact_phone"`
	Favorited    bool   `json:"favorited"`
}
