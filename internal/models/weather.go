package models

// Weather is a single observation used for one scheduling run.
type Weather struct {
	Temperature int    `json:"temperature"`
	Description string `json:"description"`
	Rain        bool   `json:"rain"`
}
