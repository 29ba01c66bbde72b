// Package contact maps backend hits to the venue contact record exposed
// by the search facade.
package contact

import (
	"strconv"

	"github.com/gigcompass/venuesearch/internal/domain/search/result"
)

// Contact is a venue contact assembled from a search hit.
type Contact struct {
	ID         string              `json:"id"`
	Email      string              `json:"email,omitempty"`
	FirstName  string              `json:"first_name,omitempty"`
	LastName   string              `json:"last_name,omitempty"`
	Company    string              `json:"company,omitempty"`
	Title      string              `json:"title,omitempty"`
	Headline   string              `json:"headline,omitempty"`
	City       string              `json:"city,omitempty"`
	State      string              `json:"state,omitempty"`
	Country    string              `json:"country,omitempty"`
	Address    string              `json:"address,omitempty"`
	Website    string              `json:"website,omitempty"`
	Metadata   string              `json:"metadata,omitempty"`
	Score      float64             `json:"score"`
	Highlights map[string][]string `json:"highlights,omitempty"`
}

// FromDocument maps a backend hit to a contact. The contactId source
// field takes precedence over the backend document id.
func FromDocument(d result.ScoredDocument) Contact {
	return Contact{
		ID:         IdentityOf(d),
		Email:      d.StringField("email"),
		FirstName:  d.StringField("firstName"),
		LastName:   d.StringField("lastName"),
		Company:    d.StringField("company"),
		Title:      d.StringField("title"),
		Headline:   d.StringField("headline"),
		City:       d.StringField("city"),
		State:      d.StringField("state"),
		Country:    d.StringField("country"),
		Address:    d.StringField("address"),
		Website:    d.StringField("website"),
		Metadata:   d.StringField("metadata"),
		Score:      d.Score(),
		Highlights: d.Highlights(),
	}
}

// IdentityOf returns the contact identifier for a hit: the contactId
// source field when present (numeric or string), otherwise the backend
// document id.
func IdentityOf(d result.ScoredDocument) string {
	switch v := d.Source()["contactId"].(type) {
	case string:
		if v != "" {
			return v
		}
	case float64:
		return strconv.FormatInt(int64(v), 10)
	}
	return d.ID()
}
