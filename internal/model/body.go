package model

import (
	"strings"
	"time"
)

// BodyType enumerates the recognized kinds of celestial bodies.
type BodyType string

const (
	BodyTypePlanet      BodyType = "Planet"
	BodyTypeMoon        BodyType = "Moon"
	BodyTypeAsteroid    BodyType = "Asteroid"
	BodyTypeDwarfPlanet BodyType = "Dwarf Planet"
	BodyTypeComet       BodyType = "Comet"
)

// BodyTypes lists all valid types in their canonical order.
var BodyTypes = []BodyType{
	BodyTypePlanet,
	BodyTypeMoon,
	BodyTypeAsteroid,
	BodyTypeDwarfPlanet,
	BodyTypeComet,
}

// MinDescriptionLength is the minimum trimmed description length.
const MinDescriptionLength = 50

// IsValidBodyType reports whether t is a member of the type enumeration.
func IsValidBodyType(t string) bool {
	for _, v := range BodyTypes {
		if string(v) == t {
			return true
		}
	}
	return false
}

func bodyTypeList() string {
	names := make([]string, len(BodyTypes))
	for i, t := range BodyTypes {
		names[i] = string(t)
	}
	return strings.Join(names, ", ")
}

// CelestialBody is the catalog entity.
type CelestialBody struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Type          BodyType  `json:"type"`
	Description   string    `json:"description"`
	ImageURL      string    `json:"imageUrl"`
	DiscoveredBy  string    `json:"discoveredBy"`
	DiscoveryDate string    `json:"discoveryDate"`
	FunFact       string    `json:"funFact"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// CreateBodyRequest is the payload for creating a celestial body.
// All fields are required.
type CreateBodyRequest struct {
	Name          string `json:"name"`
	Type          string `json:"type"`
	Description   string `json:"description"`
	ImageURL      string `json:"imageUrl"`
	DiscoveredBy  string `json:"discoveredBy"`
	DiscoveryDate string `json:"discoveryDate"`
	FunFact       string `json:"funFact"`
}

// Validate checks every rule independently and accumulates the messages in
// a stable order: field presence (name, type, description, imageUrl,
// discoveredBy, discoveryDate, funFact), then type membership, then
// description length. An empty result means the payload is acceptable.
func (r *CreateBodyRequest) Validate() []string {
	var errs []string

	if strings.TrimSpace(r.Name) == "" {
		errs = append(errs, "name is required")
	}
	if r.Type == "" {
		errs = append(errs, "type is required")
	}
	if strings.TrimSpace(r.Description) == "" {
		errs = append(errs, "description is required")
	}
	if strings.TrimSpace(r.ImageURL) == "" {
		errs = append(errs, "imageUrl is required")
	}
	if strings.TrimSpace(r.DiscoveredBy) == "" {
		errs = append(errs, "discoveredBy is required")
	}
	if strings.TrimSpace(r.DiscoveryDate) == "" {
		errs = append(errs, "discoveryDate is required")
	}
	if strings.TrimSpace(r.FunFact) == "" {
		errs = append(errs, "funFact is required")
	}

	if r.Type != "" && !IsValidBodyType(r.Type) {
		errs = append(errs, "type must be one of: "+bodyTypeList())
	}

	if trimmed := strings.TrimSpace(r.Description); trimmed != "" && len(trimmed) < MinDescriptionLength {
		errs = append(errs, "description must be at least 50 characters (approximately 2 sentences)")
	}

	return errs
}

// ToBody converts a validated create payload into an entity with trimmed
// fields. The id and timestamps are assigned at persistence time.
func (r *CreateBodyRequest) ToBody() *CelestialBody {
	return &CelestialBody{
		Name:          strings.TrimSpace(r.Name),
		Type:          BodyType(r.Type),
		Description:   strings.TrimSpace(r.Description),
		ImageURL:      strings.TrimSpace(r.ImageURL),
		DiscoveredBy:  strings.TrimSpace(r.DiscoveredBy),
		DiscoveryDate: strings.TrimSpace(r.DiscoveryDate),
		FunFact:       strings.TrimSpace(r.FunFact),
	}
}

// UpdateBodyRequest is the partial payload for updating a celestial body.
// Nil fields are left untouched.
type UpdateBodyRequest struct {
	Name          *string `json:"name"`
	Type          *string `json:"type"`
	Description   *string `json:"description"`
	ImageURL      *string `json:"imageUrl"`
	DiscoveredBy  *string `json:"discoveredBy"`
	DiscoveryDate *string `json:"discoveryDate"`
	FunFact       *string `json:"funFact"`
}

// HasFields reports whether at least one field is present.
func (r *UpdateBodyRequest) HasFields() bool {
	return r.Name != nil || r.Type != nil || r.Description != nil ||
		r.ImageURL != nil || r.DiscoveredBy != nil ||
		r.DiscoveryDate != nil || r.FunFact != nil
}

// Validate applies the same rules as CreateBodyRequest.Validate, but only
// to the fields actually present in the payload.
func (r *UpdateBodyRequest) Validate() []string {
	var errs []string

	if r.Name != nil && strings.TrimSpace(*r.Name) == "" {
		errs = append(errs, "name is required")
	}
	if r.Type != nil && *r.Type == "" {
		errs = append(errs, "type is required")
	}
	if r.Description != nil && strings.TrimSpace(*r.Description) == "" {
		errs = append(errs, "description is required")
	}
	if r.ImageURL != nil && strings.TrimSpace(*r.ImageURL) == "" {
		errs = append(errs, "imageUrl is required")
	}
	if r.DiscoveredBy != nil && strings.TrimSpace(*r.DiscoveredBy) == "" {
		errs = append(errs, "discoveredBy is required")
	}
	if r.DiscoveryDate != nil && strings.TrimSpace(*r.DiscoveryDate) == "" {
		errs = append(errs, "discoveryDate is required")
	}
	if r.FunFact != nil && strings.TrimSpace(*r.FunFact) == "" {
		errs = append(errs, "funFact is required")
	}

	if r.Type != nil && *r.Type != "" && !IsValidBodyType(*r.Type) {
		errs = append(errs, "type must be one of: "+bodyTypeList())
	}

	if r.Description != nil {
		if trimmed := strings.TrimSpace(*r.Description); trimmed != "" && len(trimmed) < MinDescriptionLength {
			errs = append(errs, "description must be at least 50 characters (approximately 2 sentences)")
		}
	}

	return errs
}

// Normalize trims all present fields in place.
func (r *UpdateBodyRequest) Normalize() {
	trim := func(p *string) {
		if p != nil {
			*p = strings.TrimSpace(*p)
		}
	}
	trim(r.Name)
	trim(r.Type)
	trim(r.Description)
	trim(r.ImageURL)
	trim(r.DiscoveredBy)
	trim(r.DiscoveryDate)
	trim(r.FunFact)
}
