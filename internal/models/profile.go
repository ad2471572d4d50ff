package models

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// ProfileKey is the well-known _id of the singleton profile document.
// Every read and write path addresses the document through this key, so
// accidental extra documents can never change which profile the API serves.
const ProfileKey = "profile"

var validate = validator.New()

// Profile is the single user record this service manages.
type Profile struct {
	ID             string    `json:"id" bson:"_id"`
	Name           string    `json:"name" bson:"name" validate:"required"`
	Email          string    `json:"email" bson:"email" validate:"required,email"`
	Interests      []string  `json:"interests" bson:"interests"`
	ProfilePicture string    `json:"profilePicture" bson:"profilePicture"`
	CreatedAt      time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt" bson:"updatedAt"`
}

// ProfileUpdate is a partial write against the singleton profile. Nil fields
// are left untouched by the store.
type ProfileUpdate struct {
	Name           *string
	Email          *string
	Interests      *[]string
	ProfilePicture *string
}

// Normalize trims name and trims+lowercases email, mirroring what the
// document schema historically did on save.
func (u *ProfileUpdate) Normalize() {
	if u.Name != nil {
		*u.Name = strings.TrimSpace(*u.Name)
	}
	if u.Email != nil {
		*u.Email = strings.ToLower(strings.TrimSpace(*u.Email))
	}
}

// Validate checks only the fields the update carries. A picture-only update
// therefore passes without name/email, matching upsert-partial semantics.
func (u *ProfileUpdate) Validate() error {
	if u.Name != nil {
		if err := validate.Var(*u.Name, "required"); err != nil {
			return &APIError{Status: 400, Message: "Name is required"}
		}
	}
	if u.Email != nil {
		if err := validate.Var(*u.Email, "required,email"); err != nil {
			return &APIError{Status: 400, Message: "Please use a valid email address"}
		}
	}
	return nil
}

// UpdateProfileRequest is the body of PUT /update-profile. Interests arrive
// as a single comma-separated string.
type UpdateProfileRequest struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Interests string `json:"interests"`
}

// SplitInterests turns a comma-separated string into trimmed tags. An empty
// or whitespace-only input yields an empty slice, never [""].
func SplitInterests(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return []string{}
	}
	parts := strings.Split(raw, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		tags = append(tags, strings.TrimSpace(p))
	}
	return tags
}
