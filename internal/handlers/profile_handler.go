package handlers

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/profilecard/backend/internal/models"
	"github.com/profilecard/backend/internal/services"
)

// ProfileStore is what the handlers need from the persistence layer.
type ProfileStore interface {
	GetProfile(ctx context.Context) (*models.Profile, error)
	UpsertProfile(ctx context.Context, update models.ProfileUpdate) (*models.Profile, error)
}

type ProfileHandler struct {
	profiles ProfileStore
}

func NewProfileHandler(profiles ProfileStore) *ProfileHandler {
	return &ProfileHandler{profiles: profiles}
}

// GetProfile handles GET /get-profile.
func (h *ProfileHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	prof, err := h.profiles.GetProfile(ctx)
	if err != nil {
		if errors.Is(err, services.ErrProfileNotFound) {
			respondError(w, r, models.NewAPIError(http.StatusNotFound, "User not found"))
			return
		}
		respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, prof)
}

// UpdateProfile handles PUT /update-profile: name, email and interests as a
// comma-separated string.
func (h *ProfileHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, r, models.NewAPIError(http.StatusBadRequest, "Invalid request body"))
		return
	}

	// Checked before any store access.
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Email) == "" {
		respondError(w, r, models.NewAPIError(http.StatusBadRequest, "Name and email are required"))
		return
	}

	interests := models.SplitInterests(req.Interests)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	prof, err := h.profiles.UpsertProfile(ctx, models.ProfileUpdate{
		Name:      &req.Name,
		Email:     &req.Email,
		Interests: &interests,
	})
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, prof)
}

// UpdateProfilePicture handles PUT /profile-picture: a multipart upload under
// field "image", inlined into the document as a base64 data URI. The declared
// content type is trusted verbatim.
func (h *ProfileHandler) UpdateProfilePicture(w http.ResponseWriter, r *http.Request) {
	file, header, err := r.FormFile("image")
	if err != nil {
		respondError(w, r, models.NewAPIError(http.StatusBadRequest, "No file uploaded"))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		respondError(w, r, err)
		return
	}

	mimeType := header.Header.Get("Content-Type")
	dataURI := "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(data)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	prof, err := h.profiles.UpsertProfile(ctx, models.ProfileUpdate{
		ProfilePicture: &dataURI,
	})
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, prof)
}
