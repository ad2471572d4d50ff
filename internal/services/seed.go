package services

import (
	"context"
	"encoding/base64"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/profilecard/backend/internal/models"
)

// SeedStore is the slice of the profile store the seed routine needs.
type SeedStore interface {
	CountProfiles(ctx context.Context) (int64, error)
	UpsertProfile(ctx context.Context, update models.ProfileUpdate) (*models.Profile, error)
}

// SeedResult reports what EnsureDefaultProfile did.
type SeedResult int

const (
	SeedSkipped SeedResult = iota // a profile already existed
	SeedCreated                   // the default profile was written
)

const defaultImageName = "avatar.webp"

// EnsureDefaultProfile creates the default profile when the store holds no
// documents. It is idempotent and returns what it did; callers decide whether
// a failure matters. Startup treats errors as log-and-continue.
func EnsureDefaultProfile(ctx context.Context, store SeedStore, uploadDir string) (SeedResult, error) {
	count, err := store.CountProfiles(ctx)
	if err != nil {
		return SeedSkipped, err
	}
	if count > 0 {
		logrus.Info("profiles already exist, skipping seed")
		return SeedSkipped, nil
	}

	logrus.Info("no profiles found, seeding default profile")

	picture := loadDefaultPicture(uploadDir)

	name := "Solomon Belay"
	email := "solomon.belay@gmail.com"
	interests := []string{"Coding", "Docker", "Photography"}

	_, err = store.UpsertProfile(ctx, models.ProfileUpdate{
		Name:           &name,
		Email:          &email,
		Interests:      &interests,
		ProfilePicture: &picture,
	})
	if err != nil {
		return SeedSkipped, err
	}

	logrus.Info("default profile created")
	return SeedCreated, nil
}

// loadDefaultPicture reads the bundled avatar and inlines it as a data URI.
// The MIME type is fixed to image/webp for the bundled file. A missing file
// only costs the picture, not the seed.
func loadDefaultPicture(uploadDir string) string {
	imagePath := filepath.Join(uploadDir, defaultImageName)
	data, err := os.ReadFile(imagePath)
	if err != nil {
		logrus.WithField("path", imagePath).Warn("default profile picture not found, seeding without one")
		return ""
	}
	return "data:image/webp;base64," + base64.StdEncoding.EncodeToString(data)
}
