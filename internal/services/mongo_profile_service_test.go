package services

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/profilecard/backend/internal/models"
)

// newTestService connects to the MongoDB named by MONGO_TEST_URI and returns
// a service over a throwaway database. Skipped when the env var is unset.
func newTestService(t *testing.T) (*MongoProfileService, context.Context) {
	t.Helper()

	uri := os.Getenv("MONGO_TEST_URI")
	if uri == "" {
		t.Skip("MONGO_TEST_URI not set, skipping Mongo integration test")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	t.Cleanup(cancel)

	dbName := "profilecard_test_" + uuid.New().String()[:8]
	svc, err := NewMongoProfileService(ctx, uri, dbName)
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = svc.db.Drop(context.Background())
		_ = svc.Close(context.Background())
	})
	return svc, ctx
}

func strPtr(s string) *string { return &s }

func TestMongoProfileServiceIntegration(t *testing.T) {
	t.Run("get before any write reports not found", func(t *testing.T) {
		svc, ctx := newTestService(t)

		_, err := svc.GetProfile(ctx)
		assert.ErrorIs(t, err, ErrProfileNotFound)
	})

	t.Run("upsert creates then updates the singleton", func(t *testing.T) {
		svc, ctx := newTestService(t)

		interests := []string{"reading", "chess"}
		created, err := svc.UpsertProfile(ctx, models.ProfileUpdate{
			Name:      strPtr("Ann"),
			Email:     strPtr("ann@x.com"),
			Interests: &interests,
		})
		require.NoError(t, err)
		assert.Equal(t, models.ProfileKey, created.ID)
		assert.Equal(t, "Ann", created.Name)
		assert.False(t, created.CreatedAt.IsZero())

		count, err := svc.CountProfiles(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)

		updated, err := svc.UpsertProfile(ctx, models.ProfileUpdate{
			Name:  strPtr("Anna"),
			Email: strPtr("anna@x.com"),
		})
		require.NoError(t, err)
		assert.Equal(t, "Anna", updated.Name)
		assert.Equal(t, []string{"reading", "chess"}, updated.Interests)
		assert.Equal(t, created.CreatedAt.Unix(), updated.CreatedAt.Unix())

		count, err = svc.CountProfiles(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)
	})

	t.Run("picture-only upsert leaves other fields alone", func(t *testing.T) {
		svc, ctx := newTestService(t)

		interests := []string{"Coding"}
		_, err := svc.UpsertProfile(ctx, models.ProfileUpdate{
			Name:      strPtr("Ann"),
			Email:     strPtr("ann@x.com"),
			Interests: &interests,
		})
		require.NoError(t, err)

		prof, err := svc.UpsertProfile(ctx, models.ProfileUpdate{
			ProfilePicture: strPtr("data:image/png;base64,AAAA"),
		})
		require.NoError(t, err)
		assert.Equal(t, "Ann", prof.Name)
		assert.Equal(t, "ann@x.com", prof.Email)
		assert.Equal(t, []string{"Coding"}, prof.Interests)
		assert.Equal(t, "data:image/png;base64,AAAA", prof.ProfilePicture)
	})

	t.Run("email is normalized on write", func(t *testing.T) {
		svc, ctx := newTestService(t)

		prof, err := svc.UpsertProfile(ctx, models.ProfileUpdate{
			Name:  strPtr("  Ann "),
			Email: strPtr(" Ann@X.COM "),
		})
		require.NoError(t, err)
		assert.Equal(t, "Ann", prof.Name)
		assert.Equal(t, "ann@x.com", prof.Email)
	})

	t.Run("duplicate email on another document fails the write", func(t *testing.T) {
		svc, ctx := newTestService(t)

		_, err := svc.UpsertProfile(ctx, models.ProfileUpdate{
			Name:  strPtr("Ann"),
			Email: strPtr("ann@x.com"),
		})
		require.NoError(t, err)

		// A stray second document; the index must still reject its email
		// being claimed through the API path.
		_, err = svc.profilesCol.InsertOne(ctx, bson.M{
			"_id":   "stray",
			"name":  "Bob",
			"email": "bob@x.com",
		})
		require.NoError(t, err)

		_, err = svc.UpsertProfile(ctx, models.ProfileUpdate{
			Name:  strPtr("Ann"),
			Email: strPtr("bob@x.com"),
		})
		require.Error(t, err)
		apiErr, ok := err.(*models.APIError)
		require.True(t, ok)
		assert.Equal(t, 409, apiErr.Status)
	})

	t.Run("invalid email never reaches the store", func(t *testing.T) {
		svc, ctx := newTestService(t)

		_, err := svc.UpsertProfile(ctx, models.ProfileUpdate{
			Name:  strPtr("Ann"),
			Email: strPtr("not-an-email"),
		})
		require.Error(t, err)

		count, err := svc.CountProfiles(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(0), count)
	})
}
