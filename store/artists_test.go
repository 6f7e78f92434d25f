package store

import (
	"testing"

	"cloudstage/models"
	"cloudstage/status"
	"cloudstage/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newArtistStore(t *testing.T) *ArtistStore {
	t.Helper()
	c, err := NewCollection[models.Artist](storage.NewMemory(), KeyArtists, nil)
	require.NoError(t, err)
	return &ArtistStore{c: c}
}

func TestArtistStore_AddRejectsDuplicateEmail(t *testing.T) {
	s := newArtistStore(t)
	require.NoError(t, s.Add(models.Artist{ArtistID: "ar1", Email: "a@x.com"}))

	err := s.Add(models.Artist{ArtistID: "ar2", Email: "a@x.com"})
	assert.ErrorIs(t, err, ErrEmailTaken)

	got, err := s.ByEmail("a@x.com")
	require.NoError(t, err)
	assert.Equal(t, "ar1", got.ArtistID)
	assert.Equal(t, 1, s.c.Len())
}

func TestArtistStore_RejectionStoresReason(t *testing.T) {
	s := newArtistStore(t)
	require.NoError(t, s.Add(models.Artist{ArtistID: "ar1", Email: "a@x.com"}))

	require.NoError(t, s.SetStatus("ar1", status.Rejected, "bad docs"))

	got, err := s.Get("ar1")
	require.NoError(t, err)
	assert.Equal(t, status.Rejected, got.Status)
	assert.Equal(t, "bad docs", got.RejectionReason)
}

func TestArtistStore_DecisionsAreTerminal(t *testing.T) {
	s := newArtistStore(t)
	require.NoError(t, s.Add(models.Artist{ArtistID: "ar1", Email: "a@x.com"}))
	require.NoError(t, s.SetStatus("ar1", status.Approved, ""))

	err := s.SetStatus("ar1", status.Rejected, "too late")
	assert.ErrorIs(t, err, status.ErrAlreadyDecided)

	got, err := s.Get("ar1")
	require.NoError(t, err)
	assert.Equal(t, status.Approved, got.Status)
	assert.Empty(t, got.RejectionReason)
}

func TestArtistStore_VerificationLifecycle(t *testing.T) {
	s := newArtistStore(t)
	require.NoError(t, s.Add(models.Artist{ArtistID: "ar1", Email: "a@x.com"}))
	require.NoError(t, s.SetStatus("ar1", status.Approved, ""))

	// No request yet, nothing to review.
	err := s.SetVerificationStatus("ar1", status.Approved, "")
	assert.ErrorIs(t, err, ErrNoVerification)

	require.NoError(t, s.SubmitVerification("ar1", models.VerificationRequest{
		Reason: "established touring act",
	}))

	got, err := s.Get("ar1")
	require.NoError(t, err)
	require.NotNil(t, got.Verification)
	assert.Equal(t, status.Pending, got.Verification.Status)
	assert.False(t, got.IsVerified)

	// Only one request per artist, even after a decision.
	err = s.SubmitVerification("ar1", models.VerificationRequest{Reason: "again"})
	assert.ErrorIs(t, err, ErrVerificationExists)

	require.NoError(t, s.SetVerificationStatus("ar1", status.Approved, ""))
	got, err = s.Get("ar1")
	require.NoError(t, err)
	assert.Equal(t, status.Approved, got.Verification.Status)
	assert.True(t, got.IsVerified)

	err = s.SetVerificationStatus("ar1", status.Rejected, "changed my mind")
	assert.ErrorIs(t, err, status.ErrAlreadyDecided)
}

func TestArtistStore_VerificationRejectionKeepsArtistUnverified(t *testing.T) {
	s := newArtistStore(t)
	require.NoError(t, s.Add(models.Artist{ArtistID: "ar1", Email: "a@x.com"}))
	require.NoError(t, s.SubmitVerification("ar1", models.VerificationRequest{Reason: "new act"}))

	require.NoError(t, s.SetVerificationStatus("ar1", status.Rejected, "no public presence"))

	got, err := s.Get("ar1")
	require.NoError(t, err)
	assert.Equal(t, status.Rejected, got.Verification.Status)
	assert.Equal(t, "no public presence", got.Verification.RejectionReason)
	assert.False(t, got.IsVerified)
}

func TestArtistStore_FollowIsASet(t *testing.T) {
	s := newArtistStore(t)
	require.NoError(t, s.Add(models.Artist{ArtistID: "ar1", Email: "a@x.com"}))

	require.NoError(t, s.Follow("ar1", "fan@x.com"))
	require.NoError(t, s.Follow("ar1", "fan@x.com"))

	got, err := s.Get("ar1")
	require.NoError(t, err)
	assert.Equal(t, []string{"fan@x.com"}, got.Followers)
	assert.True(t, got.FollowedBy("fan@x.com"))

	followed := s.FollowedBy("fan@x.com")
	require.Len(t, followed, 1)
	assert.Equal(t, "ar1", followed[0].ArtistID)

	require.NoError(t, s.Unfollow("ar1", "fan@x.com"))
	require.NoError(t, s.Unfollow("ar1", "fan@x.com"))

	got, err = s.Get("ar1")
	require.NoError(t, err)
	assert.Empty(t, got.Followers)
	assert.Empty(t, s.FollowedBy("fan@x.com"))
}

func TestArtistStore_ByEmail(t *testing.T) {
	s := newArtistStore(t)
	require.NoError(t, s.Add(models.Artist{ArtistID: "ar1", Email: "a@x.com"}))

	got, err := s.ByEmail("a@x.com")
	require.NoError(t, err)
	assert.Equal(t, "ar1", got.ArtistID)

	_, err = s.ByEmail("nobody@x.com")
	assert.ErrorIs(t, err, ErrNotFound)
}
