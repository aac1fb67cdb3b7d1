package registration

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validSubmission() Submission {
	return Submission{
		FullName:    "  Ada   Lovelace ",
		Email:       "ada@example.com",
		DateOfBirth: "1999-12-10",
		Gender:      "Female",
		Hobbies:     "Mathematics and poetry",
	}
}

func TestSubmit(t *testing.T) {
	ctx := context.Background()

	t.Run("stores proof and creates a pending registration", func(t *testing.T) {
		repo := newMemoryRepository()
		store := &mockProofStore{}

		reg, err := Submit(ctx, validSubmission(), pngProof(), store, repo)
		require.NoError(t, err)

		assert.Equal(t, PENDING, reg.Status)
		assert.Equal(t, 1, reg.Version)
		assert.Equal(t, "Ada Lovelace", reg.FullName)
		assert.Equal(t, FEMALE, reg.Gender)
		assert.False(t, reg.NotificationPending)

		wantKey := fmt.Sprintf("Ada_Lovelace_%s_%s.png", reg.CreatedAt.Format("02-01-2006"), reg.ID)
		require.NotNil(t, reg.ProofKey)
		assert.Equal(t, wantKey, *reg.ProofKey)
		assert.Equal(t, []byte("\x89PNG proof"), store.objects[wantKey])

		stored, err := repo.GetRegistration(ctx, reg.ID)
		require.NoError(t, err)
		assert.Equal(t, reg, stored)
	})

	t.Run("same name twice gets distinct proof keys", func(t *testing.T) {
		repo := newMemoryRepository()
		store := &mockProofStore{}

		first, err := Submit(ctx, validSubmission(), pngProof(), store, repo)
		require.NoError(t, err)
		second, err := Submit(ctx, validSubmission(), pngProof(), store, repo)
		require.NoError(t, err)

		assert.NotEqual(t, *first.ProofKey, *second.ProofKey)
		assert.Len(t, store.objects, 2)
	})

	t.Run("proof is optional", func(t *testing.T) {
		repo := newMemoryRepository()

		reg, err := Submit(ctx, validSubmission(), nil, &mockProofStore{}, repo)
		require.NoError(t, err)
		assert.Nil(t, reg.ProofKey)
	})

	invalid := []struct {
		name   string
		modify func(s *Submission)
	}{
		{name: "missing name", modify: func(s *Submission) { s.FullName = "   " }},
		{name: "bad email", modify: func(s *Submission) { s.Email = "not-an-email" }},
		{name: "bad date", modify: func(s *Submission) { s.DateOfBirth = "10/12/1999" }},
		{name: "unknown gender", modify: func(s *Submission) { s.Gender = "unicorn" }},
		{name: "short hobbies", modify: func(s *Submission) { s.Hobbies = "run" }},
	}
	for _, tc := range invalid {
		t.Run(tc.name, func(t *testing.T) {
			sub := validSubmission()
			tc.modify(&sub)
			repo := &mockRegistrationRepository{
				CreateRegistrationFunc: func(ctx context.Context, reg Registration) error {
					t.Fatal("invalid submission must not be stored")
					return nil
				},
			}

			_, err := Submit(ctx, sub, pngProof(), &mockProofStore{}, repo)
			assertReason(t, err, REASON_INVALID_SUBMISSION)
		})
	}

	t.Run("proof must be an image or pdf", func(t *testing.T) {
		proof := pngProof()
		proof.ContentType = "application/zip"

		_, err := Submit(ctx, validSubmission(), proof, &mockProofStore{}, newMemoryRepository())
		assertReason(t, err, REASON_INVALID_SUBMISSION)
	})

	t.Run("proof over the size limit is refused", func(t *testing.T) {
		proof := &Proof{
			FileName:    "big.pdf",
			ContentType: "application/pdf",
			Size:        MaxProofSize + 1,
			Body:        bytes.NewReader(nil),
		}

		_, err := Submit(ctx, validSubmission(), proof, &mockProofStore{}, newMemoryRepository())
		assertReason(t, err, REASON_INVALID_SUBMISSION)
	})

	t.Run("upload failure stores nothing", func(t *testing.T) {
		repo := newMemoryRepository()
		store := &mockProofStore{
			PutProofFunc: func(ctx context.Context, key string, contentType string, body io.Reader, size int64) error {
				return errors.New("bucket unavailable")
			},
		}

		_, err := Submit(ctx, validSubmission(), pngProof(), store, repo)
		assertReason(t, err, REASON_FAILED_TO_STORE_PROOF)

		all, err := repo.ListRegistrations(ctx, nil)
		require.NoError(t, err)
		assert.Empty(t, all)
	})
}

func TestProofKey(t *testing.T) {
	reg := pendingRegistration("José  O'Brien", "jose@example.com")
	reg.CreatedAt = time.Date(2025, time.March, 7, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		fileName string
		want     string
	}{
		{fileName: "receipt.JPG", want: "Jos_OBrien_07-03-2025_" + reg.ID.String() + ".jpg"},
		{fileName: "scan.pdf", want: "Jos_OBrien_07-03-2025_" + reg.ID.String() + ".pdf"},
		{fileName: "noext", want: "Jos_OBrien_07-03-2025_" + reg.ID.String()},
		{fileName: "weird.tar gz!", want: "Jos_OBrien_07-03-2025_" + reg.ID.String()},
	}
	for _, tc := range tests {
		t.Run(tc.fileName, func(t *testing.T) {
			assert.Equal(t, tc.want, proofKey(reg, tc.fileName))
			assert.False(t, strings.ContainsAny(proofKey(reg, tc.fileName), " /'"))
		})
	}
}
