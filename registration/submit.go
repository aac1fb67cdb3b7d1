package registration

import (
	"context"
	"fmt"
	"io"
	"path"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

// MaxProofSize bounds an uploaded payment proof.
const MaxProofSize = 10 << 20

var (
	proofNameUnsafe = regexp.MustCompile(`[^A-Za-z0-9_-]+`)
	proofExt        = regexp.MustCompile(`^\.[a-z0-9]{1,5}$`)
	whitespaceRun   = regexp.MustCompile(`\s+`)
)

// Submission is what an attendee fills in on the public form.
type Submission struct {
	FullName    string `validate:"required,min=2,max=200"`
	Email       string `validate:"required,email,max=320"`
	DateOfBirth string `validate:"required,datetime=2006-01-02"`
	Gender      Gender `validate:"required,oneof=male female other"`
	Hobbies     string `validate:"required,min=5,max=2000"`
}

// Proof is an uploaded payment receipt.
type Proof struct {
	FileName    string
	ContentType string
	Size        int64
	Body        io.Reader
}

type ProofStore interface {
	PutProof(ctx context.Context, key string, contentType string, body io.Reader, size int64) error
	SignedURL(ctx context.Context, key string, ttl time.Duration) (string, error)
}

// Submit stores the proof under a key unique to this submission and creates a
// new pending registration pointing at it.
func Submit(ctx context.Context, sub Submission, proof *Proof, proofStore ProofStore, repo Repository) (Registration, error) {
	sub = normalizeSubmission(sub)

	err := validate.StructCtx(ctx, sub)
	if err != nil {
		return Registration{}, NewInvalidSubmissionError(validationMessage(err), err)
	}

	now := time.Now().UTC()
	reg := Registration{
		ID:          uuid.New(),
		Version:     1,
		CreatedAt:   now,
		FullName:    sub.FullName,
		Email:       sub.Email,
		DateOfBirth: sub.DateOfBirth,
		Gender:      sub.Gender,
		Hobbies:     sub.Hobbies,
		Status:      PENDING,
	}

	if proof != nil {
		err = checkProof(*proof)
		if err != nil {
			return Registration{}, err
		}

		key := proofKey(reg, proof.FileName)
		err = proofStore.PutProof(ctx, key, proof.ContentType, proof.Body, proof.Size)
		if err != nil {
			return Registration{}, NewFailedToStoreProofError(fmt.Sprintf("Failed to upload payment proof for %q", reg.ID), err)
		}
		reg.ProofKey = &key
	}

	err = repo.CreateRegistration(ctx, reg)
	if err != nil {
		return Registration{}, err
	}

	return reg, nil
}

func normalizeSubmission(sub Submission) Submission {
	return Submission{
		FullName:    whitespaceRun.ReplaceAllString(strings.TrimSpace(sub.FullName), " "),
		Email:       strings.TrimSpace(sub.Email),
		DateOfBirth: strings.TrimSpace(sub.DateOfBirth),
		Gender:      Gender(strings.ToLower(strings.TrimSpace(string(sub.Gender)))),
		Hobbies:     strings.TrimSpace(sub.Hobbies),
	}
}

func checkProof(proof Proof) error {
	if proof.Body == nil {
		return NewInvalidSubmissionError("Payment proof is empty", nil)
	}
	if proof.Size > MaxProofSize {
		return NewInvalidSubmissionError(fmt.Sprintf("Payment proof must be at most %d bytes", MaxProofSize), nil)
	}
	if !strings.HasPrefix(proof.ContentType, "image/") && proof.ContentType != "application/pdf" {
		return NewInvalidSubmissionError(fmt.Sprintf("Payment proof must be an image or PDF, got %q", proof.ContentType), nil)
	}
	return nil
}

// proofKey names the object <Full_Name>_<dd-mm-yyyy>_<id><ext>. The id keeps
// two attendees with the same name from overwriting each other's proof.
func proofKey(reg Registration, fileName string) string {
	name := proofNameUnsafe.ReplaceAllString(whitespaceRun.ReplaceAllString(reg.FullName, "_"), "")
	ext := strings.ToLower(path.Ext(fileName))
	if !proofExt.MatchString(ext) {
		ext = ""
	}
	return fmt.Sprintf("%s_%s_%s%s", name, reg.CreatedAt.Format("02-01-2006"), reg.ID, ext)
}
