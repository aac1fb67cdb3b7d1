package blobstore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/asace-youth/event-registration/registration"
	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

const uploadTimeout = 30 * time.Second

var _ registration.ProofStore = &S3ProofStore{}

type S3PutObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

type S3PresignGetObjectAPI interface {
	PresignGetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error)
}

// S3ProofStore keeps payment proofs in a private bucket. Admins only ever see
// them through short lived signed links.
type S3ProofStore struct {
	client    S3PutObjectAPI
	presigner S3PresignGetObjectAPI
	bucket    string
}

func NewS3ProofStore(client *s3.Client, bucket string) *S3ProofStore {
	return newS3ProofStore(client, s3.NewPresignClient(client), bucket)
}

func newS3ProofStore(client S3PutObjectAPI, presigner S3PresignGetObjectAPI, bucket string) *S3ProofStore {
	return &S3ProofStore{
		client:    client,
		presigner: presigner,
		bucket:    bucket,
	}
}

func (s *S3ProofStore) PutProof(ctx context.Context, key string, contentType string, body io.Reader, size int64) error {
	ctx, cancel := context.WithTimeout(ctx, uploadTimeout)
	defer cancel()

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          body,
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(size),
	})
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return NewTimeoutError(fmt.Sprintf("Uploading %q timed out", key))
		}
		return NewUploadFailedError(fmt.Sprintf("Failed to upload %q to bucket %q", key, s.bucket), err)
	}

	return nil
}

func (s *S3ProofStore) SignedURL(ctx context.Context, key string, ttl time.Duration) (string, error) {
	req, err := s.presigner.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(ttl))
	if err != nil {
		return "", NewPresignFailedError(fmt.Sprintf("Failed to sign a link for %q", key), err)
	}

	return req.URL, nil
}
