package blobstore

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockS3Client struct {
	PutObjectFunc func(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

func (m *mockS3Client) PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	return m.PutObjectFunc(ctx, params, optFns...)
}

type mockPresigner struct {
	PresignGetObjectFunc func(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error)
}

func (m *mockPresigner) PresignGetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
	return m.PresignGetObjectFunc(ctx, params, optFns...)
}

func requireReason(t *testing.T, err error, reason ErrorReason) {
	t.Helper()

	var blobErr *Error
	require.True(t, errors.As(err, &blobErr), "expected *blobstore.Error, got %v", err)
	assert.Equal(t, reason, blobErr.Reason)
}

func TestPutProof(t *testing.T) {
	ctx := context.Background()

	t.Run("uploads the body with its type and length", func(t *testing.T) {
		var got *s3.PutObjectInput
		var body string
		client := &mockS3Client{
			PutObjectFunc: func(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
				got = params
				data, err := io.ReadAll(params.Body)
				require.NoError(t, err)
				body = string(data)
				return &s3.PutObjectOutput{}, nil
			},
		}
		store := newS3ProofStore(client, nil, "asace-proofs")

		err := store.PutProof(ctx, "Ada_Lovelace_10-12-2025_id.png", "image/png", strings.NewReader("png bytes"), 9)
		require.NoError(t, err)

		assert.Equal(t, "asace-proofs", aws.ToString(got.Bucket))
		assert.Equal(t, "Ada_Lovelace_10-12-2025_id.png", aws.ToString(got.Key))
		assert.Equal(t, "image/png", aws.ToString(got.ContentType))
		assert.Equal(t, int64(9), aws.ToInt64(got.ContentLength))
		assert.Equal(t, "png bytes", body)
	})

	t.Run("upload failure", func(t *testing.T) {
		client := &mockS3Client{
			PutObjectFunc: func(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
				return nil, errors.New("access denied")
			},
		}
		store := newS3ProofStore(client, nil, "asace-proofs")

		err := store.PutProof(ctx, "key.png", "image/png", strings.NewReader("x"), 1)
		requireReason(t, err, REASON_UPLOAD_FAILED)
	})

	t.Run("upload timeout", func(t *testing.T) {
		client := &mockS3Client{
			PutObjectFunc: func(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
				return nil, context.DeadlineExceeded
			},
		}
		store := newS3ProofStore(client, nil, "asace-proofs")

		err := store.PutProof(ctx, "key.png", "image/png", strings.NewReader("x"), 1)
		requireReason(t, err, REASON_TIMEOUT)
	})
}

func TestSignedURL(t *testing.T) {
	ctx := context.Background()

	t.Run("signs a get for the key with the requested expiry", func(t *testing.T) {
		client := s3.New(s3.Options{
			Region:       "eu-west-1",
			Credentials:  credentials.NewStaticCredentialsProvider("AKIDEXAMPLE", "secret", ""),
			UsePathStyle: true,
		})
		store := NewS3ProofStore(client, "asace-proofs")

		url, err := store.SignedURL(ctx, "Ada_10-12-2025_id.pdf", 7*24*time.Hour)
		require.NoError(t, err)

		assert.Contains(t, url, "/asace-proofs/Ada_10-12-2025_id.pdf")
		assert.Contains(t, url, "X-Amz-Expires=604800")
		assert.Contains(t, url, "X-Amz-Signature=")
	})

	t.Run("presign failure", func(t *testing.T) {
		presigner := &mockPresigner{
			PresignGetObjectFunc: func(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
				return nil, errors.New("no credentials")
			},
		}
		store := newS3ProofStore(nil, presigner, "asace-proofs")

		_, err := store.SignedURL(ctx, "key.png", time.Hour)
		requireReason(t, err, REASON_PRESIGN_FAILED)
	})

	t.Run("returns the presigned url", func(t *testing.T) {
		presigner := &mockPresigner{
			PresignGetObjectFunc: func(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
				return &v4.PresignedHTTPRequest{
					URL:    "https://asace-proofs.s3.amazonaws.com/" + aws.ToString(params.Key),
					Method: http.MethodGet,
				}, nil
			},
		}
		store := newS3ProofStore(nil, presigner, "asace-proofs")

		url, err := store.SignedURL(ctx, "key.png", time.Hour)
		require.NoError(t, err)
		assert.Equal(t, "https://asace-proofs.s3.amazonaws.com/key.png", url)
	})
}
