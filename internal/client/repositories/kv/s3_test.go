package kv

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/stretchr/testify/require"
)

// fakeS3 is an in-memory bucket implementing S3API.
type fakeS3 struct {
	objects map[string][]byte
	lastCT  string
	failErr error
}

func newFakeS3() *fakeS3 { return &fakeS3{objects: map[string][]byte{}} }

func (f *fakeS3) GetObject(_ context.Context, in *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	if f.failErr != nil {
		return nil, f.failErr
	}
	b, ok := f.objects[aws.ToString(in.Bucket)+"/"+aws.ToString(in.Key)]
	if !ok {
		return nil, &types.NoSuchKey{}
	}
	return &s3.GetObjectOutput{Body: io.NopCloser(bytes.NewReader(b))}, nil
}

func (f *fakeS3) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.failErr != nil {
		return nil, f.failErr
	}
	b, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}
	f.objects[aws.ToString(in.Bucket)+"/"+aws.ToString(in.Key)] = b
	f.lastCT = aws.ToString(in.ContentType)
	return &s3.PutObjectOutput{}, nil
}

func (f *fakeS3) DeleteObject(_ context.Context, in *s3.DeleteObjectInput, _ ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	if f.failErr != nil {
		return nil, f.failErr
	}
	delete(f.objects, aws.ToString(in.Bucket)+"/"+aws.ToString(in.Key))
	return &s3.DeleteObjectOutput{}, nil
}

func TestS3Store_RoundTrip(t *testing.T) {
	api := newFakeS3()
	s := NewS3Store(api, "loans", "backups/dev")
	ctx := context.Background()

	got, err := s.Get(ctx, UsersKey)
	require.NoError(t, err)
	require.Nil(t, got)

	require.NoError(t, s.Set(ctx, UsersKey, []byte(`{}`)))
	require.Contains(t, api.objects, "loans/backups/dev/users.json")
	require.Equal(t, "application/json", api.lastCT)

	got, err = s.Get(ctx, UsersKey)
	require.NoError(t, err)
	require.Equal(t, []byte(`{}`), got)

	require.NoError(t, s.SetMany(ctx, map[string][]byte{LoansKey("bob"): []byte(`[]`)}))
	require.Contains(t, api.objects, "loans/backups/dev/studentLoans_bob.json")

	require.NoError(t, s.Delete(ctx, UsersKey))
	got, err = s.Get(ctx, UsersKey)
	require.NoError(t, err)
	require.Nil(t, got)
	require.NoError(t, s.Close())
}

func TestS3Store_PropagatesErrors(t *testing.T) {
	api := newFakeS3()
	api.failErr = errors.New("connection refused")
	s := NewS3Store(api, "loans", "")
	ctx := context.Background()

	_, err := s.Get(ctx, "k")
	require.ErrorIs(t, err, api.failErr)
	require.ErrorIs(t, s.Set(ctx, "k", nil), api.failErr)
	require.ErrorIs(t, s.Delete(ctx, "k"), api.failErr)
}

func TestIsNotFound(t *testing.T) {
	require.True(t, isNotFound(&types.NoSuchKey{}))
	require.False(t, isNotFound(errors.New("other")))
}
