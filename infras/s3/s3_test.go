package s3_test

import (
	"bytes"
	"context"
	"drivent/config"
	"drivent/infras/otel/mocks"
	infraS3 "drivent/infras/s3"
	"errors"
	"io"
	"mime/multipart"
	"net/textproto"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
)

type fakeObjectAPI struct {
	put       *s3.PutObjectInput
	body      []byte
	deleted   *s3.DeleteObjectInput
	returnErr error
}

func (f *fakeObjectAPI) PutObject(_ context.Context, params *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.put = params

	body, _ := io.ReadAll(params.Body)
	f.body = body

	return &s3.PutObjectOutput{}, f.returnErr
}

func (f *fakeObjectAPI) DeleteObject(_ context.Context, params *s3.DeleteObjectInput, _ ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	f.deleted = params

	return &s3.DeleteObjectOutput{}, f.returnErr
}

type memFile struct {
	*bytes.Reader
}

func (memFile) Close() error { return nil }

func newConfig() *config.Config {
	cfg := &config.Config{}
	cfg.External.S3.BucketName = "hotels"
	cfg.External.S3.PublicDomain = "https://cdn.example.com/"
	cfg.External.S3.APIEndpoint = "https://s3.example.com"

	return cfg
}

func TestUploadFile(t *testing.T) {
	api := &fakeObjectAPI{}
	svc := infraS3.NewWithClient(newConfig(), api, mocks.NewOtel())

	header := &multipart.FileHeader{Filename: "front.png", Header: textproto.MIMEHeader{}}
	header.Header.Set("Content-Type", "image/png")

	url, err := svc.UploadFile(context.Background(), "hotels", memFile{bytes.NewReader([]byte("png-bytes"))}, header, "abc.png")

	assert.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/hotels/abc.png", url)
	assert.Equal(t, "hotels", aws.ToString(api.put.Bucket))
	assert.Equal(t, "hotels/abc.png", aws.ToString(api.put.Key))
	assert.Equal(t, "image/png", aws.ToString(api.put.ContentType))
	assert.Equal(t, []byte("png-bytes"), api.body)
}

func TestUploadFile_Error(t *testing.T) {
	api := &fakeObjectAPI{returnErr: errors.New("access denied")}
	svc := infraS3.NewWithClient(newConfig(), api, mocks.NewOtel())

	header := &multipart.FileHeader{Header: textproto.MIMEHeader{}}

	url, err := svc.UploadFile(context.Background(), "hotels", memFile{bytes.NewReader(nil)}, header, "abc.png")

	assert.Error(t, err)
	assert.Empty(t, url)
}

func TestDeleteFile(t *testing.T) {
	api := &fakeObjectAPI{}
	svc := infraS3.NewWithClient(newConfig(), api, mocks.NewOtel())

	err := svc.DeleteFile(context.Background(), "hotels/abc.png")

	assert.NoError(t, err)
	assert.Equal(t, "hotels", aws.ToString(api.deleted.Bucket))
	assert.Equal(t, "hotels/abc.png", aws.ToString(api.deleted.Key))
}

func TestGetObjectNameFromURL(t *testing.T) {
	svc := infraS3.NewWithClient(newConfig(), &fakeObjectAPI{}, mocks.NewOtel())

	assert.Equal(t, "hotels/abc.png", svc.GetObjectNameFromURL("https://cdn.example.com/hotels/abc.png"))
	assert.Equal(t, "hotels/abc.png", svc.GetObjectNameFromURL("https://s3.example.com/hotels/hotels/abc.png"))
	assert.Empty(t, svc.GetObjectNameFromURL("https://elsewhere.example.com/pic.jpg"))
}
