package services

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// SpacesService stores question illustrations on DigitalOcean Spaces.
// Objects are keyed under assetRoot/questions/<lessonID>/<questionID>.<ext>
// and served from the bucket's public CDN URL.
type SpacesService struct {
	client    *s3.Client
	bucket    string
	region    string
	AssetRoot string
}

func NewSpacesService(spacesKey, spacesSecret, region, bucket, assetRoot string) (*SpacesService, error) {
	resolver := aws.EndpointResolverWithOptionsFunc(func(service, region string, options ...interface{}) (aws.Endpoint, error) {
		return aws.Endpoint{
			URL: fmt.Sprintf("https://%s.digitaloceanspaces.com", region),
		}, nil
	})

	cfg, err := config.LoadDefaultConfig(context.TODO(),
		config.WithEndpointResolverWithOptions(resolver),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(spacesKey, spacesSecret, "")),
		config.WithRegion(region),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load spaces config: %w", err)
	}

	return &SpacesService{
		client:    s3.NewFromConfig(cfg),
		bucket:    bucket,
		region:    region,
		AssetRoot: strings.Trim(assetRoot, "/"),
	}, nil
}

func (s *SpacesService) questionKey(lessonID, questionID int64, ext string) string {
	ext = strings.TrimPrefix(ext, ".")
	return fmt.Sprintf("%s/questions/%d/%d.%s", s.AssetRoot, lessonID, questionID, ext)
}

// UploadQuestionImage stores the image publicly and returns its CDN URL.
func (s *SpacesService) UploadQuestionImage(ctx context.Context, lessonID, questionID int64, ext, contentType string, data []byte) (string, error) {
	key := s.questionKey(lessonID, questionID, ext)
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      &s.bucket,
		Key:         &key,
		Body:        bytes.NewReader(data),
		ContentType: &contentType,
		ACL:         "public-read",
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload %s: %w", key, err)
	}
	return s.PublicURL(key), nil
}

func (s *SpacesService) DeleteQuestionImage(ctx context.Context, lessonID, questionID int64, ext string) error {
	key := s.questionKey(lessonID, questionID, ext)
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: &s.bucket,
		Key:    &key,
	})
	if err != nil {
		return fmt.Errorf("failed to delete %s: %w", key, err)
	}
	return nil
}

func (s *SpacesService) PublicURL(key string) string {
	return fmt.Sprintf("https://%s.%s.cdn.digitaloceanspaces.com/%s", s.bucket, s.region, key)
}

func (s *SpacesService) GetBucket() string {
	return s.bucket
}

func (s *SpacesService) GetRegion() string {
	return s.region
}
