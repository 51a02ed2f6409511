package config

import (
	"context"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewS3ConfigWithoutBucket(t *testing.T) {
	s3cfg, err := NewS3Config(context.Background(), &Config{})
	require.NoError(t, err)
	assert.Nil(t, s3cfg)
}

func TestGeneratePresignedURL(t *testing.T) {
	awsCfg := aws.Config{
		Region:      "us-east-1",
		Credentials: credentials.NewStaticCredentialsProvider("AKIDEXAMPLE", "test-secret", ""),
	}
	s3cfg := &S3Config{
		Client:     s3.NewFromConfig(awsCfg),
		BucketName: "food-images",
	}

	url, err := s3cfg.GeneratePresignedURL(context.Background(), "food-images/abc.png", time.Hour)
	require.NoError(t, err)
	assert.Contains(t, url, "food-images")
	assert.Contains(t, url, "abc.png")
	assert.Contains(t, url, "X-Amz-Expires=3600")
	assert.Contains(t, url, "X-Amz-Signature=")
}
