package storage

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/go-resty/resty/v2"

	"github.com/bvsbharat/mzon/internal/config"
	"github.com/bvsbharat/mzon/internal/logger"
	"github.com/bvsbharat/mzon/internal/utils"
)

// R2Store persists generated assets in an S3-compatible bucket
// (Cloudflare R2) and returns durable public URLs.
type R2Store struct {
	client  *s3.Client
	http    *resty.Client
	bucket  string
	baseURL string
}

// NewR2Store builds a store from configuration. Returns an error when
// the R2 credentials are missing.
func NewR2Store(ctx context.Context, cfg *config.Config) (*R2Store, error) {
	if cfg.R2Endpoint == "" || cfg.R2AccessKey == "" || cfg.R2SecretKey == "" {
		return nil, fmt.Errorf("R2 storage is not configured")
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion("auto"),
		awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.R2AccessKey, cfg.R2SecretKey, ""),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(cfg.R2Endpoint)
		o.UsePathStyle = true
	})

	return &R2Store{
		client:  client,
		http:    resty.New().SetTimeout(2 * time.Minute),
		bucket:  cfg.R2Bucket,
		baseURL: strings.TrimSuffix(cfg.R2PublicBaseURL, "/"),
	}, nil
}

// StoreImage decodes an inline data URL and uploads it, returning the
// public URL of the object.
func (s *R2Store) StoreImage(ctx context.Context, dataURL, name string) (string, error) {
	mimeType, data, err := utils.ParseDataURL(dataURL)
	if err != nil {
		return "", fmt.Errorf("invalid image payload: %w", err)
	}

	key := fmt.Sprintf("images/%s_%s%s", utils.ShortHash(dataURL), sanitizeName(name), extensionFor(mimeType))
	return s.put(ctx, key, data, mimeType)
}

// StoreVideo uploads a video from either an inline data URL or a remote
// URL (downloaded first), returning the public URL of the object.
func (s *R2Store) StoreVideo(ctx context.Context, srcURL, name string) (string, error) {
	var data []byte
	mimeType := "video/mp4"

	if utils.IsDataURL(srcURL) {
		var err error
		mimeType, data, err = utils.ParseDataURL(srcURL)
		if err != nil {
			return "", fmt.Errorf("invalid video payload: %w", err)
		}
	} else {
		resp, err := s.http.R().SetContext(ctx).Get(srcURL)
		if err != nil {
			return "", fmt.Errorf("failed to download video: %w", err)
		}
		if resp.IsError() {
			return "", fmt.Errorf("unexpected status code %d downloading video", resp.StatusCode())
		}
		data = resp.Body()
		if ct := resp.Header().Get("Content-Type"); strings.HasPrefix(ct, "video/") {
			mimeType = ct
		}
	}

	key := fmt.Sprintf("videos/%s_%s%s", utils.ShortHash(srcURL), sanitizeName(name), extensionFor(mimeType))
	return s.put(ctx, key, data, mimeType)
}

func (s *R2Store) put(ctx context.Context, key string, data []byte, mimeType string) (string, error) {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(mimeType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload %s: %w", key, err)
	}

	logger.Get().Debug().
		Str("key", key).
		Int("bytes", len(data)).
		Msg("Asset uploaded")

	if s.baseURL != "" {
		return s.baseURL + "/" + key, nil
	}
	return fmt.Sprintf("s3://%s/%s", s.bucket, key), nil
}

// sanitizeName keeps object names to a safe character set.
func sanitizeName(name string) string {
	var b strings.Builder
	for _, r := range name {
		switch {
		case ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z') || ('0' <= r && r <= '9'):
			b.WriteRune(r)
		case r == '-' || r == '_' || r == '.':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}

func extensionFor(mimeType string) string {
	switch mimeType {
	case "image/png":
		return ".png"
	case "image/jpeg":
		return ".jpg"
	case "image/webp":
		return ".webp"
	case "video/mp4":
		return ".mp4"
	case "video/webm":
		return ".webm"
	default:
		return ""
	}
}
