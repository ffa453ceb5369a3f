package s3store

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/cockroachdb/errors"
	"github.com/essienricch/Nft-Creator-Haven/common/errs"
	"github.com/essienricch/Nft-Creator-Haven/modules/platform/datagateway"
)

type Config struct {
	Region string `mapstructure:"region"`
	Bucket string `mapstructure:"bucket"`

	// PublicBaseURL is the public prefix under which stored objects resolve
	// (a CloudFront distribution or a public bucket endpoint).
	PublicBaseURL string `mapstructure:"public_base_url"`
}

// Store is a content-addressed object store on S3. Objects are keyed by the
// sha256 of their content, so identical uploads land on the same locator —
// one of the two addressing behaviors the storage contract allows.
type Store struct {
	client        *s3.Client
	uploader      *manager.Uploader
	bucket        string
	publicBaseURL string
}

var _ datagateway.ContentStorage = (*Store)(nil)

func New(ctx context.Context, cfg Config) (*Store, error) {
	if cfg.Bucket == "" || cfg.PublicBaseURL == "" {
		return nil, errors.New("s3 content store requires bucket and public_base_url")
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Region))
	if err != nil {
		return nil, errors.Wrap(err, "can't load aws config")
	}
	client := s3.NewFromConfig(awsCfg)
	return &Store{
		client:        client,
		uploader:      manager.NewUploader(client),
		bucket:        cfg.Bucket,
		publicBaseURL: strings.TrimSuffix(cfg.PublicBaseURL, "/"),
	}, nil
}

func (s *Store) StoreFile(ctx context.Context, data []byte, contentType string) (string, error) {
	sum := sha256.Sum256(data)
	key := hex.EncodeToString(sum[:])
	_, err := s.uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", errors.Wrap(errs.StorageUnavailable, err.Error())
	}
	return s.publicBaseURL + "/" + key, nil
}

func (s *Store) StoreJSON(ctx context.Context, doc any) (string, error) {
	body, err := json.Marshal(doc)
	if err != nil {
		return "", errors.Wrap(err, "can't marshal document")
	}
	return s.StoreFile(ctx, body, "application/json")
}

func (s *Store) FetchJSON(ctx context.Context, locator string, out any) error {
	key, ok := strings.CutPrefix(locator, s.publicBaseURL+"/")
	if !ok {
		return errors.Errorf("locator %q is not addressed by this store", locator)
	}
	object, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return errors.Wrapf(err, "can't fetch %q", locator)
	}
	defer object.Body.Close()

	body, err := io.ReadAll(object.Body)
	if err != nil {
		return errors.Wrapf(err, "can't read body from %q", locator)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return errors.Wrapf(err, "can't unmarshal document from %q", locator)
	}
	return nil
}
