package catalog

import (
	"bytes"
	"context"
	"fmt"

	"asset-picker/core/data"
	"asset-picker/core/storage"

	"github.com/minio/minio-go/v7"
)

// ObjectSource lists the catalog from an object store. Each object under the
// prefix with the configured extension is one asset, laid out as
// prefix/category/name+ext.
type ObjectSource struct {
	*data.ObjectProvider[Asset]
	client storage.Client
	bucket string
	region string
	prefix string
	ext    string
}

// NewObjectSource creates a storage backed source.
func NewObjectSource(client storage.Client, bucket, prefix, ext string) *ObjectSource {
	return &ObjectSource{
		ObjectProvider: data.NewObjectProvider(client, data.ObjectOptions[Asset]{
			Bucket:    bucket,
			Prefix:    prefix,
			Recursive: true,
			Decode: func(obj minio.ObjectInfo) (Asset, bool) {
				return decodeObject(prefix, ext, obj.Key)
			},
			ID: AssetID,
		}),
		client: client,
		bucket: bucket,
		prefix: prefix,
		ext:    ext,
	}
}

// SetRegion sets the region used when Seed has to create the bucket.
func (s *ObjectSource) SetRegion(region string) {
	s.region = region
}

// Kind implements Source.
func (s *ObjectSource) Kind() string {
	return "storage"
}

// Rename implements Source. Object keys carry the name, so renaming would change
// the asset's identity.
func (s *ObjectSource) Rename(context.Context, string, string) (Asset, error) {
	return Asset{}, ErrUnsupported
}

// Delete implements Source. ref is the object key.
func (s *ObjectSource) Delete(ctx context.Context, ref string) error {
	if _, ok := decodeObject(s.prefix, s.ext, ref); !ok {
		return ErrNotFound
	}
	if err := s.client.RemoveObject(ctx, s.bucket, ref, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("failed to remove object: %w", err)
	}
	s.RefreshAll(ctx)
	return nil
}

// Reload implements Source.
func (s *ObjectSource) Reload(ctx context.Context) {
	s.RefreshAll(ctx)
}

// Seed implements Source. It writes an empty placeholder object per asset.
func (s *ObjectSource) Seed(ctx context.Context, assets []Asset) (int, error) {
	if err := storage.EnsureBucket(ctx, s.client, s.bucket, s.region); err != nil {
		return 0, err
	}
	written := 0
	for _, a := range assets {
		key := objectKey(s.prefix, s.ext, a)
		_, err := s.client.PutObject(ctx, s.bucket, key, bytes.NewReader(nil), 0, minio.PutObjectOptions{
			ContentType: "application/octet-stream",
		})
		if err != nil {
			return written, fmt.Errorf("failed to upload %s: %w", key, err)
		}
		written++
	}
	if written > 0 {
		s.RefreshAll(ctx)
	}
	return written, nil
}
