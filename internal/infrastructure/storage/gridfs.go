package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/gridfs"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/cezeus/club-api/internal/core/domain"
)

const bucketName = "carnet_photos"

// GridFSStorage keeps member photos in a GridFS bucket and serves them back
// through the API's /media route, so no separate file store is needed.
type GridFSStorage struct {
	bucket  *gridfs.Bucket
	baseURL string
}

func NewGridFSStorage(db *mongo.Database, baseURL string) (*GridFSStorage, error) {
	bucket, err := gridfs.NewBucket(db, options.GridFSBucket().SetName(bucketName))
	if err != nil {
		return nil, fmt.Errorf("create gridfs bucket: %w", err)
	}
	return &GridFSStorage{bucket: bucket, baseURL: strings.TrimRight(baseURL, "/")}, nil
}

func (s *GridFSStorage) Upload(ctx context.Context, path, contentType string, data []byte) (string, error) {
	opts := options.GridFSUpload().SetMetadata(bson.M{"content_type": contentType})

	stream, err := s.bucket.OpenUploadStream(path, opts)
	if err != nil {
		return "", fmt.Errorf("open upload stream: %w", err)
	}
	if _, err := stream.Write(data); err != nil {
		_ = stream.Close()
		return "", fmt.Errorf("write object %q: %w", path, err)
	}
	if err := stream.Close(); err != nil {
		return "", fmt.Errorf("close upload stream: %w", err)
	}

	return s.baseURL + "/media/" + path, nil
}

func (s *GridFSStorage) Open(ctx context.Context, path string) (io.ReadCloser, error) {
	stream, err := s.bucket.OpenDownloadStreamByName(path)
	if err != nil {
		if errors.Is(err, gridfs.ErrFileNotFound) {
			return nil, domain.ErrMemberNotFound
		}
		return nil, fmt.Errorf("open object %q: %w", path, err)
	}
	return stream, nil
}

func (s *GridFSStorage) Delete(ctx context.Context, path string) error {
	cursor, err := s.bucket.Find(bson.M{"filename": path})
	if err != nil {
		return fmt.Errorf("find object %q: %w", path, err)
	}
	defer cursor.Close(ctx)

	for cursor.Next(ctx) {
		var file struct {
			ID interface{} `bson:"_id"`
		}
		if err := cursor.Decode(&file); err != nil {
			return fmt.Errorf("decode object %q: %w", path, err)
		}
		if err := s.bucket.Delete(file.ID); err != nil {
			return fmt.Errorf("delete object %q: %w", path, err)
		}
	}
	return cursor.Err()
}
