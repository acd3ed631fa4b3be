package storage

import (
	"io"
	"net/http"

	"microblog/config"
)

// StorageAPI is the surface post images need: write on upload, read back or
// hand off to the client, remove when replaced.
type StorageAPI interface {
	Save(path string, reader io.Reader) (int64, error)
	Load(path string, writer io.Writer) (int64, error)
	Serve(path string, request *http.Request, writer http.ResponseWriter)
	Delete(path string) error
}

var instance StorageAPI

func Init() {
	if config.S3_BUCKET != "" {
		instance = NewS3Storage(config.S3_BUCKET, config.S3_REGION)
		return
	}
	instance = NewDiskStorage(config.MEDIA_DIR)
}

func Get() StorageAPI {
	return instance
}
