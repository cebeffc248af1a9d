package media

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"

	"gig_venues_backend/platform/apperr"
	"gig_venues_backend/platform/logger"
)

// ObjectStore is the slice of the backup store the pipeline needs.
type ObjectStore interface {
	Upload(ctx context.Context, key string, reader io.Reader, size int64, contentType string) error
	PublicURL(key string) string
}

// BackupStage gives the picture its final local name and mirrors it to the
// object store. On success the draft carries the local path in Picture and
// the store's public URL in BackupPicture.
type BackupStage struct {
	store ObjectStore
	dir   string
	log   *logger.Logger
}

func NewBackupStage(store ObjectStore, dir string, log *logger.Logger) *BackupStage {
	return &BackupStage{store: store, dir: dir, log: log}
}

func (s *BackupStage) Name() string { return "backup" }

func (s *BackupStage) Run(ctx context.Context, draft *Draft) error {
	// The temp prefix stays in the final name so concurrent uploads of
	// files with the same original name never collide.
	key := tempBase(draft.Upload.TempName) + draft.Upload.OriginalName
	finalPath := filepath.Join(s.dir, key)

	if err := os.Rename(draft.Upload.TempName, finalPath); err != nil {
		return apperr.Wrap(apperr.KindBadRequest, "rename uploaded picture", publicUploadFailed, err)
	}

	data, err := os.ReadFile(finalPath)
	if err != nil {
		return apperr.Wrap(apperr.KindBadRequest, "read uploaded picture", publicUploadFailed, err)
	}

	if err := s.store.Upload(ctx, key, bytes.NewReader(data), int64(len(data)), "image/jpeg"); err != nil {
		s.log.StorageError("upload", key, err)
		return apperr.Wrap(apperr.KindBadRequest, "backup uploaded picture", publicUploadFailed, err)
	}

	draft.Upload.TempName = finalPath
	draft.Picture = finalPath
	draft.BackupPicture = s.store.PublicURL(key)
	return nil
}

func tempBase(tempName string) string {
	base := filepath.Base(tempName)
	return base[:len(base)-len(filepath.Ext(base))]
}
