package media

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"gig_venues_backend/platform/apperr"
	"gig_venues_backend/platform/logger"
)

type fakeStore struct {
	uploadErr   error
	key         string
	size        int64
	contentType string
	payload     []byte
}

func (f *fakeStore) Upload(_ context.Context, key string, reader io.Reader, size int64, contentType string) error {
	if f.uploadErr != nil {
		return f.uploadErr
	}
	data, err := io.ReadAll(reader)
	if err != nil {
		return err
	}
	f.key = key
	f.size = size
	f.contentType = contentType
	f.payload = data
	return nil
}

func (f *fakeStore) PublicURL(key string) string {
	return "https://backup.example.com/venue-pictures/" + key
}

func TestBackupMirrorsPictureAndFillsDraft(t *testing.T) {
	dir := t.TempDir()
	tempPath := filepath.Join(dir, "3f2a1b.jpg")
	content := []byte("jpeg bytes")
	if err := os.WriteFile(tempPath, content, 0o644); err != nil {
		t.Fatalf("write temp file: %v", err)
	}

	store := &fakeStore{}
	stage := NewBackupStage(store, dir, logger.New("development"))
	draft := &Draft{Upload: &Upload{TempName: tempPath, OriginalName: "stage-photo.jpg"}}

	if err := stage.Run(context.Background(), draft); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantKey := "3f2a1bstage-photo.jpg"
	if store.key != wantKey {
		t.Fatalf("expected object key %q, got %q", wantKey, store.key)
	}
	if store.size != int64(len(content)) {
		t.Fatalf("expected size %d, got %d", len(content), store.size)
	}

	wantLocal := filepath.Join(dir, wantKey)
	if draft.Picture != wantLocal {
		t.Fatalf("expected local picture path %q, got %q", wantLocal, draft.Picture)
	}
	if draft.BackupPicture != store.PublicURL(wantKey) {
		t.Fatalf("expected backup URL, got %q", draft.BackupPicture)
	}
	if draft.Picture == draft.BackupPicture {
		t.Fatal("local path and backup URL must differ")
	}

	if _, err := os.Stat(tempPath); !os.IsNotExist(err) {
		t.Fatal("temp file must be renamed away")
	}
	if _, err := os.Stat(wantLocal); err != nil {
		t.Fatalf("final local file must exist: %v", err)
	}
}

func TestBackupStoreFailureIsBadRequest(t *testing.T) {
	dir := t.TempDir()
	tempPath := filepath.Join(dir, "abc123.jpg")
	if err := os.WriteFile(tempPath, []byte("x"), 0o644); err != nil {
		t.Fatalf("write temp file: %v", err)
	}

	store := &fakeStore{uploadErr: errors.New("bucket unreachable")}
	stage := NewBackupStage(store, dir, logger.New("development"))
	draft := &Draft{Upload: &Upload{TempName: tempPath, OriginalName: "a.jpg"}}

	err := stage.Run(context.Background(), draft)
	if !apperr.Is(err, apperr.KindBadRequest) {
		t.Fatalf("expected bad request on store failure, got %v", err)
	}
	if draft.BackupPicture != "" {
		t.Fatal("failed backup must not fill the backup URL")
	}
}
