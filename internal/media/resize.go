package media

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"gig_venues_backend/platform/apperr"

	"github.com/disintegration/imaging"
)

const (
	thumbWidth  = 320
	thumbHeight = 160

	publicUploadFailed = "There was an error uploading the picture"
)

// ResizeStage normalizes the uploaded picture to a fixed thumbnail. The
// result is always JPEG regardless of the source format, so the stage also
// rewrites the file names to carry a .jpg extension.
type ResizeStage struct {
	dir string
}

func NewResizeStage(dir string) *ResizeStage {
	return &ResizeStage{dir: dir}
}

func (s *ResizeStage) Name() string { return "resize" }

func (s *ResizeStage) Run(_ context.Context, draft *Draft) error {
	src, err := imaging.Open(draft.Upload.TempName, imaging.AutoOrientation(true))
	if err != nil {
		return apperr.Wrap(apperr.KindInternal, "decode uploaded picture", publicUploadFailed, err)
	}

	thumb := imaging.Fill(src, thumbWidth, thumbHeight, imaging.Center, imaging.Lanczos)

	resizedPath := strings.TrimSuffix(draft.Upload.TempName, filepath.Ext(draft.Upload.TempName)) + ".jpg"
	if err := imaging.Save(thumb, resizedPath, imaging.JPEGQuality(90)); err != nil {
		return apperr.Wrap(apperr.KindInternal, "encode resized picture", publicUploadFailed, err)
	}

	if resizedPath != draft.Upload.TempName {
		if err := os.Remove(draft.Upload.TempName); err != nil {
			return apperr.Wrap(apperr.KindInternal, "remove raw upload", publicUploadFailed, err)
		}
	}

	draft.Upload.TempName = resizedPath
	draft.Upload.OriginalName = sanitizeBaseName(draft.Upload.OriginalName) + ".jpg"
	return nil
}

// sanitizeBaseName reduces a client-supplied file name to a safe base:
// no directories, no extension, only lowercase alphanumerics and dashes.
func sanitizeBaseName(name string) string {
	base := filepath.Base(name)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	base = strings.ToLower(base)

	var b strings.Builder
	for _, r := range base {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		case r == ' ':
			b.WriteRune('-')
		}
	}
	if b.Len() == 0 {
		return "picture"
	}
	return b.String()
}
