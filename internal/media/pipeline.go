// Package media implements the picture processing pipeline that runs
// between upload and venue creation: resize first, then backup to the
// object store. Each stage mutates a Draft; the first failure halts the
// run and surfaces to the caller.
package media

import (
	"context"
	"fmt"

	"gig_venues_backend/platform/logger"
)

// Upload describes the raw file saved by the transport layer before any
// processing runs.
type Upload struct {
	// TempName is the absolute path of the temporarily stored file.
	TempName string
	// OriginalName is the client-supplied file name.
	OriginalName string
}

// Draft accumulates the pipeline's output. Stages rewrite the Upload in
// place and fill Picture / BackupPicture as they complete.
type Draft struct {
	Upload        *Upload
	Picture       string
	BackupPicture string
}

// Stage is one step of the pipeline.
type Stage interface {
	Name() string
	Run(ctx context.Context, draft *Draft) error
}

// Pipeline runs its stages in order against a single draft.
type Pipeline struct {
	stages []Stage
	log    *logger.Logger
}

func NewPipeline(log *logger.Logger, stages ...Stage) *Pipeline {
	return &Pipeline{stages: stages, log: log}
}

// Run executes every stage in order. A draft without an upload skips the
// pipeline entirely: creating a venue without a picture is valid.
func (p *Pipeline) Run(ctx context.Context, draft *Draft) error {
	if draft.Upload == nil {
		return nil
	}

	for _, stage := range p.stages {
		p.log.Debug("media_stage", "stage", stage.Name(), "file", draft.Upload.OriginalName)
		if err := stage.Run(ctx, draft); err != nil {
			return fmt.Errorf("stage %s: %w", stage.Name(), err)
		}
	}
	return nil
}
