package media

import (
	"context"
	"errors"
	"testing"

	"gig_venues_backend/platform/logger"
)

type recordingStage struct {
	name string
	err  error
	runs int
}

func (s *recordingStage) Name() string { return s.name }

func (s *recordingStage) Run(_ context.Context, _ *Draft) error {
	s.runs++
	return s.err
}

func TestPipelineSkipsWhenNoUpload(t *testing.T) {
	stage := &recordingStage{name: "resize"}
	p := NewPipeline(logger.New("development"), stage)

	draft := &Draft{Picture: "existing.jpg"}
	if err := p.Run(context.Background(), draft); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stage.runs != 0 {
		t.Fatal("stages must not run without an upload")
	}
	if draft.Picture != "existing.jpg" {
		t.Fatal("draft must pass through untouched")
	}
}

func TestPipelineHaltsOnFirstFailure(t *testing.T) {
	boom := errors.New("decode failed")
	first := &recordingStage{name: "resize", err: boom}
	second := &recordingStage{name: "backup"}
	p := NewPipeline(logger.New("development"), first, second)

	err := p.Run(context.Background(), &Draft{Upload: &Upload{TempName: "x", OriginalName: "y"}})
	if !errors.Is(err, boom) {
		t.Fatalf("expected stage error, got %v", err)
	}
	if second.runs != 0 {
		t.Fatal("later stages must not run after a failure")
	}
}

func TestPipelineRunsStagesInOrder(t *testing.T) {
	var order []string
	mk := func(name string) Stage {
		return stageFunc{name: name, fn: func() { order = append(order, name) }}
	}
	p := NewPipeline(logger.New("development"), mk("resize"), mk("backup"))

	if err := p.Run(context.Background(), &Draft{Upload: &Upload{TempName: "x"}}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(order) != 2 || order[0] != "resize" || order[1] != "backup" {
		t.Fatalf("unexpected stage order: %v", order)
	}
}

type stageFunc struct {
	name string
	fn   func()
}

func (s stageFunc) Name() string { return s.name }

func (s stageFunc) Run(_ context.Context, _ *Draft) error {
	s.fn()
	return nil
}
