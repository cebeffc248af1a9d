package service

import (
	"context"

	"gig_venues_backend/internal/venues/repository"
	"gig_venues_backend/platform/apperr"
	"gig_venues_backend/platform/config"
	"gig_venues_backend/platform/logger"

	"github.com/google/uuid"
)

const (
	publicVenueNotFound   = "Venue not found"
	publicCreateFailed    = "There was an error creating the venue"
	publicOwnerListFailed = "Something went wrong"
)

type Service struct {
	repo     repository.VenuesRepository
	pageSize int
	log      *logger.Logger
}

func New(repo repository.VenuesRepository, cfg config.PagingConfig, log *logger.Logger) *Service {
	return &Service{repo: repo, pageSize: cfg.GetPageSize(), log: log}
}

// ListQuery selects a page of the public venue listing. The capacity bounds
// activate filtering only when both are present.
type ListQuery struct {
	Page        int
	MinCapacity *int
	MaxCapacity *int
}

// Page is one page of venues plus its metadata. IsPreviousPage is purely
// positional: any non-zero page index reports true, regardless of content.
type Page struct {
	Venues         []repository.Venue
	Count          int
	IsPreviousPage bool
	IsNextPage     bool
	TotalPages     int
}

// List returns the requested page. Persistence failures propagate untyped;
// the HTTP boundary maps them to a generic 500.
func (s *Service) List(ctx context.Context, q ListQuery) (Page, error) {
	if (q.MinCapacity == nil) != (q.MaxCapacity == nil) {
		return Page{}, apperr.BadRequest(
			"capacity filter requires both bounds",
			"minCapacity and maxCapacity must be provided together",
		)
	}

	page := q.Page
	if page < 0 {
		page = 0
	}

	venues, count, err := s.repo.List(ctx, repository.ListParams{
		Limit:       s.pageSize,
		Offset:      page * s.pageSize,
		MinCapacity: q.MinCapacity,
		MaxCapacity: q.MaxCapacity,
	})
	if err != nil {
		return Page{}, err
	}

	return Page{
		Venues:         venues,
		Count:          count,
		IsPreviousPage: page != 0,
		IsNextPage:     count >= s.pageSize*(page+1),
		TotalPages:     (count + s.pageSize - 1) / s.pageSize,
	}, nil
}

// Create inserts a venue owned by ownerID. Any client-supplied owner was
// already discarded by the transport layer.
func (s *Service) Create(ctx context.Context, ownerID uuid.UUID, params repository.CreateParams) (repository.Venue, error) {
	params.OwnerID = ownerID

	venue, err := s.repo.Create(ctx, params)
	if err != nil {
		return repository.Venue{}, apperr.Wrap(apperr.KindInternal, "create venue", publicCreateFailed, err)
	}
	return venue, nil
}

// Delete removes the venue only when it belongs to ownerID and returns the
// deleted record. A second delete of the same id is a clean not-found.
func (s *Service) Delete(ctx context.Context, ownerID uuid.UUID, rawVenueID string) (repository.Venue, error) {
	venueID, err := uuid.Parse(rawVenueID)
	if err != nil {
		return repository.Venue{}, apperr.Wrap(apperr.KindNotFound, "malformed venue id", publicVenueNotFound, err)
	}

	venue, err := s.repo.DeleteOwned(ctx, venueID, ownerID)
	if err != nil {
		if apperr.Is(err, apperr.KindNotFound) {
			return repository.Venue{}, err
		}
		return repository.Venue{}, apperr.Wrap(apperr.KindNotFound, "delete venue", publicVenueNotFound, err)
	}
	return venue, nil
}

// GetByID fetches a single venue. A malformed identifier is a bad request,
// a well-formed but absent one is not-found; both share the public message.
func (s *Service) GetByID(ctx context.Context, rawVenueID string) (repository.Venue, error) {
	venueID, err := uuid.Parse(rawVenueID)
	if err != nil {
		return repository.Venue{}, apperr.Wrap(apperr.KindBadRequest, "malformed venue id", publicVenueNotFound, err)
	}

	venue, err := s.repo.GetByID(ctx, venueID)
	if err != nil {
		if apperr.Is(err, apperr.KindNotFound) {
			return repository.Venue{}, err
		}
		return repository.Venue{}, apperr.Wrap(apperr.KindBadRequest, "get venue", publicVenueNotFound, err)
	}
	return venue, nil
}

// ListByOwner returns every venue owned by the caller.
func (s *Service) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]repository.Venue, error) {
	venues, err := s.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "list owner venues", publicOwnerListFailed, err)
	}
	return venues, nil
}
