package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gig_venues_backend/platform/apperr"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/sync/errgroup"
)

const (
	venueNotFoundMessage       = "venue not found"
	venueNotFoundPublicMessage = "Venue not found"
)

// Venue is a stored venue record.
type Venue struct {
	ID            uuid.UUID
	Name          string
	City          string
	Address       string
	Capacity      int
	Indoor        bool
	PhoneNumber   string
	Email         string
	Picture       string
	BackupPicture string
	OwnerID       uuid.UUID
	Description   string
	CreatedAt     time.Time
}

const venueColumns = `id, name, city, address, capacity, indoor, phone_number,
	email, picture, backup_picture, owner_id, description, created_at`

const createVenueQuery = `
	INSERT INTO venues (name, city, address, capacity, indoor, phone_number,
		email, picture, backup_picture, owner_id, description)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	RETURNING ` + venueColumns

const getVenueByIDQuery = `
	SELECT ` + venueColumns + `
	FROM venues
	WHERE id = $1`

const listVenuesByOwnerQuery = `
	SELECT ` + venueColumns + `
	FROM venues
	WHERE owner_id = $1
	ORDER BY created_at, id`

const deleteOwnedVenueQuery = `
	DELETE FROM venues
	WHERE id = $1 AND owner_id = $2
	RETURNING ` + venueColumns

// Repository implements VenuesRepository over Postgres.
type Repository struct {
	pool *pgxpool.Pool
}

// New creates a new venues repository.
func New(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// List returns one page of venues in stable creation order plus the total
// count over the same set. When a capacity range is active both the count
// and the page are computed against the filtered set. The count and page
// queries run concurrently on the pool.
func (r *Repository) List(ctx context.Context, params ListParams) ([]Venue, int, error) {
	where := "TRUE"
	args := []interface{}{}
	if params.MinCapacity != nil && params.MaxCapacity != nil {
		where = "capacity >= $1 AND capacity <= $2"
		args = append(args, *params.MinCapacity, *params.MaxCapacity)
	}

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM venues WHERE %s", where)
	pageQuery := fmt.Sprintf(`
		SELECT %s
		FROM venues
		WHERE %s
		ORDER BY created_at, id
		LIMIT %d OFFSET %d`, venueColumns, where, params.Limit, params.Offset)

	var (
		total  int
		venues []Venue
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := r.pool.QueryRow(gctx, countQuery, args...).Scan(&total); err != nil {
			return fmt.Errorf("count venues: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		rows, err := r.pool.Query(gctx, pageQuery, args...)
		if err != nil {
			return fmt.Errorf("list venues: %w", err)
		}
		defer rows.Close()

		venues, err = scanVenues(rows)
		if err != nil {
			return fmt.Errorf("scan venues: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, 0, err
	}
	return venues, total, nil
}

// Create inserts a new venue.
func (r *Repository) Create(ctx context.Context, params CreateParams) (Venue, error) {
	row := r.pool.QueryRow(ctx, createVenueQuery,
		params.Name, params.City, params.Address, params.Capacity, params.Indoor,
		params.PhoneNumber, params.Email, params.Picture, params.BackupPicture,
		params.OwnerID, params.Description,
	)

	venue, err := scanVenue(row)
	if err != nil {
		return Venue{}, fmt.Errorf("create venue: %w", err)
	}
	return venue, nil
}

// GetByID fetches a single venue.
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (Venue, error) {
	venue, err := scanVenue(r.pool.QueryRow(ctx, getVenueByIDQuery, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Venue{}, apperr.NotFound(venueNotFoundMessage, venueNotFoundPublicMessage)
		}
		return Venue{}, fmt.Errorf("get venue by id: %w", err)
	}
	return venue, nil
}

// ListByOwner returns every venue owned by ownerID.
func (r *Repository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]Venue, error) {
	rows, err := r.pool.Query(ctx, listVenuesByOwnerQuery, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list venues by owner: %w", err)
	}
	defer rows.Close()

	venues, err := scanVenues(rows)
	if err != nil {
		return nil, fmt.Errorf("scan owner venues: %w", err)
	}
	return venues, nil
}

// DeleteOwned deletes the venue in a single owner-scoped statement. The
// store's atomic delete-and-return decides races between concurrent
// deletions; the loser sees not-found.
func (r *Repository) DeleteOwned(ctx context.Context, id, ownerID uuid.UUID) (Venue, error) {
	venue, err := scanVenue(r.pool.QueryRow(ctx, deleteOwnedVenueQuery, id, ownerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Venue{}, apperr.NotFound(venueNotFoundMessage, venueNotFoundPublicMessage)
		}
		return Venue{}, fmt.Errorf("delete venue: %w", err)
	}
	return venue, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanVenue(row rowScanner) (Venue, error) {
	var v Venue
	err := row.Scan(
		&v.ID, &v.Name, &v.City, &v.Address, &v.Capacity, &v.Indoor,
		&v.PhoneNumber, &v.Email, &v.Picture, &v.BackupPicture,
		&v.OwnerID, &v.Description, &v.CreatedAt,
	)
	return v, err
}

func scanVenues(rows pgx.Rows) ([]Venue, error) {
	venues := make([]Venue, 0)
	for rows.Next() {
		venue, err := scanVenue(rows)
		if err != nil {
			return nil, err
		}
		venues = append(venues, venue)
	}
	return venues, rows.Err()
}
