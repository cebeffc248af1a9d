package handler

import (
	"errors"
	"net/http"
	"path/filepath"
	"strconv"

	"gig_venues_backend/internal/media"
	"gig_venues_backend/internal/venues/repository"
	"gig_venues_backend/internal/venues/service"
	"gig_venues_backend/internal/venues/transport"
	"gig_venues_backend/platform/config"
	"gig_venues_backend/platform/httpkit"
	"gig_venues_backend/platform/logger"
	"gig_venues_backend/platform/validator"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	msgInvalidRequest   = "invalid request"
	msgValidationFailed = "validation failed"
	msgUploadFailed     = "There was an error uploading the picture"

	pictureFileField = "picture"
)

type Handler struct {
	svc            *service.Service
	pipeline       *media.Pipeline
	val            *validator.Validator
	mediaDir       string
	maxUploadBytes int64
	log            *logger.Logger
}

func New(svc *service.Service, pipeline *media.Pipeline, val *validator.Validator, cfg config.MediaConfig, log *logger.Logger) *Handler {
	return &Handler{
		svc:            svc,
		pipeline:       pipeline,
		val:            val,
		mediaDir:       cfg.GetMediaDir(),
		maxUploadBytes: cfg.GetMaxUploadBytes(),
		log:            log,
	}
}

// RegisterPublicRoutes mounts the routes that need no token.
func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.List)
	rg.GET("/:venueId", h.GetByID)
}

// RegisterProtectedRoutes mounts the routes behind the auth middleware.
func (h *Handler) RegisterProtectedRoutes(rg *gin.RouterGroup) {
	rg.GET("/my-venues", h.MyVenues)
	rg.POST("/new-venue", h.Create)
	rg.DELETE("/delete/:venueId", h.Delete)
}

func (h *Handler) List(c *gin.Context) {
	query, ok := parseListQuery(c)
	if !ok {
		return
	}

	page, err := h.svc.List(c.Request.Context(), query)
	if httpkit.HandleError(c, h.log, err) {
		return
	}

	httpkit.OK(c, transport.ListVenuesResponse{
		Count:          page.Count,
		IsPreviousPage: page.IsPreviousPage,
		IsNextPage:     page.IsNextPage,
		TotalPages:     page.TotalPages,
		Venues:         toVenueResponses(page.Venues),
	})
}

func (h *Handler) GetByID(c *gin.Context) {
	venue, err := h.svc.GetByID(c.Request.Context(), c.Param("venueId"))
	if httpkit.HandleError(c, h.log, err) {
		return
	}
	httpkit.OK(c, toVenueResponse(venue))
}

func (h *Handler) MyVenues(c *gin.Context) {
	id := httpkit.MustGetIdentity(c)
	if id == nil {
		return
	}

	venues, err := h.svc.ListByOwner(c.Request.Context(), id.UserID())
	if httpkit.HandleError(c, h.log, err) {
		return
	}
	httpkit.OK(c, transport.UserVenuesResponse{UserVenues: toVenueResponses(venues)})
}

func (h *Handler) Create(c *gin.Context) {
	id := httpkit.MustGetIdentity(c)
	if id == nil {
		return
	}

	var req transport.CreateVenueRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, httpkit.ErrorResponse{Error: msgInvalidRequest})
		return
	}
	if err := h.val.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, httpkit.ErrorResponse{Error: msgValidationFailed})
		return
	}

	// Without a file the form's picture fields pass through untouched.
	draft := &media.Draft{Picture: req.Picture, BackupPicture: req.BackupPicture}

	file, err := c.FormFile(pictureFileField)
	switch {
	case err == nil:
		if file.Size > h.maxUploadBytes {
			c.JSON(http.StatusBadRequest, httpkit.ErrorResponse{Error: msgUploadFailed})
			return
		}
		tempPath := filepath.Join(h.mediaDir, uuid.NewString())
		if err := c.SaveUploadedFile(file, tempPath); err != nil {
			h.log.StorageError("save_upload", file.Filename, err)
			c.JSON(http.StatusBadRequest, httpkit.ErrorResponse{Error: msgUploadFailed})
			return
		}
		draft.Upload = &media.Upload{TempName: tempPath, OriginalName: file.Filename}
	case errors.Is(err, http.ErrMissingFile):
		// no picture attached
	default:
		c.JSON(http.StatusBadRequest, httpkit.ErrorResponse{Error: msgUploadFailed})
		return
	}

	if err := h.pipeline.Run(c.Request.Context(), draft); httpkit.HandleError(c, h.log, err) {
		return
	}

	venue, err := h.svc.Create(c.Request.Context(), id.UserID(), repository.CreateParams{
		Name:          req.Name,
		City:          req.City,
		Address:       req.Address,
		Capacity:      req.Capacity,
		Indoor:        req.Indoor,
		PhoneNumber:   req.PhoneNumber,
		Email:         req.Email,
		Picture:       draft.Picture,
		BackupPicture: draft.BackupPicture,
		Description:   req.Description,
	})
	if httpkit.HandleError(c, h.log, err) {
		return
	}

	httpkit.JSON(c, http.StatusCreated, toVenueResponse(venue))
}

func (h *Handler) Delete(c *gin.Context) {
	id := httpkit.MustGetIdentity(c)
	if id == nil {
		return
	}

	venue, err := h.svc.Delete(c.Request.Context(), id.UserID(), c.Param("venueId"))
	if httpkit.HandleError(c, h.log, err) {
		return
	}
	httpkit.OK(c, toVenueResponse(venue))
}

// parseListQuery reads page and the optional capacity bounds. A value that
// does not parse as an integer is a 400 before the service ever runs.
func parseListQuery(c *gin.Context) (service.ListQuery, bool) {
	query := service.ListQuery{}

	if raw := c.Query("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, httpkit.ErrorResponse{Error: msgInvalidRequest})
			return query, false
		}
		query.Page = page
	}

	var ok bool
	if query.MinCapacity, ok = parseOptionalInt(c, "minCapacity"); !ok {
		return query, false
	}
	if query.MaxCapacity, ok = parseOptionalInt(c, "maxCapacity"); !ok {
		return query, false
	}

	return query, true
}

func parseOptionalInt(c *gin.Context, name string) (*int, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	parsed, err := strconv.Atoi(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, httpkit.ErrorResponse{Error: msgInvalidRequest})
		return nil, false
	}
	return &parsed, true
}

func toVenueResponse(v repository.Venue) transport.VenueResponse {
	return transport.VenueResponse{
		ID:            v.ID.String(),
		Name:          v.Name,
		City:          v.City,
		Address:       v.Address,
		Capacity:      v.Capacity,
		Indoor:        v.Indoor,
		PhoneNumber:   v.PhoneNumber,
		Email:         v.Email,
		Picture:       v.Picture,
		BackupPicture: v.BackupPicture,
		Owner:         v.OwnerID.String(),
		Description:   v.Description,
	}
}

func toVenueResponses(venues []repository.Venue) []transport.VenueResponse {
	out := make([]transport.VenueResponse, 0, len(venues))
	for _, v := range venues {
		out = append(out, toVenueResponse(v))
	}
	return out
}
