package transport

// CreateVenueRequest carries the multipart form fields of a new venue.
// The picture file travels separately under the "picture" form file field,
// and any client-supplied owner is ignored.
type CreateVenueRequest struct {
	Name          string `form:"name" validate:"required"`
	City          string `form:"city" validate:"required"`
	Address       string `form:"address" validate:"required"`
	Capacity      int    `form:"capacity" validate:"required,gt=0"`
	Indoor        bool   `form:"indoor"`
	PhoneNumber   string `form:"phoneNumber" validate:"required"`
	Email         string `form:"email" validate:"required,email"`
	Description   string `form:"description" validate:"required"`
	Picture       string `form:"picture"`
	BackupPicture string `form:"backupPicture"`
}

type VenueResponse struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	City          string `json:"city"`
	Address       string `json:"address"`
	Capacity      int    `json:"capacity"`
	Indoor        bool   `json:"indoor"`
	PhoneNumber   string `json:"phoneNumber"`
	Email         string `json:"email"`
	Picture       string `json:"picture"`
	BackupPicture string `json:"backupPicture"`
	Owner         string `json:"owner"`
	Description   string `json:"description"`
}

// ListVenuesResponse is the page envelope for the public venue listing.
type ListVenuesResponse struct {
	Count          int             `json:"count"`
	IsPreviousPage bool            `json:"isPreviousPage"`
	IsNextPage     bool            `json:"isNextPage"`
	TotalPages     int             `json:"totalPages"`
	Venues         []VenueResponse `json:"venues"`
}

type UserVenuesResponse struct {
	UserVenues []VenueResponse `json:"userVenues"`
}
