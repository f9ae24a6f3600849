package dto

type CreateEventRequest struct {
	Title       string `json:"title" binding:"required,max=100"`
	Description string `json:"description" binding:"required,max=1000"`
	Date        string `json:"date" binding:"required"`
	Location    string `json:"location" binding:"required"`
	// Image carries the poster as an inline base64 data URI; the stored event
	// holds the Cloudinary URL returned after upload.
	Image    string `json:"image" binding:"required"`
	Category string `json:"category" binding:"required"`
	Capacity int    `json:"capacity" binding:"required,gt=0"`
}

// UpdateEventRequest merges only the supplied fields into the event.
type UpdateEventRequest struct {
	EventID     string  `json:"eventId" binding:"required"`
	Title       *string `json:"title" binding:"omitempty,max=100"`
	Description *string `json:"description" binding:"omitempty,max=1000"`
	Date        *string `json:"date"`
	Location    *string `json:"location"`
	// Image, when present, carries a replacement poster as a data URI; the
	// previous poster is removed from storage after the new one uploads.
	Image    *string `json:"image"`
	Category *string `json:"category"`
	Capacity    *int    `json:"capacity" binding:"omitempty,gt=0"`
}

type EventIDRequest struct {
	EventID string `json:"eventId" binding:"required"`
}

type CategoryRequest struct {
	Category string `json:"category" binding:"required"`
}
