package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	RoleUser        = "user"
	RoleCollegeLead = "collegeLead"
	RoleAdmin       = "admin"
)

// Lead request states. An empty string means the user never submitted one.
const (
	LeadRequestPending  = "pending"
	LeadRequestApproved = "approved"
	LeadRequestRejected = "rejected"
)

// CollegeInfo is the organizer application submitted with a lead request.
type CollegeInfo struct {
	CollegeName   string `gorm:"size:150" json:"collegeName,omitempty"`
	Degree        string `gorm:"size:100" json:"degree,omitempty"`
	YearOfPassing string `gorm:"size:10" json:"yearOfPassing,omitempty"`
	Agenda        string `gorm:"type:text" json:"agenda,omitempty"`
}

type User struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	// IdentityID is the stable reference issued by the external identity
	// provider. It is the key other records point at, not the surrogate ID.
	IdentityID     string      `gorm:"size:100;uniqueIndex;not null" json:"identityId"`
	Email          string      `gorm:"size:100;not null" json:"email"`
	Role           string      `gorm:"size:20;not null;default:user" json:"role"`
	LeadRequest    string      `gorm:"size:20" json:"collegeLeadRequest,omitempty"`
	CollegeInfo    CollegeInfo `gorm:"embedded;embeddedPrefix:college_" json:"collegeInfo"`
	IsAdmin        bool        `gorm:"default:false" json:"isAdmin"`
	IsCollegeLead  bool        `gorm:"default:false" json:"isCollegeLead"`
	ProfilePicture *string     `gorm:"type:text" json:"profilePicture,omitempty"`
	EventsCreated  []Event     `gorm:"foreignKey:CreatedByID" json:"eventsCreated,omitempty"`
	CreatedAt      time.Time   `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time   `gorm:"autoUpdateTime" json:"updated_at"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
