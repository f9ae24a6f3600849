package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type Event struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Title       string    `gorm:"size:100;not null" json:"title"`
	Description string    `gorm:"size:1000;not null" json:"description"`
	Date        time.Time `gorm:"not null" json:"date"`
	Location    string    `gorm:"size:255;not null" json:"location"`
	Category    string    `gorm:"size:50;not null;index" json:"category"`
	Image       string    `gorm:"type:text" json:"image"`
	Capacity    int       `gorm:"not null" json:"capacity"`
	// TotalParticipants mirrors len(RegisteredUsers) and len(Tickets). It is
	// only ever moved by the conditional registration update, which also
	// guarantees TotalParticipants <= Capacity.
	TotalParticipants int            `gorm:"not null;default:0" json:"totalParticipants"`
	RegisteredUsers   pq.StringArray `gorm:"type:text[];not null;default:'{}'" json:"registeredUsers"`
	Tickets           []Ticket       `gorm:"foreignKey:EventID" json:"tickets,omitempty"`
	CreatedByID       uuid.UUID      `gorm:"type:uuid;index" json:"createdBy"`
	CreatedBy         User           `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	CreatedAt         time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
}

func (e *Event) BeforeCreate(tx *gorm.DB) (err error) {
	if e.ID == uuid.Nil {
		e.ID, err = uuid.NewV7()
	}
	return
}
