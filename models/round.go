package models

import (
	"time"

	"gorm.io/datatypes"
)

// Round is the archived record of a finished room.
type Round struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	RoomCode    string         `gorm:"index" json:"room_code"`
	Players     int            `json:"players"`
	NumbersJSON datatypes.JSON `json:"numbers"` // called numbers in call order
	ClaimsJSON  datatypes.JSON `json:"claims"`  // claim type -> winner name
	OpenedAt    time.Time      `json:"opened_at"`
	ClosedAt    time.Time      `json:"closed_at"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}
