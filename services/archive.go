package services

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/tambolahq/tambola-backend/game"
	"github.com/tambolahq/tambola-backend/models"
	"github.com/tambolahq/tambola-backend/utils/logger"
)

// Archive writes finished rounds to the database for history. With no
// database configured every call is a no-op. Live game state never
// reads from the archive.
type Archive struct {
	db *gorm.DB
}

func NewArchive(db *gorm.DB) *Archive {
	return &Archive{db: db}
}

// SaveRound persists a round summary asynchronously; the caller does
// not wait on the write.
func (a *Archive) SaveRound(sum game.RoundSummary) {
	if a.db == nil {
		return
	}
	go func() {
		numbers, err := json.Marshal(sum.Called)
		if err != nil {
			logger.Errorf("archive: marshal numbers for %s: %v", sum.RoomCode, err)
			return
		}
		claims, err := json.Marshal(sum.Claims)
		if err != nil {
			logger.Errorf("archive: marshal claims for %s: %v", sum.RoomCode, err)
			return
		}

		round := models.Round{
			RoomCode:    sum.RoomCode,
			Players:     sum.Players,
			NumbersJSON: datatypes.JSON(numbers),
			ClaimsJSON:  datatypes.JSON(claims),
			OpenedAt:    sum.OpenedAt,
			ClosedAt:    time.Now(),
		}
		if err := a.db.Create(&round).Error; err != nil {
			logger.Errorf("archive: save round %s: %v", sum.RoomCode, err)
			return
		}
		logger.Debugf("archive: saved round %s (%d numbers called)", sum.RoomCode, len(sum.Called))
	}()
}
