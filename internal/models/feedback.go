package models

import "time"

const (
	MinRating = 1
	MaxRating = 5
)

type FeedbackRecord struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	RaterID     uint      `json:"rater_id" gorm:"not null;index"`
	RatedUserID uint      `json:"rated_user_id" gorm:"not null;index"`
	Rating      int       `json:"rating" gorm:"not null"`
	Comment     string    `json:"comment" gorm:"type:text"`
	CreatedAt   time.Time `json:"created_at"`
}

type CreateFeedbackRequest struct {
	RatedUserID uint   `json:"ratedUserId" validate:"required"`
	Rating      int    `json:"rating" validate:"required,min=1,max=5"`
	Comment     string `json:"comment" validate:"max=1000"`
}

// FeedbackEntry is the public part of a feedback record shown on a profile.
type FeedbackEntry struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

// ProfileView is recomputed on every read.
type ProfileView struct {
	ID                 uint            `json:"id"`
	Name               string          `json:"name"`
	Address            string          `json:"address"`
	Phone              string          `json:"phone"`
	Rating             float64         `json:"rating"`
	Feedback           []FeedbackEntry `json:"feedback"`
	DonatedMedicines   []string        `json:"donatedMedicines"`
	RequestedMedicines []string        `json:"requestedMedicines"`
}
