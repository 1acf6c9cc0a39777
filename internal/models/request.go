package models

import "time"

// RequestRecord is a requester's claim on a listing by name. The composite
// unique index makes (medicine_name, requester_id) at most one row.
type RequestRecord struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	MedicineName string    `json:"medicinename" gorm:"size:200;not null;uniqueIndex:idx_request_item_requester"`
	RequesterID  uint      `json:"requester_id" gorm:"not null;index;uniqueIndex:idx_request_item_requester"`
	Address      string    `json:"address"`
	Phone        string    `json:"phone" gorm:"size:32"`
	Photo        string    `json:"photo"`
	Description  string    `json:"description" gorm:"type:text"`
	Requested    bool      `json:"requested" gorm:"default:false"`
	CreatedAt    time.Time `json:"created_at" gorm:"index"`
}

// ContactInfo is what a requester leaves with a request.
type ContactInfo struct {
	Address     string `json:"address" validate:"max=255"`
	Phone       string `json:"phone" validate:"max=32"`
	Photo       string `json:"photo"`
	Description string `json:"description" validate:"max=2000"`
}

// RequestWithRequester is a request record with requester display info.
type RequestWithRequester struct {
	RequestRecord
	Requester *UserCompact `json:"requester"`
}
