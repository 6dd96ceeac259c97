package entities

import (
	"errors"
	"time"
)

// Ошибки домена объявлений.
var (
	ErrAdvertisementNotFound = errors.New("advertisement not found")
	ErrAdvertisementRejected = errors.New("advertisement rejected by store constraints")
)

// Ограничения полей объявления в символах.
const (
	HeadlineMinExclusive = 10
	HeadlineMaxLength    = 60
	DescriptionMaxLength = 500
)

// Advertisement - объявление, принадлежащее ровно одному пользователю.
type Advertisement struct {
	ID          int64     `json:"id"`
	Headline    string    `json:"headline"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	OwnerID     int64     `json:"owner_id"`
}
