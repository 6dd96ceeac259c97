package handlers

import "time"

// Статусы в телах успешных ответов.
const (
	StatusCreated = "created"
	StatusDeleted = "deleted"
)

// CreatedResponse - ответ на создание ресурса.
type CreatedResponse struct {
	Status string `json:"status"`
	ID     int64  `json:"id"`
}

// UserDeletedResponse - ответ на удаление пользователя.
type UserDeletedResponse struct {
	UserID int64  `json:"user_id"`
	Status string `json:"status"`
}

// AdvertisementResponse - представление объявления.
type AdvertisementResponse struct {
	Headline    string  `json:"headline"`
	Description *string `json:"description"`
	CreatedAt   string  `json:"created_at"`
	OwnerID     int64   `json:"owner_id"`
}

// AdvertisementDeletedResponse - ответ на удаление объявления.
type AdvertisementDeletedResponse struct {
	AdvID  int64  `json:"adv_id"`
	Status string `json:"status"`
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
