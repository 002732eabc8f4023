package dtos

import "time"

type SubscribeDTO struct {
	Tier          string `json:"tier"`
	PaymentMethod string `json:"paymentMethod"`
}

type SubscribeResponse struct {
	Message   string    `json:"message"`
	Tier      string    `json:"tier"`
	ExpiresAt time.Time `json:"expiresAt"`
}
