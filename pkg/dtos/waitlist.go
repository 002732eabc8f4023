package dtos

type JoinWaitlistDTO struct {
	Email      string `json:"email"`
	ReferredBy string `json:"referredBy"`
}

type VerifyWaitlistDTO struct {
	Token string `json:"token" binding:"required"`
}

// WaitlistStatus is returned from every join, new entry or not.
type WaitlistStatus struct {
	Position     int    `json:"position"`
	ReferralCode string `json:"referralCode"`
	Points       int    `json:"points"`
	IsVerified   bool   `json:"isVerified"`
}
