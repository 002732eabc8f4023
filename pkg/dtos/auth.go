package dtos

import (
	"time"

	"github.com/glowmate/api/pkg/apperr"
	"github.com/glowmate/api/pkg/entities"
	"github.com/glowmate/api/pkg/utils"
)

// DTO for user registration
type RegisterDTO struct {
	Email          string   `json:"email"`
	Password       string   `json:"password"`
	Name           string   `json:"name"`
	Age            *int     `json:"age"`
	SkinType       string   `json:"skinType"`
	SkinConditions []string `json:"skinConditions"`
	Allergens      []string `json:"allergens"`
}

// Validate reports the first violated constraint.
func (d *RegisterDTO) Validate() *apperr.Error {
	if d.Email == "" || d.Password == "" || d.Name == "" || d.Age == nil || d.SkinType == "" {
		return apperr.Validation("Missing required fields: email, password, name, age, skinType")
	}
	if !utils.ValidEmail(d.Email) {
		return apperr.Validation("Email must be a valid email address and at most 255 characters")
	}
	if len(d.Password) < 8 || len(d.Password) > 128 {
		return apperr.Validation("Password must be between 8 and 128 characters")
	}
	if len(d.Name) < 1 || len(d.Name) > 100 {
		return apperr.Validation("Name must be between 1 and 100 characters")
	}
	if *d.Age < 13 || *d.Age > 120 {
		return apperr.Validation("Age must be an integer between 13 and 120")
	}
	if !utils.ValidSkinType(d.SkinType) {
		return apperr.Validation("SkinType must be one of: normal, dry, oily, combination, sensitive, mature")
	}
	if len(d.SkinConditions) > 10 {
		return apperr.Validation("skinConditions must be an array with at most 10 items")
	}
	for _, condition := range d.SkinConditions {
		if len(condition) > 50 {
			return apperr.Validation("Each skinCondition must be a string with at most 50 characters")
		}
	}
	if len(d.Allergens) > 20 {
		return apperr.Validation("allergens must be an array with at most 20 items")
	}
	for _, allergen := range d.Allergens {
		if len(allergen) > 100 {
			return apperr.Validation("Each allergen must be a string with at most 100 characters")
		}
	}
	return nil
}

// DTO for user login
type LoginDTO struct {
	Email    string `json:"email" binding:"required,isemail"`
	Password string `json:"password" binding:"required"`
}

type ForgotPasswordDTO struct {
	Email string `json:"email" binding:"required,isemail"`
}

type ResetPasswordDTO struct {
	Token    string `json:"token" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UserResponse is the public-safe user projection. It never carries the
// password hash.
type UserResponse struct {
	ID             uint      `json:"id"`
	Email          string    `json:"email"`
	Name           string    `json:"name"`
	Age            int       `json:"age"`
	SkinType       string    `json:"skinType"`
	SkinConditions []string  `json:"skinConditions"`
	Allergens      []string  `json:"allergens"`
	IsPremium      bool      `json:"isPremium"`
	IsVerified     bool      `json:"isVerified"`
	CreatedAt      time.Time `json:"createdAt"`
}

func NewUserResponse(user entities.User) UserResponse {
	skinConditions := user.SkinConditions
	if skinConditions == nil {
		skinConditions = []string{}
	}
	allergens := user.Allergens
	if allergens == nil {
		allergens = []string{}
	}
	return UserResponse{
		ID:             user.ID,
		Email:          user.Email,
		Name:           user.Name,
		Age:            user.Age,
		SkinType:       user.SkinType,
		SkinConditions: skinConditions,
		Allergens:      allergens,
		IsPremium:      user.IsPremium,
		IsVerified:     user.IsVerified,
		CreatedAt:      user.CreatedAt,
	}
}

type AuthResponse struct {
	Token   string       `json:"token"`
	User    UserResponse `json:"user"`
	Message string       `json:"message,omitempty"`
}
