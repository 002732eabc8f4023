package dtos

import (
	"github.com/glowmate/api/pkg/apperr"
	"github.com/glowmate/api/pkg/utils"
)

// DTO for profile updates. All fields are optional; present fields are
// validated with the registration bounds.
type UpdateProfileDTO struct {
	Name           *string  `json:"name"`
	Age            *int     `json:"age"`
	SkinType       *string  `json:"skinType"`
	SkinConditions []string `json:"skinConditions"`
	Allergens      []string `json:"allergens"`
}

func (d *UpdateProfileDTO) Validate() *apperr.Error {
	if d.Name != nil && (len(*d.Name) < 1 || len(*d.Name) > 100) {
		return apperr.Validation("Name must be between 1 and 100 characters")
	}
	if d.Age != nil && (*d.Age < 13 || *d.Age > 120) {
		return apperr.Validation("Age must be an integer between 13 and 120")
	}
	if d.SkinType != nil && !utils.ValidSkinType(*d.SkinType) {
		return apperr.Validation("SkinType must be one of: normal, dry, oily, combination, sensitive, mature")
	}
	if len(d.SkinConditions) > 10 {
		return apperr.Validation("skinConditions must be an array with at most 10 items")
	}
	if len(d.Allergens) > 20 {
		return apperr.Validation("allergens must be an array with at most 20 items")
	}
	return nil
}

type UpdateRoutineDTO struct {
	Morning []uint `json:"morning"`
	Evening []uint `json:"evening"`
}

type RoutineResponse struct {
	Morning []uint `json:"morning"`
	Evening []uint `json:"evening"`
}
