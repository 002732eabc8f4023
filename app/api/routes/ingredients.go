package routes

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/glowmate/api/pkg/domains/ingredient"
)

func IngredientRoutes(r *gin.RouterGroup, s ingredient.Service) {
	r.GET("/suggest", suggestIngredients(s))
}

func suggestIngredients(s ingredient.Service) func(c *gin.Context) {
	return func(c *gin.Context) {
		limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

		ingredients, err := s.Suggest(c, c.Query("q"), limit)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(200, ingredients)
	}
}
