package routes

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/glowmate/api/pkg/apperr"
	"github.com/glowmate/api/pkg/constant"
	"github.com/glowmate/api/pkg/domains/product"
	"github.com/glowmate/api/pkg/domains/review"
	"github.com/glowmate/api/pkg/dtos"
	"github.com/glowmate/api/pkg/middleware"
	"github.com/glowmate/api/pkg/state"
)

func ProductRoutes(r *gin.RouterGroup, s product.Service, reviews review.Service, secret string) {
	r.GET("", listProducts(s))
	r.GET("/:barcode", getProductByBarcode(s))
	r.GET("/:barcode/reviews", productReviews(reviews))

	authGroup := r.Group("", middleware.CheckAuth(secret))
	{
		authGroup.POST("", createProduct(s))
		authGroup.GET("/for-me", recommendations(s))
		authGroup.POST("/:barcode/reviews", createReview(reviews))
	}
}

func listProducts(s product.Service) func(c *gin.Context) {
	return func(c *gin.Context) {
		filter := dtos.ProductFilter{
			Query:    c.Query("q"),
			Brand:    c.Query("brand"),
			Category: c.Query("category"),
			Sort:     c.DefaultQuery("sort", "rating_desc"),
		}
		filter.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
		filter.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", "20"))
		if v, err := strconv.ParseFloat(c.Query("minPrice"), 64); err == nil {
			filter.MinPrice = &v
		}
		if v, err := strconv.ParseFloat(c.Query("maxPrice"), 64); err == nil {
			filter.MaxPrice = &v
		}
		if v, err := strconv.ParseFloat(c.Query("minRating"), 64); err == nil {
			filter.MinRating = &v
		}

		resp, err := s.List(c, filter)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(200, resp)
	}
}

func createProduct(s product.Service) func(c *gin.Context) {
	return func(c *gin.Context) {
		var req dtos.CreateProductDTO
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, apperr.Validation(constant.INVALID_REQUEST))
			return
		}

		created, err := s.Create(c, req)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(201, created)
	}
}

func getProductByBarcode(s product.Service) func(c *gin.Context) {
	return func(c *gin.Context) {
		found, err := s.GetByBarcode(c, c.Param("barcode"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(200, found)
	}
}

func recommendations(s product.Service) func(c *gin.Context) {
	return func(c *gin.Context) {
		products, err := s.RecommendFor(c, state.CurrentUser(c))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(200, products)
	}
}

func productReviews(s review.Service) func(c *gin.Context) {
	return func(c *gin.Context) {
		limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
		offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

		reviews, total, err := s.ListForProduct(c, c.Param("barcode"), limit, offset)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(200, gin.H{"reviews": reviews, "total": total})
	}
}

func createReview(s review.Service) func(c *gin.Context) {
	return func(c *gin.Context) {
		var req dtos.CreateReviewDTO
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, apperr.Validation(constant.INVALID_REQUEST))
			return
		}

		created, err := s.Create(c, state.CurrentUser(c), c.Param("barcode"), req)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(201, created)
	}
}
