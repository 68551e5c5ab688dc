package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"medingen-server/internal/middleware"
	"medingen-server/internal/models"
	"medingen-server/internal/utils"
)

// ReviewHandler handles review listing and submission.
type ReviewHandler struct {
	DB *gorm.DB
}

// NewReviewHandler creates a new ReviewHandler.
func NewReviewHandler(db *gorm.DB) *ReviewHandler {
	return &ReviewHandler{DB: db}
}

// ReviewResponse is the API view of a review.
type ReviewResponse struct {
	ID      string  `json:"id"`
	Rating  int     `json:"rating"`
	Comment string  `json:"comment"`
	UserID  *string `json:"user_id"`
}

// GetReviews returns all reviews of a medicine.
func (h *ReviewHandler) GetReviews(c *gin.Context) {
	medicineID := c.Param("id")
	if !medicineExists(c, h.DB, medicineID) {
		return
	}

	var reviews []models.Review
	if err := h.DB.Where("medicine_id = ?", medicineID).Find(&reviews).Error; err != nil {
		utils.InternalServerError(c, "Database error")
		return
	}

	result := make([]ReviewResponse, 0, len(reviews))
	for _, review := range reviews {
		result = append(result, ReviewResponse{
			ID:      review.ID,
			Rating:  review.Rating,
			Comment: review.Comment,
			UserID:  review.UserID,
		})
	}

	c.JSON(http.StatusOK, result)
}

// AddReviewRequest represents the request body for submitting a review.
// Rating must be a JSON integer; fractional values fail to bind.
type AddReviewRequest struct {
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment"`
}

// AddReview persists a review and recomputes the medicine's mean rating.
// The insert and the rating update run in one transaction with the medicine
// row locked, so concurrent submissions serialize and neither update is lost.
func (h *ReviewHandler) AddReview(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		utils.Unauthorized(c, "User not authenticated")
		return
	}

	medicineID := c.Param("id")
	if !medicineExists(c, h.DB, medicineID) {
		return
	}

	var req AddReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Rating must be an integer between 1 and 5")
		return
	}

	review := models.Review{
		MedicineID: medicineID,
		UserID:     &userID,
		Rating:     req.Rating,
		Comment:    req.Comment,
	}

	err := h.DB.Transaction(func(tx *gorm.DB) error {
		// Row-level lock on mysql; sqlite has no FOR UPDATE syntax but
		// serializes writers on its own.
		locked := tx
		if tx.Dialector.Name() == "mysql" {
			locked = tx.Clauses(clause.Locking{Strength: "UPDATE"})
		}

		var medicine models.Medicine
		if err := locked.First(&medicine, "id = ?", medicineID).Error; err != nil {
			return err
		}

		if err := tx.Create(&review).Error; err != nil {
			return err
		}

		var ratings []int
		if err := tx.Model(&models.Review{}).
			Where("medicine_id = ?", medicineID).
			Pluck("rating", &ratings).Error; err != nil {
			return err
		}

		sum := 0
		for _, r := range ratings {
			sum += r
		}
		mean := float64(sum) / float64(len(ratings))
		return tx.Model(&medicine).Update("rating", mean).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.NotFound(c, "Medicine not found")
		} else {
			utils.InternalServerError(c, "Failed to add review")
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Review added successfully",
		"id":      review.ID,
	})
}
