package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"medingen-server/internal/models"
	"medingen-server/internal/utils"
)

// FAQHandler handles FAQ requests.
type FAQHandler struct {
	DB *gorm.DB
}

// NewFAQHandler creates a new FAQHandler.
func NewFAQHandler(db *gorm.DB) *FAQHandler {
	return &FAQHandler{DB: db}
}

// FAQResponse is the API view of an FAQ entry.
type FAQResponse struct {
	ID       string `json:"id"`
	Category string `json:"category"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// GetFAQs returns the FAQs scoped to a medicine followed by general FAQs.
// General FAQs can be narrowed with the "category" query parameter;
// medicine-scoped FAQs are always included regardless of category.
func (h *FAQHandler) GetFAQs(c *gin.Context) {
	medicineID := c.Param("id")
	if !medicineExists(c, h.DB, medicineID) {
		return
	}

	var medicineFAQs []models.FAQ
	if err := h.DB.Where("medicine_id = ?", medicineID).Find(&medicineFAQs).Error; err != nil {
		utils.InternalServerError(c, "Database error")
		return
	}

	generalQuery := h.DB.Where("medicine_id IS NULL")
	if category := c.Query("category"); category != "" {
		generalQuery = generalQuery.Where("category = ?", category)
	}
	var generalFAQs []models.FAQ
	if err := generalQuery.Find(&generalFAQs).Error; err != nil {
		utils.InternalServerError(c, "Database error")
		return
	}

	result := make([]FAQResponse, 0, len(medicineFAQs)+len(generalFAQs))
	for _, faq := range append(medicineFAQs, generalFAQs...) {
		result = append(result, FAQResponse{
			ID:       faq.ID,
			Category: faq.Category,
			Question: faq.Question,
			Answer:   faq.Answer,
		})
	}

	c.JSON(http.StatusOK, result)
}
