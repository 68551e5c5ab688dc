package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"medingen-server/internal/models"
	"medingen-server/internal/utils"
)

const (
	defaultPerPage    = 10
	maxPerPage        = 100
	summaryDescrLimit = 100
)

// MedicineHandler handles catalog read requests.
type MedicineHandler struct {
	DB *gorm.DB
}

// NewMedicineHandler creates a new MedicineHandler.
func NewMedicineHandler(db *gorm.DB) *MedicineHandler {
	return &MedicineHandler{DB: db}
}

// MedicineSummary is the projected list view of a medicine.
type MedicineSummary struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Rating      *float64 `json:"rating"`
	ImageURL    string   `json:"image_url"`
}

// MedicineDetail is the full record view with parsed side effects.
type MedicineDetail struct {
	ID                  string   `json:"id"`
	Name                string   `json:"name"`
	Description         string   `json:"description"`
	Usage               string   `json:"usage"`
	Mechanism           string   `json:"mechanism"`
	SideEffects         []string `json:"side_effects"`
	Price               float64  `json:"price"`
	Rating              *float64 `json:"rating"`
	Manufacturer        string   `json:"manufacturer"`
	ChemicalComposition string   `json:"chemical_composition"`
	ImageURL            string   `json:"image_url"`
}

// MedicinePage is the paginated list response.
type MedicinePage struct {
	Items []MedicineSummary `json:"items"`
	Total int64             `json:"total"`
	Pages int               `json:"pages"`
	Page  int               `json:"page"`
}

func toMedicineDetail(m *models.Medicine) MedicineDetail {
	return MedicineDetail{
		ID:                  m.ID,
		Name:                m.Name,
		Description:         m.Description,
		Usage:               m.Usage,
		Mechanism:           m.Mechanism,
		SideEffects:         models.SplitSideEffects(m.SideEffects),
		Price:               m.Price,
		Rating:              m.Rating,
		Manufacturer:        m.Manufacturer,
		ChemicalComposition: m.ChemicalComposition,
		ImageURL:            m.ImageURL,
	}
}

// truncateDescription shortens a description for the list view, appending an
// ellipsis when the text was cut.
func truncateDescription(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "..."
}

// GetMedicines returns a paginated summary view of the catalog. Pages are
// 1-indexed; out-of-range pages yield an empty item list rather than an
// error. An optional search term matches medicine names case-insensitively.
func (h *MedicineHandler) GetMedicines(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	perPage, err := strconv.Atoi(c.DefaultQuery("per_page", strconv.Itoa(defaultPerPage)))
	if err != nil || perPage < 1 {
		perPage = defaultPerPage
	}
	if perPage > maxPerPage {
		perPage = maxPerPage
	}

	query := h.DB.Model(&models.Medicine{})
	if search := c.Query("search"); search != "" {
		query = query.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(search)+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		utils.InternalServerError(c, "Database error")
		return
	}

	var medicines []models.Medicine
	if err := query.Offset((page - 1) * perPage).Limit(perPage).Find(&medicines).Error; err != nil {
		utils.InternalServerError(c, "Database error")
		return
	}

	result := MedicinePage{
		Items: make([]MedicineSummary, 0, len(medicines)),
		Total: total,
		Pages: int((total + int64(perPage) - 1) / int64(perPage)),
		Page:  page,
	}
	for _, m := range medicines {
		result.Items = append(result.Items, MedicineSummary{
			ID:          m.ID,
			Name:        m.Name,
			Description: truncateDescription(m.Description, summaryDescrLimit),
			Price:       m.Price,
			Rating:      m.Rating,
			ImageURL:    m.ImageURL,
		})
	}

	c.JSON(http.StatusOK, result)
}

// GetMedicineByID returns the full record of a single medicine.
func (h *MedicineHandler) GetMedicineByID(c *gin.Context) {
	var medicine models.Medicine
	if err := h.DB.First(&medicine, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.NotFound(c, "Medicine not found")
		} else {
			utils.InternalServerError(c, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, toMedicineDetail(&medicine))
}

// GetFeaturedMedicine returns the highest-rated medicine for promotional
// display. Unrated medicines sort last.
func (h *MedicineHandler) GetFeaturedMedicine(c *gin.Context) {
	var medicine models.Medicine
	if err := h.DB.Order("rating DESC").First(&medicine).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.NotFound(c, "No featured medicine found")
		} else {
			utils.InternalServerError(c, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, toMedicineDetail(&medicine))
}

// AlternativeResponse is the API view of a generic alternative.
type AlternativeResponse struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Price        float64  `json:"price"`
	Discount     *int     `json:"discount"`
	Rating       *float64 `json:"rating"`
	Manufacturer string   `json:"manufacturer"`
	ImageURL     string   `json:"image_url"`
	Availability string   `json:"availability"`
}

// GetAlternatives returns all generic alternatives of a medicine.
func (h *MedicineHandler) GetAlternatives(c *gin.Context) {
	medicineID := c.Param("id")
	if !medicineExists(c, h.DB, medicineID) {
		return
	}

	var alternatives []models.GenericAlternative
	if err := h.DB.Where("medicine_id = ?", medicineID).Find(&alternatives).Error; err != nil {
		utils.InternalServerError(c, "Database error")
		return
	}

	result := make([]AlternativeResponse, 0, len(alternatives))
	for _, alt := range alternatives {
		result = append(result, AlternativeResponse{
			ID:           alt.ID,
			Name:         alt.Name,
			Price:        alt.Price,
			Discount:     alt.Discount,
			Rating:       alt.Rating,
			Manufacturer: alt.Manufacturer,
			ImageURL:     alt.ImageURL,
			Availability: alt.Availability,
		})
	}

	c.JSON(http.StatusOK, result)
}

// medicineExists verifies the medicine id and writes the error response when
// it does not resolve. Returns true when the caller may proceed.
func medicineExists(c *gin.Context, db *gorm.DB, id string) bool {
	var medicine models.Medicine
	if err := db.Select("id").First(&medicine, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.NotFound(c, "Medicine not found")
		} else {
			utils.InternalServerError(c, "Database error")
		}
		return false
	}
	return true
}
