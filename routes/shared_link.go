package routes

import (
	"encoding/json"

	"github.com/kataras/iris/v12"
	"github.com/kataras/iris/v12/middleware/jwt"
	"gorm.io/datatypes"

	"mls-listing-server/models"
	"mls-listing-server/storage"
	"mls-listing-server/utils"
)

// POST /links
func CreateSharedLink(ctx iris.Context) {
	claims := jwt.Get(ctx).(*utils.AccessToken)

	var input CreateSharedLinkInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	filtersJSON, err := json.Marshal(input.Filters)
	if err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	link := models.SharedLink{
		Slug:        utils.GenerateShortToken(16),
		Label:       input.Label,
		Filters:     datatypes.JSON(filtersJSON),
		CreatedByID: claims.ID,
	}

	if err := storage.DB.Create(&link).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.StatusCode(iris.StatusCreated)
	ctx.JSON(link)
}

// GET /links/mine
func GetMySharedLinks(ctx iris.Context) {
	claims := jwt.Get(ctx).(*utils.AccessToken)

	var links []models.SharedLink
	if err := storage.DB.Where("created_by_id = ?", claims.ID).Order("created_at DESC").Find(&links).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}
	ctx.JSON(links)
}

// DELETE /links/:id
func DeleteSharedLink(ctx iris.Context) {
	claims := jwt.Get(ctx).(*utils.AccessToken)

	id, err := ctx.Params().GetUint("id")
	if err != nil {
		utils.JSONError(ctx, iris.StatusBadRequest, "invalid_id", "invalid id")
		return
	}

	var link models.SharedLink
	found := storage.DB.Find(&link, id)
	if found.Error != nil {
		utils.CreateInternalServerError(ctx)
		return
	}
	if found.RowsAffected == 0 {
		utils.CreateNotFound(ctx)
		return
	}

	if link.CreatedByID != claims.ID && claims.Role != models.RoleAdmin {
		utils.CreateForbidden(ctx)
		return
	}

	if err := storage.DB.Delete(&models.SharedLink{}, id).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}
	ctx.StatusCode(iris.StatusNoContent)
}

// GET /public/links/:slug
// Unauthenticated, read-only view: only published listings matching
// the link's stored filter set are returned.
func ResolveSharedLink(ctx iris.Context) {
	slug := ctx.Params().Get("slug")

	var link models.SharedLink
	found := storage.DB.Where("slug = ?", slug).Find(&link)
	if found.Error != nil {
		utils.CreateInternalServerError(ctx)
		return
	}
	if found.RowsAffected == 0 || link.IsActive == nil || !*link.IsActive {
		utils.CreateNotFound(ctx)
		return
	}

	var filters SharedLinkFilters
	if link.Filters != nil {
		if err := json.Unmarshal(link.Filters, &filters); err != nil {
			utils.CreateInternalServerError(ctx)
			return
		}
	}

	q := storage.DB.Model(&models.Listing{}).Where("status = ?", models.StatusPublished)
	if filters.ListingType != "" {
		q = q.Where("listing_type = ?", filters.ListingType)
	}
	if filters.TransactionType != "" {
		q = q.Where("transaction_type = ?", filters.TransactionType)
	}
	if filters.PropertyCategoryID != 0 {
		q = q.Where("property_category_id = ?", filters.PropertyCategoryID)
	}
	if filters.PropertyTypeID != 0 {
		q = q.Where("property_type_id = ?", filters.PropertyTypeID)
	}
	if filters.CityCode != "" {
		q = q.Where("city_code = ?", filters.CityCode)
	}
	if filters.BarangayCode != "" {
		q = q.Where("barangay_code = ?", filters.BarangayCode)
	}
	if filters.DevelopmentID != 0 {
		q = q.Where("development_id = ?", filters.DevelopmentID)
	}
	if filters.PriceMin > 0 {
		q = q.Where("price >= ? OR indicative_price >= ?", filters.PriceMin, filters.PriceMin)
	}
	if filters.PriceMax > 0 {
		q = q.Where("price <= ? OR indicative_price <= ?", filters.PriceMax, filters.PriceMax)
	}

	var listings []models.Listing
	if err := q.Order("updated_at DESC").Limit(100).Find(&listings).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(iris.Map{
		"label":    link.Label,
		"listings": listings,
	})
}
