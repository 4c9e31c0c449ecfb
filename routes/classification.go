package routes

import (
	"github.com/kataras/iris/v12"

	"mls-listing-server/models"
	"mls-listing-server/storage"
	"mls-listing-server/utils"
)

// GET /classification/categories
func GetPropertyCategories(ctx iris.Context) {
	var categories []models.PropertyCategory
	if err := storage.DB.Where("is_active = ?", true).Order("sort_order ASC, name ASC").Find(&categories).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}
	ctx.JSON(categories)
}

// GET /classification/categories/:id/types
func GetPropertyTypes(ctx iris.Context) {
	categoryID, err := ctx.Params().GetUint("id")
	if err != nil {
		utils.JSONError(ctx, iris.StatusBadRequest, "invalid_id", "invalid id")
		return
	}

	var types []models.PropertyType
	if err := storage.DB.Where("property_category_id = ? AND is_active = ?", categoryID, true).
		Order("sort_order ASC, name ASC").Find(&types).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}
	ctx.JSON(types)
}

// GET /classification/types/:id/subtypes
func GetPropertySubtypes(ctx iris.Context) {
	typeID, err := ctx.Params().GetUint("id")
	if err != nil {
		utils.JSONError(ctx, iris.StatusBadRequest, "invalid_id", "invalid id")
		return
	}

	var subtypes []models.PropertySubtype
	if err := storage.DB.Where("property_type_id = ? AND is_active = ?", typeID, true).
		Order("sort_order ASC, name ASC").Find(&subtypes).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}
	ctx.JSON(subtypes)
}
