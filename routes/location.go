package routes

import (
	"github.com/kataras/iris/v12"

	"mls-listing-server/models"
	"mls-listing-server/services"
	"mls-listing-server/storage"
	"mls-listing-server/utils"
)

// GET /location/cities
func GetCities(ctx iris.Context) {
	var cities []models.City
	if err := storage.DB.Order("name ASC").Find(&cities).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}
	ctx.JSON(cities)
}

// GET /location/cities/:code/barangays
// Served live from the PSGC registry (redis-cached); the local mirror
// only covers barangays already referenced by listings.
func GetCityBarangays(ctx iris.Context) {
	cityCode := ctx.Params().Get("code")
	if cityCode == "" {
		utils.JSONError(ctx, iris.StatusBadRequest, "invalid_code", "city code required")
		return
	}

	psgc := services.NewPSGCClient(storage.Redis)
	records, err := psgc.CityBarangays(cityCode)
	if err != nil {
		// Registry unreachable; fall back to the local mirror
		var barangays []models.Barangay
		if dbErr := storage.DB.Where("city_code = ?", cityCode).Order("name ASC").Find(&barangays).Error; dbErr != nil {
			utils.CreateInternalServerError(ctx)
			return
		}
		ctx.JSON(barangays)
		return
	}

	ctx.JSON(records)
}

// GET /location/barangays/:code/developments
func GetBarangayDevelopments(ctx iris.Context) {
	barangayCode := ctx.Params().Get("code")
	if barangayCode == "" {
		utils.JSONError(ctx, iris.StatusBadRequest, "invalid_code", "barangay code required")
		return
	}

	var developments []models.Development
	if err := storage.DB.Where("barangay_code = ? AND is_active = ?", barangayCode, true).
		Order("name ASC").Find(&developments).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}
	ctx.JSON(developments)
}

// GET /location/townships
func GetTownships(ctx iris.Context) {
	var townships []models.Township
	if err := storage.DB.Order("name ASC").Find(&townships).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}
	ctx.JSON(townships)
}

// GET /location/estates
func GetEstates(ctx iris.Context) {
	var estates []models.Estate
	if err := storage.DB.Order("name ASC").Find(&estates).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}
	ctx.JSON(estates)
}
