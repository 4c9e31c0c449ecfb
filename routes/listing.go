package routes

import (
	"github.com/kataras/iris/v12"
	"github.com/kataras/iris/v12/middleware/jwt"

	"mls-listing-server/models"
	"mls-listing-server/services"
	"mls-listing-server/storage"
	"mls-listing-server/utils"
)

// lifecycleLookup builds the reference lookup the validators run
// against: local mirrors first, PSGC registry (redis-cached) as
// fallback for geographic names.
func lifecycleLookup() *services.GormLookup {
	return services.NewGormLookup(storage.DB, services.NewPSGCClient(storage.Redis))
}

func statusDispatcher() *services.NotificationDispatcher {
	store := services.NewGormNotificationStore(storage.DB)
	return services.NewNotificationDispatcher(store, store)
}

func writeLifecycleError(err error, ctx iris.Context) {
	switch err.(type) {
	case *services.TransitionError:
		utils.JSONError(ctx, iris.StatusUnprocessableEntity, "invalid_transition", err.Error())
	case *services.ClassificationError:
		utils.JSONError(ctx, iris.StatusUnprocessableEntity, "invalid_classification", err.Error())
	case services.FieldErrors:
		utils.JSONError(ctx, iris.StatusUnprocessableEntity, "invalid_fields", err.Error())
	case *services.LocationError:
		utils.JSONError(ctx, iris.StatusUnprocessableEntity, "invalid_location", err.Error())
	default:
		utils.CreateInternalServerError(ctx)
	}
}

func applyListingInput(listing *models.Listing, input *CreateListingInput) {
	listing.Title = input.Title
	listing.Description = input.Description
	listing.ListingType = input.ListingType
	listing.TransactionType = input.TransactionType

	listing.Price = input.Price
	listing.PricePerSqm = input.PricePerSqm
	listing.FloorAreaSqm = input.FloorAreaSqm
	listing.LotAreaSqm = input.LotAreaSqm
	listing.Furnishing = input.Furnishing
	listing.ConstructionYear = input.ConstructionYear
	listing.TitleStatus = input.TitleStatus
	listing.PropertyOwnerName = input.PropertyOwnerName
	listing.PropertyOwnerContact = input.PropertyOwnerContact
	listing.PropertyOwnerNotes = input.PropertyOwnerNotes

	listing.ModelName = input.ModelName
	listing.IndicativePrice = input.IndicativePrice
	listing.IndicativePriceMin = input.IndicativePriceMin
	listing.IndicativePriceMax = input.IndicativePriceMax
	listing.MinFloorArea = input.MinFloorArea
	listing.MinLotArea = input.MinLotArea
	listing.StandardInclusions = input.StandardInclusions
	listing.PresellingNotes = input.PresellingNotes

	listing.Bedrooms = input.Bedrooms
	listing.Bathrooms = input.Bathrooms
	listing.ParkingSlots = input.ParkingSlots

	listing.PropertyCategoryID = optionalID(input.PropertyCategoryID)
	listing.PropertyTypeID = optionalID(input.PropertyTypeID)
	listing.PropertySubtypeID = optionalID(input.PropertySubtypeID)

	listing.CityCode = input.CityCode
	listing.BarangayCode = input.BarangayCode
	listing.DevelopmentID = optionalID(input.DevelopmentID)
}

func optionalID(id uint) *uint {
	if id == 0 {
		return nil
	}
	return &id
}

// runListingValidators runs classification, listing-type field and
// location hierarchy checks on the candidate, then enriches it with
// the derived location fields. existing is nil on create.
func runListingValidators(candidate, existing *models.Listing, ctx iris.Context) bool {
	lookup := lifecycleLookup()

	if err := services.ValidateClassification(candidate, lookup); err != nil {
		writeLifecycleError(err, ctx)
		return false
	}
	if err := services.ValidateListingTypeFields(candidate, lookup); err != nil {
		writeLifecycleError(err, ctx)
		return false
	}
	if err := services.ValidateLocationHierarchy(candidate, existing, lookup); err != nil {
		writeLifecycleError(err, ctx)
		return false
	}

	services.PopulateLocationDerived(candidate, lookup)
	return true
}

func CreateListing(ctx iris.Context) {
	claims := jwt.Get(ctx).(*utils.AccessToken)

	var input CreateListingInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	listing := models.Listing{
		Status:      models.StatusDraft,
		CreatedByID: claims.ID,
	}
	applyListingInput(&listing, &input)

	if !runListingValidators(&listing, nil, ctx) {
		return
	}

	if err := storage.DB.Create(&listing).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.StatusCode(iris.StatusCreated)
	ctx.JSON(listing)
}

func GetListing(ctx iris.Context) {
	id, err := ctx.Params().GetUint("id")
	if err != nil {
		utils.JSONError(ctx, iris.StatusBadRequest, "invalid_id", "invalid id")
		return
	}

	var listing models.Listing
	found := storage.DB.
		Preload("PropertyCategory").
		Preload("PropertyType").
		Preload("PropertySubtype").
		Preload("Development").
		Find(&listing, id)
	if found.Error != nil {
		utils.CreateInternalServerError(ctx)
		return
	}
	if found.RowsAffected == 0 {
		utils.CreateNotFound(ctx)
		return
	}

	ctx.JSON(&listing)
}

func GetMyListings(ctx iris.Context) {
	claims := jwt.Get(ctx).(*utils.AccessToken)

	var listings []models.Listing
	if err := storage.DB.Where("created_by_id = ?", claims.ID).Order("updated_at DESC").Find(&listings).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(listings)
}

// GetPublishedListings lists published listings for browsing agents.
func GetPublishedListings(ctx iris.Context) {
	page := ctx.URLParamIntDefault("page", 1)
	perPage := ctx.URLParamIntDefault("per_page", 25)
	if perPage <= 0 || perPage > 100 {
		perPage = 25
	}

	q := storage.DB.Model(&models.Listing{}).Where("status = ?", models.StatusPublished)
	if listingType := ctx.URLParamDefault("listing_type", ""); listingType != "" {
		q = q.Where("listing_type = ?", listingType)
	}
	if categoryID := ctx.URLParamDefault("category_id", ""); categoryID != "" {
		q = q.Where("property_category_id = ?", categoryID)
	}
	if cityCode := ctx.URLParamDefault("city_code", ""); cityCode != "" {
		q = q.Where("city_code = ?", cityCode)
	}
	if priceMin := ctx.URLParamFloat64Default("price_min", 0); priceMin > 0 {
		q = q.Where("price >= ? OR indicative_price >= ?", priceMin, priceMin)
	}
	if priceMax := ctx.URLParamFloat64Default("price_max", 0); priceMax > 0 {
		q = q.Where("price <= ? OR indicative_price <= ?", priceMax, priceMax)
	}

	var total int64
	q.Count(&total)

	var listings []models.Listing
	if err := q.Offset((page - 1) * perPage).Limit(perPage).Order("updated_at DESC").Find(&listings).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	utils.JSONPage(ctx, listings, page, perPage, total)
}

func UpdateListing(ctx iris.Context) {
	id, err := ctx.Params().GetUint("id")
	if err != nil {
		utils.JSONError(ctx, iris.StatusBadRequest, "invalid_id", "invalid id")
		return
	}

	claims := jwt.Get(ctx).(*utils.AccessToken)

	var existing models.Listing
	found := storage.DB.Find(&existing, id)
	if found.Error != nil {
		utils.CreateInternalServerError(ctx)
		return
	}
	if found.RowsAffected == 0 {
		utils.CreateNotFound(ctx)
		return
	}

	if existing.CreatedByID != claims.ID && claims.Role != models.RoleAdmin {
		utils.CreateForbidden(ctx)
		return
	}

	var input UpdateListingInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	previousStatus := existing.Status

	candidate := existing
	applyListingInput(&candidate, &input.CreateListingInput)
	if input.Status != "" {
		candidate.Status = input.Status
	}

	// Guard only when the status actually changes
	if candidate.Status != previousStatus {
		if err := services.ValidateStatusTransition(previousStatus, candidate.Status, claims.Role); err != nil {
			writeLifecycleError(err, ctx)
			return
		}
	}

	if !runListingValidators(&candidate, &existing, ctx) {
		return
	}

	if err := storage.DB.Save(&candidate).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	statusDispatcher().DispatchStatusChange(&candidate, previousStatus, claims.ID)

	ctx.JSON(&candidate)
}

func DeleteListing(ctx iris.Context) {
	id, err := ctx.Params().GetUint("id")
	if err != nil {
		utils.JSONError(ctx, iris.StatusBadRequest, "invalid_id", "invalid id")
		return
	}

	claims := jwt.Get(ctx).(*utils.AccessToken)

	var listing models.Listing
	found := storage.DB.Find(&listing, id)
	if found.Error != nil {
		utils.CreateInternalServerError(ctx)
		return
	}
	if found.RowsAffected == 0 {
		utils.CreateNotFound(ctx)
		return
	}

	if listing.CreatedByID != claims.ID && claims.Role != models.RoleAdmin {
		utils.CreateForbidden(ctx)
		return
	}

	if err := storage.DB.Delete(&models.Listing{}, id).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.StatusCode(iris.StatusNoContent)
}
