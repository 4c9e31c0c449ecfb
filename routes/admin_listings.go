package routes

import (
	"net/http"
	"strings"
	"time"

	"github.com/kataras/iris/v12"

	"mls-listing-server/models"
	"mls-listing-server/services"
	"mls-listing-server/storage"
	"mls-listing-server/utils"
)

// GET /admin/listings
func AdminListListings(ctx iris.Context) {
	page := ctx.URLParamIntDefault("page", 1)
	perPage := ctx.URLParamIntDefault("per_page", 25)
	if perPage <= 0 || perPage > 100 {
		perPage = 25
	}

	status := ctx.URLParamDefault("status", "")
	search := strings.TrimSpace(ctx.URLParamDefault("search", ""))
	agentID := ctx.URLParamDefault("agent_id", "")
	listingType := ctx.URLParamDefault("listing_type", "")
	createdFrom := ctx.URLParamDefault("created_from", "")
	createdTo := ctx.URLParamDefault("created_to", "")

	q := storage.DB.Model(&models.Listing{})
	if status != "" {
		q = q.Where("status = ?", status)
	}
	if agentID != "" {
		q = q.Where("created_by_id = ?", agentID)
	}
	if listingType != "" {
		q = q.Where("listing_type = ?", listingType)
	}
	if search != "" {
		like := "%" + strings.ToLower(search) + "%"
		q = q.Where("lower(title) LIKE ? OR lower(description) LIKE ? OR lower(city_name) LIKE ?", like, like, like)
	}
	if createdFrom != "" {
		if t, err := time.Parse(time.RFC3339, createdFrom); err == nil {
			q = q.Where("created_at >= ?", t)
		}
	}
	if createdTo != "" {
		if t, err := time.Parse(time.RFC3339, createdTo); err == nil {
			q = q.Where("created_at <= ?", t)
		}
	}

	var total int64
	q.Count(&total)

	var listings []models.Listing
	if err := q.Preload("CreatedBy").Offset((page - 1) * perPage).Limit(perPage).Order("created_at DESC").Find(&listings).Error; err != nil {
		utils.JSONError(ctx, http.StatusInternalServerError, "server_error", err.Error())
		return
	}

	utils.JSONPage(ctx, listings, page, perPage, total)
}

// GET /admin/listings/:id
func AdminGetListing(ctx iris.Context) {
	id, err := ctx.Params().GetUint("id")
	if err != nil {
		utils.JSONError(ctx, http.StatusBadRequest, "invalid_id", "invalid id")
		return
	}

	var listing models.Listing
	q := storage.DB.Model(&models.Listing{}).
		Preload("CreatedBy").
		Preload("PropertyCategory").
		Preload("PropertyType").
		Preload("PropertySubtype").
		Preload("Development")
	if err := q.First(&listing, id).Error; err != nil {
		utils.JSONError(ctx, http.StatusNotFound, "not_found", "listing not found")
		return
	}
	ctx.JSON(iris.Map{"data": listing, "meta": iris.Map{}, "links": iris.Map{}})
}

// PATCH /admin/listings/:id/status {status, remarks}
// Reviewer (approver/admin) status changes go through the same
// transition guard and dispatcher as agent updates.
func AdminUpdateListingStatus(ctx iris.Context) {
	id, err := ctx.Params().GetUint("id")
	if err != nil {
		utils.JSONError(ctx, http.StatusBadRequest, "invalid_id", "invalid id")
		return
	}

	var body UpdateListingStatusInput
	if err := ctx.ReadJSON(&body); err != nil || body.Status == "" {
		utils.JSONError(ctx, http.StatusUnprocessableEntity, "invalid_payload", "status required")
		return
	}

	var listing models.Listing
	if err := storage.DB.First(&listing, id).Error; err != nil {
		utils.JSONError(ctx, http.StatusNotFound, "not_found", "listing not found")
		return
	}

	actorID, _ := ctx.Values().Get("userID").(uint)
	actorRole, _ := ctx.Values().Get("userRole").(string)

	previousStatus := listing.Status
	if body.Status == previousStatus {
		ctx.JSON(iris.Map{"data": listing, "meta": iris.Map{}, "links": iris.Map{}})
		return
	}

	if err := services.ValidateStatusTransition(previousStatus, body.Status, actorRole); err != nil {
		writeLifecycleError(err, ctx)
		return
	}

	before := listing
	listing.Status = body.Status
	if err := storage.DB.Save(&listing).Error; err != nil {
		utils.JSONError(ctx, http.StatusInternalServerError, "server_error", err.Error())
		return
	}

	utils.Audit(ctx, "listing_status_change", "listing", listing.ID,
		iris.Map{"status": before.Status},
		iris.Map{"status": listing.Status, "remarks": body.Remarks})

	statusDispatcher().DispatchStatusChange(&listing, previousStatus, actorID)

	ctx.JSON(iris.Map{"data": listing, "meta": iris.Map{}, "links": iris.Map{}})
}
