package routes

import (
	"time"

	"github.com/kataras/iris/v12"

	"mls-listing-server/models"
	"mls-listing-server/storage"
	"mls-listing-server/utils"
)

func contextUserID(ctx iris.Context) (uint, bool) {
	userIDValue := ctx.Values().Get("userID")
	if userIDValue == nil {
		ctx.StatusCode(iris.StatusUnauthorized)
		ctx.JSON(iris.Map{"message": "User ID not found in context"})
		return 0, false
	}
	userID, ok := userIDValue.(uint)
	if !ok {
		ctx.StatusCode(iris.StatusInternalServerError)
		ctx.JSON(iris.Map{"message": "Invalid user ID format"})
		return 0, false
	}
	return userID, true
}

// GET /notifications?unread=1
func GetMyNotifications(ctx iris.Context) {
	userID, ok := contextUserID(ctx)
	if !ok {
		return
	}

	page := ctx.URLParamIntDefault("page", 1)
	perPage := ctx.URLParamIntDefault("per_page", 25)
	if perPage <= 0 || perPage > 100 {
		perPage = 25
	}

	q := storage.DB.Model(&models.Notification{}).Where("recipient_id = ?", userID)
	if ctx.URLParamDefault("unread", "") == "1" {
		q = q.Where("is_read = ?", false)
	}

	var total int64
	q.Count(&total)

	var notifications []models.Notification
	if err := q.Preload("Listing").Offset((page - 1) * perPage).Limit(perPage).Order("created_at DESC").Find(&notifications).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	utils.JSONPage(ctx, notifications, page, perPage, total)
}

// GET /notifications/unread-count
func GetUnreadNotificationCount(ctx iris.Context) {
	userID, ok := contextUserID(ctx)
	if !ok {
		return
	}

	var count int64
	storage.DB.Model(&models.Notification{}).Where("recipient_id = ? AND is_read = ?", userID, false).Count(&count)

	ctx.JSON(iris.Map{"count": count})
}

// PATCH /notifications/:id/read
func MarkNotificationRead(ctx iris.Context) {
	userID, ok := contextUserID(ctx)
	if !ok {
		return
	}

	id, err := ctx.Params().GetUint("id")
	if err != nil {
		utils.JSONError(ctx, iris.StatusBadRequest, "invalid_id", "invalid id")
		return
	}

	var notification models.Notification
	found := storage.DB.Find(&notification, id)
	if found.Error != nil {
		utils.CreateInternalServerError(ctx)
		return
	}
	if found.RowsAffected == 0 {
		utils.CreateNotFound(ctx)
		return
	}

	if notification.RecipientID != userID {
		utils.CreateForbidden(ctx)
		return
	}

	now := time.Now()
	notification.IsRead = true
	notification.ReadAt = &now
	if err := storage.DB.Save(&notification).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(&notification)
}

// POST /notifications/read-all
func MarkAllNotificationsRead(ctx iris.Context) {
	userID, ok := contextUserID(ctx)
	if !ok {
		return
	}

	now := time.Now()
	result := storage.DB.Model(&models.Notification{}).
		Where("recipient_id = ? AND is_read = ?", userID, false).
		Updates(map[string]interface{}{"is_read": true, "read_at": now})
	if result.Error != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(iris.Map{"updated": result.RowsAffected})
}
