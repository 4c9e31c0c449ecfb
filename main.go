package main

import (
	"fmt"
	"log"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kataras/iris/v12"
	"github.com/kataras/iris/v12/middleware/jwt"

	"mls-listing-server/routes"
	"mls-listing-server/storage"
	"mls-listing-server/utils"
)

func main() {
	// Only load .env in development
	if os.Getenv("RENDER") == "" {
		godotenv.Load()
	}

	// Initialize services
	storage.InitializeDB()
	storage.InitializeRedis()

	app := iris.New()
	app.Validator = validator.New()

	// CORS configuration
	app.AllowMethods(iris.MethodOptions)
	app.UseRouter(func(ctx iris.Context) {
		ctx.Header("Access-Control-Allow-Origin", ctx.GetHeader("Origin"))
		ctx.Header("Vary", "Origin")
		ctx.Header("Access-Control-Allow-Credentials", "true")
		ctx.Header("Access-Control-Allow-Headers", "Authorization, Content-Type, X-Requested-With")
		ctx.Header("Access-Control-Allow-Methods", "GET,POST,PATCH,PUT,DELETE,OPTIONS")
		if ctx.Method() == iris.MethodOptions {
			ctx.StatusCode(iris.StatusNoContent)
			return
		}
		ctx.Next()
	})

	// Minimal middleware - compression only
	app.Use(iris.Compression)

	// JWT Verifiers
	accessTokenVerifier := jwt.NewVerifier(jwt.HS256, []byte(os.Getenv("ACCESS_TOKEN_SECRET")))
	accessTokenVerifier.WithDefaultBlocklist()
	accessTokenVerifierMiddleware := accessTokenVerifier.Verify(func() interface{} {
		return new(utils.AccessToken)
	})

	refreshTokenVerifier := jwt.NewVerifier(jwt.HS256, []byte(os.Getenv("REFRESH_TOKEN_SECRET")))
	refreshTokenVerifier.WithDefaultBlocklist()
	refreshTokenVerifierMiddleware := refreshTokenVerifier.Verify(func() interface{} {
		return new(jwt.Claims)
	})

	refreshTokenVerifier.Extractors = append(refreshTokenVerifier.Extractors, func(ctx iris.Context) string {
		var tokenInput utils.RefreshTokenInput
		err := ctx.ReadJSON(&tokenInput)
		if err != nil {
			return ""
		}
		return tokenInput.RefreshToken
	})

	// Health check endpoint
	app.Get("/health", func(ctx iris.Context) {
		ctx.JSON(iris.Map{"status": "ok"})
	})

	user := app.Party("/api/user")
	{
		user.Post("/register", routes.Register)
		user.Post("/login", routes.Login)
		user.Post("/refresh", refreshTokenVerifierMiddleware, utils.RefreshToken)
		user.Get("/me", accessTokenVerifierMiddleware, routes.GetUser)
	}

	listing := app.Party("/api/listing", accessTokenVerifierMiddleware)
	{
		listing.Post("/", routes.CreateListing)
		listing.Get("/mine", routes.GetMyListings)
		listing.Get("/published", routes.GetPublishedListings)
		listing.Get("/{id:uint}", routes.GetListing)
		listing.Patch("/{id:uint}", routes.UpdateListing)
		listing.Delete("/{id:uint}", routes.DeleteListing)
	}

	admin := app.Party("/api/admin", accessTokenVerifierMiddleware, utils.ReviewerOnlyMiddleware)
	{
		admin.Get("/listings", routes.AdminListListings)
		admin.Get("/listings/{id:uint}", routes.AdminGetListing)
		admin.Patch("/listings/{id:uint}/status", routes.AdminUpdateListingStatus)
		admin.Get("/users", utils.AdminOnlyMiddleware, routes.AdminListUsers)
		admin.Patch("/users/{id:uint}/role", utils.AdminOnlyMiddleware, routes.AdminChangeUserRole)
	}

	notifications := app.Party("/api/notifications", accessTokenVerifierMiddleware, utils.UserIDFromTokenMiddleware)
	{
		notifications.Get("/", routes.GetMyNotifications)
		notifications.Get("/unread-count", routes.GetUnreadNotificationCount)
		notifications.Patch("/{id:uint}/read", routes.MarkNotificationRead)
		notifications.Post("/read-all", routes.MarkAllNotificationsRead)
	}

	classification := app.Party("/api/classification")
	{
		classification.Get("/categories", routes.GetPropertyCategories)
		classification.Get("/categories/{id:uint}/types", routes.GetPropertyTypes)
		classification.Get("/types/{id:uint}/subtypes", routes.GetPropertySubtypes)
	}

	location := app.Party("/api/location")
	{
		location.Get("/cities", routes.GetCities)
		location.Get("/cities/{code}/barangays", routes.GetCityBarangays)
		location.Get("/barangays/{code}/developments", routes.GetBarangayDevelopments)
		location.Get("/townships", routes.GetTownships)
		location.Get("/estates", routes.GetEstates)
	}

	links := app.Party("/api/links", accessTokenVerifierMiddleware)
	{
		links.Post("/", routes.CreateSharedLink)
		links.Get("/mine", routes.GetMySharedLinks)
		links.Delete("/{id:uint}", routes.DeleteSharedLink)
	}

	// Unauthenticated shared-link resolution for external clients
	app.Get("/api/public/links/{slug}", routes.ResolveSharedLink)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting server on port %s", port)
	app.Listen(fmt.Sprintf(":%s", port))
}
