package config

import (
	"context"
	"os"
	"time"

	"plateplan-backend/internal/api/handlers"
	"plateplan-backend/internal/api/routes"
	"plateplan-backend/internal/middleware"
	"plateplan-backend/internal/utils"
	"plateplan-backend/internal/utils/storage"
	"plateplan-backend/pkg/gemini"
	"plateplan-backend/pkg/grocery"
	"plateplan-backend/pkg/household"
	"plateplan-backend/pkg/jwt"
	"plateplan-backend/pkg/mealplan"
	"plateplan-backend/pkg/midtrans"
	"plateplan-backend/pkg/pantry"
	"plateplan-backend/pkg/recipe"
	"plateplan-backend/pkg/shopping"
	"plateplan-backend/pkg/user"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()
	generator, err := gemini.NewClient(
		context.Background(),
		utils.GetConfig("GEMINI_API_KEY"),
		utils.GetConfig("GEMINI_MODEL"),
	)
	if err != nil {
		log.Fatalf("error creating gemini client: %v", err)
		return nil, err
	}

	// Repository
	userRepository := user.NewUserRepository(db)
	midtransRepository := midtrans.NewMidtransRepository(db)
	householdRepository := household.NewHouseholdRepository(db)
	pantryRepository := pantry.NewPantryRepository(db)
	recipeRepository := recipe.NewRecipeRepository(db)
	mealPlanRepository := mealplan.NewMealPlanRepository(db)
	shoppingRepository := shopping.NewShoppingRepository(db)
	groceryRepository := grocery.NewGroceryRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	userService := user.NewUserService(userRepository, jwtService)
	midtransService := midtrans.NewMidtransService(midtransRepository)
	householdService := household.NewHouseholdService(householdRepository, mealPlanRepository)
	pantryService := pantry.NewPantryService(pantryRepository, householdRepository)
	recipeService := recipe.NewRecipeService(recipeRepository, householdRepository, generator, s3)
	mealPlanService := mealplan.NewMealPlanService(mealPlanRepository, generator)
	groceryService := grocery.NewGroceryService(groceryRepository)
	shoppingService := shopping.NewShoppingService(
		shoppingRepository,
		householdRepository,
		mealPlanRepository,
		pantryRepository,
		groceryService,
	)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	midtransHandler := handlers.NewMidtransHandler(midtransService, validator)
	householdHandler := handlers.NewHouseholdHandler(householdService, validator)
	pantryHandler := handlers.NewPantryHandler(pantryService, validator)
	recipeHandler := handlers.NewRecipeHandler(recipeService, validator)
	mealPlanHandler := handlers.NewMealPlanHandler(mealPlanService, validator)
	shoppingHandler := handlers.NewShoppingHandler(shoppingService, validator)
	groceryHandler := handlers.NewGroceryHandler(groceryService, validator)

	// routes
	routesConfig := routes.Config{
		App:              app,
		UserHandler:      userHandler,
		HouseholdHandler: householdHandler,
		PantryHandler:    pantryHandler,
		RecipeHandler:    recipeHandler,
		MealPlanHandler:  mealPlanHandler,
		ShoppingHandler:  shoppingHandler,
		GroceryHandler:   groceryHandler,
		MidtransHandler:  midtransHandler,
		Middleware:       middlewares,
		JWTService:       jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
