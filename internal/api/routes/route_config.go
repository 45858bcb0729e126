package routes

import (
	"plateplan-backend/internal/api/handlers"
	"plateplan-backend/internal/middleware"
	"plateplan-backend/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App              *fiber.App
	UserHandler      handlers.UserHandler
	HouseholdHandler handlers.HouseholdHandler
	PantryHandler    handlers.PantryHandler
	RecipeHandler    handlers.RecipeHandler
	MealPlanHandler  handlers.MealPlanHandler
	ShoppingHandler  handlers.ShoppingHandler
	GroceryHandler   handlers.GroceryHandler
	MidtransHandler  handlers.MidtransHandler
	Middleware       middleware.Middleware
	JWTService       jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.User()
	c.Households()
	c.Recipes()
	c.MealPlans()
	c.ShoppingLists()
	c.Grocery()
	c.Admin()
	c.GuestRoute()
}

func (c *Config) User() {
	user := c.App.Group("/api/v1/users")
	{
		user.Post("/register", c.UserHandler.Register)
		user.Post("/login", c.UserHandler.Login)
		user.Post("/send_verify", c.UserHandler.SendVerificationEmail)
		user.Get("/verify", c.UserHandler.VerifyEmail)
		user.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Me)
		user.Patch("/update", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.UpdateUser)
		user.Post("/forget", c.UserHandler.ForgotPassword)
		user.Post("/reset", c.UserHandler.ResetPassword)
		user.Post("/subscribe", c.Middleware.AuthMiddleware(c.JWTService), c.MidtransHandler.CreateTransaction)
	}
}

func (c *Config) Households() {
	households := c.App.Group("/api/v1/households", c.Middleware.AuthMiddleware(c.JWTService))
	{
		households.Post("", c.HouseholdHandler.CreateHousehold)
		households.Get("/:id", c.HouseholdHandler.GetHousehold)
		households.Patch("/:id", c.HouseholdHandler.UpdateHousehold)
		households.Post("/:id/members", c.HouseholdHandler.AddMember)
		households.Get("/:id/members", c.HouseholdHandler.GetMembers)
		households.Get("/:id/pantry", c.PantryHandler.GetPantryItems)
		households.Post("/:id/pantry", c.PantryHandler.AddPantryItem)
		households.Post("/:id/shopping-lists/generate", c.ShoppingHandler.GenerateShoppingList)
		households.Get("/:id/shopping-lists", c.ShoppingHandler.GetShoppingLists)
	}

	members := c.App.Group("/api/v1/members", c.Middleware.AuthMiddleware(c.JWTService))
	{
		members.Patch("/:id", c.HouseholdHandler.UpdateMember)
		members.Delete("/:id", c.HouseholdHandler.DeleteMember)
	}

	pantry := c.App.Group("/api/v1/pantry", c.Middleware.AuthMiddleware(c.JWTService))
	{
		pantry.Patch("/:id", c.PantryHandler.UpdatePantryItem)
		pantry.Delete("/:id", c.PantryHandler.DeletePantryItem)
	}
}

func (c *Config) Recipes() {
	recipes := c.App.Group("/api/v1/recipes", c.Middleware.AuthMiddleware(c.JWTService))
	{
		recipes.Post("/generate", c.RecipeHandler.GenerateRecipe)
		recipes.Get("", c.RecipeHandler.GetRecipes)
		recipes.Get("/:id", c.RecipeHandler.GetRecipe)
		recipes.Post("/:id/image", c.RecipeHandler.UploadRecipeImage)
		recipes.Post("/:id/feedback", c.RecipeHandler.SaveFeedback)
	}
}

func (c *Config) MealPlans() {
	members := c.App.Group("/api/v1/members", c.Middleware.AuthMiddleware(c.JWTService))
	{
		members.Post("/:id/meal-plans/generate", c.MealPlanHandler.GenerateMealPlan)
		members.Get("/:id/meal-plans", c.MealPlanHandler.GetMealPlans)
	}

	plans := c.App.Group("/api/v1/meal-plans", c.Middleware.AuthMiddleware(c.JWTService))
	{
		plans.Post("/:id/activate", c.MealPlanHandler.ActivateMealPlan)
		plans.Post("/:id/feedback", c.MealPlanHandler.SaveFeedback)
	}
}

func (c *Config) ShoppingLists() {
	lists := c.App.Group("/api/v1/shopping-lists", c.Middleware.AuthMiddleware(c.JWTService))
	{
		lists.Patch("/:id/complete", c.ShoppingHandler.CompleteShoppingList)
		lists.Post("/:id/email", c.ShoppingHandler.EmailShoppingList)
	}
}

func (c *Config) Grocery() {
	grocery := c.App.Group("/api/v1/grocery", c.Middleware.AuthMiddleware(c.JWTService))
	{
		grocery.Get("/prices", c.GroceryHandler.CompareGroceryPrices)
		grocery.Get("/best-prices", c.GroceryHandler.FindBestPrices)
		grocery.Post("/route", c.GroceryHandler.OptimizeShoppingRoute)
	}
}

func (c *Config) Admin() {
	admin := c.App.Group("/api/v1/admin", c.Middleware.AuthMiddleware(c.JWTService), c.Middleware.AdminMiddleware())
	{
		admin.Get("/stats", c.UserHandler.GetAdminStats)
		admin.Put("/grocery-prices", c.GroceryHandler.UpdateGroceryPrices)
	}
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
	c.App.Post("/webhook/midtrans", c.MidtransHandler.MidtransWebhookHandler)
}
