package routes

import (
	"github.com/AntonioTonhao/Node-02-Desafio/config"
	"github.com/AntonioTonhao/Node-02-Desafio/controllers"
	"github.com/AntonioTonhao/Node-02-Desafio/middlewares"
	"github.com/AntonioTonhao/Node-02-Desafio/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func SetupRouter(db *gorm.DB, cfg *config.Config, log *zap.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.RequestLogger(log))

	// Credentials must be allowed so the session cookie survives
	// cross-origin requests, which rules out the wildcard origin.
	r.Use(cors.New(cors.Config{
		AllowOriginFunc:  func(origin string) bool { return true },
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: true,
	}))

	userSvc := services.NewUserService(db)
	mealSvc := services.NewMealService(db, cfg.StrictMealOwnership)

	userCtl := controllers.NewUserController(userSvc)
	mealCtl := controllers.NewMealController(mealSvc)

	r.GET("/health", controllers.Health)

	users := r.Group("/users")
	{
		users.POST("", userCtl.Register)
		users.GET("", userCtl.ListUsers)
	}

	meals := r.Group("/meals")
	meals.Use(middlewares.SessionAuth(db))
	{
		meals.POST("", mealCtl.CreateMeal)
		meals.GET("", mealCtl.ListMeals)
		meals.GET("/metrics", mealCtl.Metrics)
		meals.GET("/:mealId", mealCtl.GetMeal)
		meals.PUT("/:mealId", mealCtl.UpdateMeal)
		meals.DELETE("/:mealId", mealCtl.DeleteMeal)
	}

	return r
}
