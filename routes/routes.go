package routes

import (
	"github.com/baabaablacksheep2102/Spring-boot-nm-fitness-tracker/controllers"
	"github.com/baabaablacksheep2102/Spring-boot-nm-fitness-tracker/middlewares"
	"github.com/baabaablacksheep2102/Spring-boot-nm-fitness-tracker/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupRouter(db *gorm.DB, tokens *services.TokenService, uploadDir string) *gin.Engine {
	r := gin.Default()

	users := services.NewUserService(db)
	meals := services.NewMealService(db)
	workouts := services.NewWorkoutService(db)
	goals := services.NewGoalService(db)
	dashboard := services.NewDashboardService(db)

	authCtrl := controllers.NewAuthController(users, tokens)
	userCtrl := &controllers.UserController{Users: users, UploadDir: uploadDir}
	mealCtrl := &controllers.MealController{Meals: meals}
	workoutCtrl := &controllers.WorkoutController{Workouts: workouts, UploadDir: uploadDir}
	goalCtrl := &controllers.GoalController{Goals: goals}
	dashCtrl := &controllers.DashboardController{Dashboard: dashboard}

	// Uploaded files (profile pictures, workout archives) are served
	// straight from the uploads directory.
	r.Static("/uploads", uploadDir)

	api := r.Group("/api")
	api.Use(middlewares.Identity(tokens))
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", authCtrl.Register)
			auth.POST("/login", authCtrl.Login)
			auth.POST("/logout", authCtrl.Logout)
		}

		user := api.Group("/users")
		{
			user.GET("/:userId", userCtrl.GetProfile)
			user.POST("/:userId", userCtrl.UpdateProfile)
			user.POST("/:userId/uploadProfilePicture", userCtrl.UploadProfilePicture)
		}

		meal := api.Group("/meals")
		{
			meal.POST("/:userId", mealCtrl.LogMeal)
			meal.GET("/:userId", mealCtrl.GetMeals)
			meal.DELETE("/:userId/:mealId", mealCtrl.DeleteMeal)
		}

		workout := api.Group("/workouts")
		{
			workout.POST("/:userId/upload", workoutCtrl.Upload)
			workout.GET("/:userId", workoutCtrl.GetWorkouts)
			workout.GET("/:userId/:workoutId", workoutCtrl.GetWorkoutByID)
			workout.DELETE("/:userId/:workoutId", workoutCtrl.DeleteWorkout)
		}

		goal := api.Group("/goals")
		{
			goal.POST("/:userId", goalCtrl.CreateGoal)
			goal.GET("/:userId", goalCtrl.GetGoals)
			goal.PUT("/:userId/:goalId", goalCtrl.UpdateGoal)
			goal.DELETE("/:userId/:goalId", goalCtrl.DeleteGoal)
		}

		dash := api.Group("/dashboard")
		{
			dash.GET("/:userId/stats", dashCtrl.GetStats)
			dash.GET("/:userId/weekly", dashCtrl.GetWeekly)
		}
	}

	return r
}
