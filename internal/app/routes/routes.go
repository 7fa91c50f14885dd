package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/okandemir/campusgate/internal/app/controllers"
	"github.com/okandemir/campusgate/internal/middleware"
)

// SetupRouter configures all application routes. Collection reads are
// public (the backend also serves them unauthenticated); every write and
// the audit trail require a valid bearer token.
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	studentController *controllers.StudentController,
	moduleController *controllers.ModuleController,
	registrationController *controllers.RegistrationController,
	gradeController *controllers.GradeController,
	operationController *controllers.OperationController,
	authMiddleware *middleware.AuthMiddleware,
) {
	v1 := router.Group("/api/v1")

	// --- Public auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/login", authController.Login)
		auth.POST("/register", authController.Register)
	}
	v1.GET("/auth/me", authMiddleware.JWTAuth(), authController.Me)

	// --- Public collection reads (token forwarded when present) ---
	public := v1.Group("")
	public.Use(authMiddleware.OptionalAuth())
	{
		public.GET("/students", studentController.ListStudents)
		public.GET("/modules", moduleController.ListModules)
		public.GET("/registrations", registrationController.ListRegistrations)
		public.GET("/grades", gradeController.ListGrades)
	}

	// --- Authenticated routes ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		students := authenticated.Group("/students")
		{
			students.POST("", studentController.CreateStudent)
			students.PUT("/:id", studentController.UpdateStudent)
			students.DELETE("/:id", studentController.DeleteStudent)
		}

		modules := authenticated.Group("/modules")
		{
			modules.POST("", moduleController.CreateModule)
			modules.PUT("/:id", moduleController.UpdateModule)
			modules.DELETE("/:id", moduleController.DeleteModule)
		}

		registrations := authenticated.Group("/registrations")
		{
			registrations.POST("", registrationController.CreateRegistration)
			registrations.PUT("/:id", registrationController.UpdateRegistration)
			registrations.DELETE("/:id", registrationController.DeleteRegistration)
		}

		grades := authenticated.Group("/grades")
		{
			grades.POST("/upsert", gradeController.UpsertGrade)
			grades.DELETE("/:id", gradeController.DeleteGrade)
		}

		operations := authenticated.Group("/operations")
		{
			operations.GET("", operationController.ListOperations)
			operations.POST("/:id/revert", operationController.RevertOperation)
		}
	}
}
