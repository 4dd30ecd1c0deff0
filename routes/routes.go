package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/vnkhanh/e-campus-bff/controllers"
	"github.com/vnkhanh/e-campus-bff/middleware"
)

// SetupRouter registers every route. The AuthGate runs engine-wide; the
// public allow-list (login, register, health, metrics, assets) is handled
// inside the gate itself.
func SetupRouter(r *gin.Engine) *gin.Engine {
	r.Use(middleware.RequestID())
	r.Use(middleware.Metrics())
	r.Use(middleware.RateLimit(50, 100))
	r.Use(middleware.AuthGate())

	r.GET("/health", controllers.HealthCheck)
	r.GET("/metrics", middleware.MetricsHandler())

	api := r.Group("/api")

	auth := api.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
		auth.POST("/logout", controllers.Logout)
		auth.GET("/session", controllers.Session)
	}

	users := api.Group("/users")
	{
		users.GET("/me", controllers.GetProfile)
		users.PUT("/me", controllers.UpdateProfile)
	}

	courses := api.Group("/courses")
	{
		courses.GET("", controllers.GetCourses)
		courses.POST("", controllers.CreateCourse)
		courses.GET("/:id", controllers.GetCourseDetail)
		courses.PUT("/:id", controllers.UpdateCourse)
		courses.DELETE("/:id", controllers.DeleteCourse)

		// enrollment (inscription) surface
		courses.POST("/:id/enrollments", controllers.RequestEnrollment)
		courses.GET("/:id/enrollments", controllers.ListCourseEnrollments)

		// gated course content
		courses.GET("/:id/materials", controllers.GetMaterials)
		courses.POST("/:id/documents", controllers.UploadDocument)
		courses.POST("/:id/folders", controllers.CreateFolder)

		courses.GET("/:id/assignments", controllers.ListAssignments)
		courses.POST("/:id/assignments", controllers.CreateAssignment)

		courses.GET("/:id/attendance", controllers.GetAttendance)
		courses.POST("/:id/attendance", controllers.RecordAttendance)

		courses.GET("/:id/forums", controllers.ListThreads)
		courses.POST("/:id/forums", controllers.CreateThread)

		courses.GET("/:id/announcements", controllers.ListAnnouncements)
		courses.POST("/:id/announcements", controllers.CreateAnnouncement)
	}

	enrollments := api.Group("/enrollments")
	{
		enrollments.GET("/mine", controllers.MyEnrollments)
		enrollments.PUT("/:id", controllers.DecideEnrollment)
		enrollments.DELETE("/:id", controllers.WithdrawEnrollment)
	}

	assignments := api.Group("/assignments")
	{
		assignments.POST("/:id/submissions", controllers.SubmitAssignment)
		assignments.GET("/:id/submissions", controllers.ListSubmissions)
	}

	forums := api.Group("/forums")
	{
		forums.GET("/:id/posts", controllers.ListPosts)
		forums.POST("/:id/posts", controllers.CreatePost)
	}

	donations := api.Group("/donations")
	{
		donations.POST("", controllers.CreateDonation)
		donations.GET("/mine", controllers.MyDonations)
		donations.POST("/:id/verify", controllers.VerifyDonation)
	}

	return r
}
