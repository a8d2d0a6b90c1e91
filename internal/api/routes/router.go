package routes

import (
	"github.com/daniilsm/sickday-go/internal/api/handlers"
	"github.com/daniilsm/sickday-go/internal/api/middleware"
	"github.com/daniilsm/sickday-go/internal/application"
	"github.com/daniilsm/sickday-go/internal/repository"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB) {
	repos := repository.NewRepositories(db)
	services := application.New(repos)
	h := handlers.New(services)

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: false,
	}))

	authRoutes := r.Group("/auth")
	{
		authRoutes.POST("/register", h.Auth.Register)
		authRoutes.POST("/login", h.Auth.Login)
		authRoutes.POST("/refresh", h.Auth.Refresh)
	}

	auth := r.Group("/")
	auth.Use(middleware.JWTAuthMiddleware())
	{
		tickets := auth.Group("/tickets")
		{
			tickets.GET("", h.Ticket.ListTickets)
			tickets.GET("/:id", h.Ticket.GetTicket)
			tickets.POST("", h.Ticket.CreateTicket)
			tickets.PUT("/:id", h.Ticket.UpdateTicket)
			tickets.PATCH("/:id/status", middleware.Admin(), h.Ticket.ChangeStatus)
			tickets.DELETE("/:id", h.Ticket.DeleteTicket)
		}

		prooves := auth.Group("/prooves")
		{
			prooves.PUT("/:id", h.Proof.UpdateProof)
			prooves.DELETE("/:id", h.Proof.DeleteProof)
		}

		users := auth.Group("/users")
		{
			users.GET("", middleware.Staff(), h.User.GetUsers)
			users.GET("/me", h.User.Me)
			users.GET("/:id", middleware.Staff(), h.User.GetUserByID)
			users.DELETE("/:id", middleware.Admin(), h.User.DeleteUser)
			users.PATCH("/:id/roles/grant", middleware.Admin(), h.User.GrantRole)
			users.PATCH("/:id/roles/revoke", middleware.Admin(), h.User.RevokeRole)
			users.PATCH("/:id/group", middleware.Admin(), h.User.AssignGroup)
		}

		groups := auth.Group("/groups")
		{
			groups.GET("", h.Group.GetGroups)
			groups.POST("", middleware.Admin(), h.Group.CreateGroup)
		}

		courses := auth.Group("/courses")
		{
			courses.GET("", h.Course.GetCourses)
			courses.POST("", middleware.Admin(), h.Course.CreateCourse)
		}

		auth.GET("/excel", middleware.Staff(), h.Export.ExportTickets)
		auth.POST("/upload", h.Upload.UploadProof)
	}
}
