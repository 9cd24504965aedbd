package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"hotel-admin/controllers"
	"hotel-admin/middleware"
	"hotel-admin/models"
	"hotel-admin/store"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

func registerEntity[T models.Entity](grp *gin.RouterGroup, path string, ec *controllers.EntityController[T]) {
	g := grp.Group(path)
	g.GET("", ec.List)
	g.POST("", ec.Create)
	g.POST("/refresh", ec.Refresh)
	g.PUT("/:id", ec.Update)
	g.DELETE("/:id", ec.Delete)
}

// SetupRouter wires every controller onto the engine. Login is open; the
// state endpoints sit behind auth only, so a failed initial load can still
// be inspected and retried; everything touching entity data additionally
// requires the Store to be loaded.
func SetupRouter(
	auth *controllers.AuthController,
	state *controllers.StateController,
	customers *controllers.EntityController[models.Customer],
	employees *controllers.EntityController[models.Employee],
	rooms *controllers.EntityController[models.Room],
	services *controllers.EntityController[models.Service],
	reservations *controllers.ReservationController,
	wizards *controllers.WizardController,
	st *store.Store,
) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Logger(), gin.Recovery())

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	api.POST("/auth/login", auth.Login)

	secured := api.Group("", middleware.RequireAuth(auth))
	secured.POST("/auth/logout", auth.Logout)
	secured.GET("/state", state.Get)
	secured.POST("/state/reload", state.Reload)

	data := secured.Group("", middleware.RequireStore(st))
	registerEntity(data, "/customers", customers)
	registerEntity(data, "/employees", employees)
	registerEntity(data, "/rooms", rooms)
	registerEntity(data, "/services", services)

	resGroup := data.Group("/reservations")
	{
		resGroup.GET("", reservations.List)
		resGroup.POST("/refresh", reservations.Refresh)
		resGroup.DELETE("/:id", reservations.Delete)
	}

	wiz := data.Group("/wizard")
	{
		wiz.POST("", wizards.Create)
		wiz.GET("/:id", wizards.Get)
		wiz.DELETE("/:id", wizards.End)
		wiz.PUT("/:id/dates", wizards.SetDates)
		wiz.PUT("/:id/room", wizards.SelectRoom)
		wiz.PUT("/:id/customer", wizards.SelectCustomer)
		wiz.POST("/:id/customer", wizards.CreateCustomer)
		wiz.POST("/:id/services/toggle", wizards.ToggleService)
		wiz.POST("/:id/next", wizards.Next)
		wiz.POST("/:id/back", wizards.Back)
		wiz.POST("/:id/confirm", wizards.Confirm)
		wiz.POST("/:id/load/:reservationId", wizards.Load)
	}

	return r
}
