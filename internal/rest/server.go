package rest

import (
	"net/http"

	"github.com/jaxron/roapi.go/pkg/api"
	"github.com/klauspost/compress/gzhttp"
	httpSwagger "github.com/swaggo/http-swagger"
	"github.com/uptrace/bunrouter"
	"github.com/voxelified/mellow-api/internal/database"
	"github.com/voxelified/mellow-api/internal/discord"
	"github.com/voxelified/mellow-api/internal/rest/handler"
	"github.com/voxelified/mellow-api/internal/rest/middleware/ratelimit"
	"github.com/voxelified/mellow-api/internal/rest/middleware/session"
	"github.com/voxelified/mellow-api/internal/setup/config"
	"go.uber.org/zap"
)

// Server implements the REST API service.
type Server struct {
	bindHandler   *handler.BindHandler
	robloxHandler *handler.RobloxHandler
	userHandler   *handler.UserHandler
}

// NewServer creates a new REST API server.
func NewServer(
	cfg *config.Config,
	db database.Client,
	roAPI *api.API,
	guard *discord.MembershipGuard,
	logger *zap.Logger,
) http.Handler {
	// Create server instance with handlers
	server := &Server{
		bindHandler:   handler.NewBindHandler(db, guard, logger),
		robloxHandler: handler.NewRobloxHandler(roAPI, guard, logger),
		userHandler:   handler.NewUserHandler(db, logger),
	}

	// Create middleware instances
	rateLimiter := ratelimit.New(&cfg.API.RateLimit, logger)
	sessionMiddleware := session.New(&cfg.Session, logger)

	// Create base router
	router := bunrouter.New()

	// Create API routes group
	router.Use(
		rateLimiter.AsRESTMiddleware,
		sessionMiddleware.AsRESTMiddleware,
	).WithGroup("/v1", func(g *bunrouter.Group) {
		g.GET("/servers/:serverID/binds", server.bindHandler.GetBinds)
		g.POST("/servers/:serverID/binds", server.bindHandler.CreateBind)
		g.PATCH("/servers/:serverID/binds", server.bindHandler.UpdateBind)
		g.DELETE("/servers/:serverID/binds/:bindID", server.bindHandler.DeleteBind)

		g.GET("/servers/:serverID/roblox/group-lookup", server.robloxHandler.SearchGroups)
		g.GET("/servers/:serverID/roblox/groups/:groupID/roles", server.robloxHandler.GetGroupRoles)

		g.GET("/users/@me", server.userHandler.GetMe)
		g.PATCH("/users/@me", server.userHandler.UpdateMe)
	})

	// Add redirect for /docs to /docs/index.html
	router.GET("/docs", func(w http.ResponseWriter, req bunrouter.Request) error {
		http.Redirect(w, req.Request, "/docs/index.html", http.StatusFound)
		return nil
	})

	// Add swagger documentation endpoint
	router.GET("/docs/:path", func(w http.ResponseWriter, req bunrouter.Request) error {
		// Reconstruct the full path for swagger
		path := "/docs/" + req.Param("path")
		req.Request.URL.Path = path

		httpSwagger.Handler(
			httpSwagger.URL("/docs/doc.json"),
		).ServeHTTP(w, req.Request)
		return nil
	})

	// Add gzip compression
	return gzhttp.GzipHandler(router)
}
