package api

import (
	"net/http"
	"os"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/marie/subvention-scroller/internal/analysis"
	"github.com/marie/subvention-scroller/internal/auth"
	"github.com/marie/subvention-scroller/internal/linkcheck"
	"github.com/marie/subvention-scroller/internal/search"
	"github.com/marie/subvention-scroller/internal/sources"
)

type Server struct {
	Searcher    *search.Searcher
	Analyzer    *analysis.Analyzer
	Validator   *linkcheck.Validator
	Repairer    *linkcheck.Repairer
	AuthService *auth.Service
	Echo        *echo.Echo

	FrenchArts    *sources.FrenchVisualArts
	EuropeanArts  *sources.EuropeanVisualArts
	ColombianArts *sources.ColombianVisualArts

	// ExportDir overrides the default exports/ root; empty keeps the default.
	ExportDir string
}

func NewServer() *Server {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// CORS: allow frontend origins from env or default to localhost
	allowedOrigins := []string{"http://localhost:4200"}
	if extra := os.Getenv("CORS_ORIGINS"); extra != "" {
		for _, o := range strings.Split(extra, ",") {
			o = strings.TrimSpace(o)
			if o != "" {
				allowedOrigins = append(allowedOrigins, o)
			}
		}
	}
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: allowedOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))

	validator := linkcheck.NewValidator()
	s := &Server{
		Searcher:      search.NewSearcher(),
		Analyzer:      analysis.NewAnalyzer(),
		Validator:     validator,
		Repairer:      linkcheck.NewRepairer(validator),
		AuthService:   auth.NewService(),
		Echo:          e,
		FrenchArts:    sources.NewFrenchVisualArts(),
		EuropeanArts:  sources.NewEuropeanVisualArts(),
		ColombianArts: sources.NewColombianVisualArts(),
	}

	s.routes()
	return s
}

func (s *Server) routes() {
	s.Echo.GET("/health", s.handleHealth)
	api := s.Echo.Group("/api/v1")
	api.GET("/search", s.handleSearch)
	api.GET("/arts", s.handleArts)
	api.POST("/validate", s.handleValidate)

	// Auth Routes
	api.POST("/auth/login", s.handleLogin)

	// Admin Routes (Repair & Report)
	admin := api.Group("")
	admin.Use(auth.Middleware)
	admin.POST("/repair", s.handleRepair)
	admin.POST("/report", s.handleReport)
}

func (s *Server) Start(port string) error {
	return s.Echo.Start(":" + port)
}
