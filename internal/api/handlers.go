package api

import (
	"context"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/marie/subvention-scroller/internal/analysis"
	"github.com/marie/subvention-scroller/internal/auth"
	"github.com/marie/subvention-scroller/internal/export"
	"github.com/marie/subvention-scroller/internal/linkcheck"
	"github.com/marie/subvention-scroller/internal/models"
	"github.com/marie/subvention-scroller/internal/search"
	"github.com/marie/subvention-scroller/internal/sources"
)

const defaultCheckTimeout = 10 * time.Second

func (s *Server) handleHealth(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

func (s *Server) handleSearch(c echo.Context) error {
	params := models.SearchParams{
		Keywords:         c.QueryParam("keywords"),
		Region:           c.QueryParam("region"),
		EuropeanRegion:   c.QueryParam("european_region"),
		ColombianRegion:  c.QueryParam("colombian_region"),
		IncludeEuropean:  boolParam(c, "include_european"),
		IncludeColombian: boolParam(c, "include_colombian"),
		Limit:            intParam(c, "limit", 50),
	}

	results := s.Searcher.SearchAll(c.Request().Context(), params)
	return c.JSON(http.StatusOK, models.SearchSession{Params: params, Results: results})
}

func (s *Server) handleArts(c echo.Context) error {
	filter := sources.ArtsFilter{}.FromParams(models.SearchParams{
		ArtType:   c.QueryParam("art_type"),
		Country:   c.QueryParam("country"),
		City:      c.QueryParam("city"),
		MinAmount: intParam(c, "min_amount", 0),
		MaxAmount: intParam(c, "max_amount", 0),
	})

	var opps []models.Opportunity
	switch scope := c.QueryParam("scope"); scope {
	case "french":
		opps = s.FrenchArts.Query(filter)
	case "european":
		opps = s.EuropeanArts.Query(filter)
	case "colombian":
		opps = s.ColombianArts.Query(filter)
	case "", "all":
		opps = append(opps, s.FrenchArts.Query(filter)...)
		opps = append(opps, s.EuropeanArts.Query(filter)...)
		opps = append(opps, s.ColombianArts.Query(filter)...)
	default:
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Unknown scope: " + scope})
	}
	if opps == nil {
		opps = []models.Opportunity{}
	}

	return c.JSON(http.StatusOK, map[string]any{
		"count":         len(opps),
		"opportunities": opps,
	})
}

type validateRequest struct {
	URLs           []string `json:"urls"`
	TimeoutSeconds int      `json:"timeout_seconds"`
}

func (s *Server) handleValidate(c echo.Context) error {
	var req validateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request"})
	}
	if len(req.URLs) == 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "No URLs provided"})
	}

	timeout := defaultCheckTimeout
	if req.TimeoutSeconds > 0 {
		timeout = time.Duration(req.TimeoutSeconds) * time.Second
	}

	results := make([]linkcheck.ValidationResult, 0, len(req.URLs))
	working := 0
	for _, u := range req.URLs {
		res := s.Validator.Validate(c.Request().Context(), u, timeout)
		if res.Working {
			working++
		}
		results = append(results, res)
	}

	return c.JSON(http.StatusOK, map[string]any{
		"total":   len(results),
		"working": working,
		"broken":  len(results) - working,
		"results": results,
	})
}

func (s *Server) handleLogin(c echo.Context) error {
	var req auth.LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request"})
	}

	resp, err := s.AuthService.Login(req)
	if err != nil {
		if err == auth.ErrInvalidCreds {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid credentials"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	return c.JSON(http.StatusOK, resp)
}

type repairRequest struct {
	URLs   []linkcheck.BrokenURL `json:"urls"`
	Params *models.SearchParams  `json:"params"`
	Name   string                `json:"name"`
}

func (s *Server) handleRepair(c echo.Context) error {
	var req repairRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request"})
	}
	if len(req.URLs) == 0 && req.Params == nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "No URLs provided"})
	}
	if len(req.URLs) == 0 {
		req.URLs = s.collectBroken(c.Request().Context(), *req.Params, defaultCheckTimeout)
	}

	results, summary := s.Repairer.RepairAll(c.Request().Context(), req.URLs)

	name := req.Name
	if name == "" {
		name = "repair"
	}
	logPath, err := export.WriteFixLog(results, summary, name, s.ExportDir)
	if err != nil {
		log.Printf("Writing fix log failed: %v", err)
	}

	return c.JSON(http.StatusOK, map[string]any{
		"summary":  summary,
		"results":  results,
		"log_path": logPath,
	})
}

type reportRequest struct {
	Params        models.SearchParams `json:"params"`
	ValidateLinks bool                `json:"validate_links"`
	AutoFix       bool                `json:"auto_fix"`
	Export        bool                `json:"export"`
}

func (s *Server) handleReport(c echo.Context) error {
	var req reportRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request"})
	}
	if req.Params.Limit <= 0 {
		req.Params.Limit = 50
	}

	ctx := c.Request().Context()
	results := s.Searcher.SearchAll(ctx, req.Params)
	report := s.Analyzer.Analyze(ctx, results, req.Params, analysis.Options{
		ValidateLinks: req.ValidateLinks,
		AutoFix:       req.AutoFix,
		Timeout:       defaultCheckTimeout,
	})

	files := map[string]string{}
	if req.Export {
		name := req.Params.Keywords
		if path, err := export.WriteReport(report, name, s.ExportDir); err != nil {
			log.Printf("Writing report failed: %v", err)
		} else {
			files["report"] = path
		}
		if path, err := export.WriteWorkbook(results.All(), name, s.ExportDir); err != nil {
			log.Printf("Writing workbook failed: %v", err)
		} else {
			files["workbook"] = path
		}
	}

	return c.JSON(http.StatusOK, map[string]any{
		"report": report,
		"files":  files,
	})
}

// Broken URL sets can also be derived server-side from a fresh search, so
// admins do not have to paste URL lists by hand.
func (s *Server) collectBroken(ctx context.Context, params models.SearchParams, timeout time.Duration) []linkcheck.BrokenURL {
	results := s.Searcher.SearchAll(ctx, params)
	var broken []linkcheck.BrokenURL
	for _, entry := range search.CollectURLs(results) {
		res := s.Validator.Validate(ctx, entry.URL, timeout)
		if !res.Working {
			broken = append(broken, entry)
		}
	}
	return broken
}

func boolParam(c echo.Context, name string) bool {
	v, err := strconv.ParseBool(c.QueryParam(name))
	return err == nil && v
}

func intParam(c echo.Context, name string, fallback int) int {
	raw := c.QueryParam(name)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return fallback
	}
	return v
}
