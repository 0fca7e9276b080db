package api

import (
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/Ayush-Kotlin-Dev/lostandfound/internal/catalog"
	"github.com/Ayush-Kotlin-Dev/lostandfound/internal/match"
	"github.com/Ayush-Kotlin-Dev/lostandfound/internal/models"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// uiThreshold is the default minimum score for the item matches endpoint. It
// sits below the search default so callers also see borderline candidates.
const uiThreshold = 0.4

type Server struct {
	Catalog  *catalog.Catalog
	Registry *catalog.Registry
	Echo     *echo.Echo
}

func NewServer(cat *catalog.Catalog, registry *catalog.Registry) *Server {
	e := echo.New()
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// CORS: allow frontend origins from env or default to localhost
	allowedOrigins := []string{"http://localhost:3000"}
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
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
	}))

	s := &Server{
		Catalog:  cat,
		Registry: registry,
		Echo:     e,
	}

	s.routes()
	return s
}

func (s *Server) routes() {
	s.Echo.GET("/health", s.handleHealth)
	api := s.Echo.Group("/api/v1")
	api.GET("/categories", s.handleGetCategories)
	api.GET("/items", s.handleListItems)
	api.POST("/items", s.handleReportItem)
	api.GET("/items/:id", s.handleGetItem)
	api.GET("/items/:id/matches", s.handleGetItemMatches)
	api.POST("/match", s.handleAdHocMatch)
	api.GET("/stats", s.handleGetStats)
}

func (s *Server) handleHealth(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

func (s *Server) handleGetCategories(c echo.Context) error {
	return c.JSON(http.StatusOK, s.Registry.Categories)
}

func (s *Server) handleListItems(c echo.Context) error {
	params := catalog.ListParams{
		Category: c.QueryParam("category"),
		Query:    c.QueryParam("q"),
		Limit:    20,
	}

	if raw := c.QueryParam("status"); raw != "" {
		status := models.ParseStatus(raw)
		if status == "" {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid status filter"})
		}
		params.Status = status
	}
	if l, err := strconv.Atoi(c.QueryParam("limit")); err == nil && l > 0 && l <= 100 {
		params.Limit = l
	}
	if o, err := strconv.Atoi(c.QueryParam("offset")); err == nil && o >= 0 {
		params.Offset = o
	}

	return c.JSON(http.StatusOK, s.Catalog.List(params))
}

type reportItemRequest struct {
	Title         string `json:"title"`
	Description   string `json:"description"`
	Category      string `json:"category"`
	Location      string `json:"location"`
	Date          string `json:"date"`
	Status        string `json:"status"`
	ReporterName  string `json:"reporter_name"`
	ReporterEmail string `json:"reporter_email"`
}

func (s *Server) handleReportItem(c echo.Context) error {
	var req reportItemRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request"})
	}

	if strings.TrimSpace(req.Title) == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Title is required"})
	}

	status := models.ParseStatus(req.Status)
	if status != models.StatusLost && status != models.StatusFound {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Status must be lost or found"})
	}

	if req.Category != "" && !s.Registry.Valid(req.Category) {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Unknown category"})
	}

	item := s.Catalog.Add(models.Item{
		Title:         strings.TrimSpace(req.Title),
		Description:   strings.TrimSpace(req.Description),
		Category:      req.Category,
		Location:      strings.TrimSpace(req.Location),
		Date:          strings.TrimSpace(req.Date),
		Status:        status,
		ReporterName:  strings.TrimSpace(req.ReporterName),
		ReporterEmail: strings.TrimSpace(req.ReporterEmail),
	})

	return c.JSON(http.StatusCreated, item)
}

func (s *Server) handleGetItem(c echo.Context) error {
	item, err := s.Catalog.Get(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Not found"})
	}
	return c.JSON(http.StatusOK, item)
}

type matchesResponse struct {
	TargetID  string        `json:"target_id,omitempty"`
	Threshold float64       `json:"threshold"`
	Total     int           `json:"total"`
	Matches   []match.Match `json:"matches"`
}

func (s *Server) handleGetItemMatches(c echo.Context) error {
	item, err := s.Catalog.Get(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Not found"})
	}

	if !item.Status.Matchable() {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Item is not matchable in its current status"})
	}

	threshold := uiThreshold
	if raw := c.QueryParam("threshold"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || v < 0 || v > 1 {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "Threshold must be in [0,1]"})
		}
		threshold = v
	}

	matches := match.FindPotentialMatches(item, s.Catalog.All(), item.Status, threshold)
	if matches == nil {
		matches = []match.Match{}
	}

	return c.JSON(http.StatusOK, matchesResponse{
		TargetID:  item.ID,
		Threshold: threshold,
		Total:     len(matches),
		Matches:   matches,
	})
}

type adHocMatchRequest struct {
	Target    models.Item   `json:"target"`
	Pool      []models.Item `json:"pool"`
	Threshold *float64      `json:"threshold"`
}

// handleAdHocMatch scores a caller-supplied target against a caller-supplied
// pool. Nothing is stored; results live only in the response.
func (s *Server) handleAdHocMatch(c echo.Context) error {
	var req adHocMatchRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request"})
	}

	if !req.Target.Status.Matchable() {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Target status must be lost or found"})
	}

	threshold := match.DefaultThreshold
	if req.Threshold != nil {
		if *req.Threshold < 0 || *req.Threshold > 1 {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "Threshold must be in [0,1]"})
		}
		threshold = *req.Threshold
	}

	matches := match.FindPotentialMatches(req.Target, req.Pool, req.Target.Status, threshold)
	if matches == nil {
		matches = []match.Match{}
	}

	return c.JSON(http.StatusOK, matchesResponse{
		TargetID:  req.Target.ID,
		Threshold: threshold,
		Total:     len(matches),
		Matches:   matches,
	})
}

func (s *Server) handleGetStats(c echo.Context) error {
	statusCounts := s.Catalog.StatusCounts()

	return c.JSON(http.StatusOK, map[string]interface{}{
		"total":       s.Catalog.Len(),
		"by_status":   statusCounts,
		"by_category": s.Catalog.CategoryCounts(),
		"matchable":   statusCounts[models.StatusLost] + statusCounts[models.StatusFound],
	})
}

func (s *Server) Start(port string) error {
	return s.Echo.Start(":" + port)
}
