package router

import (
	"net/http"
	"os"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/logger"
	"github.com/gin-contrib/pprof"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	docs "github.com/rkas-pintar/backend/api"
	"github.com/rkas-pintar/backend/internal/controllers/healthz"
	v1 "github.com/rkas-pintar/backend/internal/controllers/v1"
	"github.com/rkas-pintar/backend/internal/httputil"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// This is set at build time, see Makefile.
var version = "0.0.0"

type httpError struct {
	Error string `json:"error" example:"This HTTP method is not allowed for the endpoint you called"`
}

// Config sets up the router and all middlewares. The returned teardown
// function unregisters the Prometheus metrics so that the router can be
// set up repeatedly, which the tests do.
func Config() (*gin.Engine, func(), error) {
	// Set up the router and middlewares
	r := gin.New()

	// Don’t process X-Forwarded-For header as we do not do anything with
	// client IPs
	r.ForwardedByClientIP = false

	// Send a HTTP 405 (Method not allowed) for all paths where there is
	// a handler, but not for the specific method used
	r.HandleMethodNotAllowed = true

	r.Use(gin.Recovery())
	r.Use(requestid.New())
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, httpError{
			Error: "This HTTP method is not allowed for the endpoint you called",
		})
	})
	r.Use(logger.SetLogger(
		logger.WithDefaultLevel(zerolog.InfoLevel),
		logger.WithClientErrorLevel(zerolog.InfoLevel),
		logger.WithServerErrorLevel(zerolog.ErrorLevel),
		logger.WithLogger(func(c *gin.Context, logger zerolog.Logger) zerolog.Logger {
			return logger.With().
				Str("request-id", requestid.Get(c)).
				Str("method", c.Request.Method).
				Str("path", c.Request.URL.Path).
				Int("status", c.Writer.Status()).
				Int("size", c.Writer.Size()).
				Str("user-agent", c.Request.UserAgent()).
				Logger()
		})))

	// CORS settings
	allowOrigins, ok := os.LookupEnv("CORS_ALLOW_ORIGINS")
	if ok {
		log.Debug().Str("CORS Allowed Origins", allowOrigins).Msg("Router")

		r.Use(cors.New(cors.Config{
			AllowOrigins:     strings.Fields(allowOrigins),
			AllowMethods:     []string{"OPTIONS", "GET", "POST", "PUT", "PATCH", "DELETE"},
			AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type"},
			AllowCredentials: true,
		}))
	}

	// Prometheus metrics
	teardown := func() {}
	enableMetrics, ok := os.LookupEnv("ENABLE_METRICS")
	if ok && enableMetrics == "true" {
		if err := registerPrometheusMetrics(); err != nil {
			return nil, teardown, err
		}
		teardown = func() { unregisterPrometheusMetrics() }

		r.Use(MetricsMiddleware())
		r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	// Disable the gin debug route printing as it clutters logs (and test logs)
	gin.DebugPrintRouteFunc = func(httpMethod, absolutePath, handlerName string, numHandlers int) {}

	// Don’t trust any proxy. We do not process any client IPs,
	// therefore we don’t need to trust anyone here.
	_ = r.SetTrustedProxies([]string{})

	log.Info().Str("version", version).Msg("Router")

	docs.SwaggerInfo.Title = "RKAS Pintar"
	docs.SwaggerInfo.Version = version
	docs.SwaggerInfo.Description = "The backend for RKAS Pintar, BOSP budget planning and realization bookkeeping for elementary schools."

	return r, teardown, nil
}

// AttachRoutes attaches the API routes to the router group that is passed in
// Separating this from Config() allows us to attach it to different
// paths for different use cases, e.g. the standalone version.
func AttachRoutes(group *gin.RouterGroup) {
	group.GET("", GetRoot)
	group.OPTIONS("", OptionsRoot)
	group.GET("/version", GetVersion)
	group.OPTIONS("/version", OptionsVersion)

	// pprof performance profiles
	enablePprof, ok := os.LookupEnv("ENABLE_PPROF")
	if ok && enablePprof == "true" {
		pprof.RouteRegister(group, "debug/pprof")
	}

	group.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	healthz.RegisterRoutes(group.Group("/healthz"))

	// API v1 setup
	apiV1 := group.Group("/v1")
	{
		apiV1.GET("", GetV1)
		apiV1.DELETE("", v1.Cleanup)
		apiV1.OPTIONS("", OptionsV1)
	}

	v1.RegisterBudgetLineRoutes(apiV1.Group("/budget-lines"))
	v1.RegisterBankStatementRoutes(apiV1.Group("/bank-statements"))
	v1.RegisterSchoolProfileRoutes(apiV1.Group("/school-profile"))
	v1.RegisterAccountRuleRoutes(apiV1.Group("/account-rules"))
	v1.RegisterMonthRoutes(apiV1.Group("/months"))
	v1.RegisterReportRoutes(apiV1.Group("/reports"))
	v1.RegisterDocumentRoutes(apiV1.Group("/documents"))
	v1.RegisterSuggestionRoutes(apiV1.Group("/suggestions"))
	v1.RegisterExportRoutes(apiV1.Group("/export"), version)
}

type RootResponse struct {
	Links RootLinks `json:"links"`
}

type RootLinks struct {
	Docs    string `json:"docs" example:"https://example.com/api/docs/index.html"` // Swagger API documentation
	Healthz string `json:"healthz" example:"https://example.com/api/healthz"`      // Healthz endpoint
	Version string `json:"version" example:"https://example.com/api/version"`      // Endpoint returning the version of the backend
	V1      string `json:"v1" example:"https://example.com/api/v1"`                // List endpoint for all v1 endpoints
}

// GetRoot returns the link list for the API root
//
//	@Summary		API root
//	@Description	Entrypoint for the API, listing all endpoints
//	@Tags			General
//	@Success		200	{object}	RootResponse
//	@Router			/ [get]
func GetRoot(c *gin.Context) {
	url := httputil.RequestHost(c)

	c.JSON(http.StatusOK, RootResponse{
		Links: RootLinks{
			Docs:    url + "/docs/index.html",
			Healthz: url + "/healthz",
			Version: url + "/version",
			V1:      url + "/v1",
		},
	})
}

type VersionResponse struct {
	Data VersionObject `json:"data"` // Data object for the version endpoint
}
type VersionObject struct {
	Version string `json:"version" example:"1.1.0"` // the running version of the RKAS Pintar backend
}

// GetVersion returns the API version object
//
//	@Summary		API version
//	@Description	Returns the software version of the API
//	@Tags			General
//	@Success		200	{object}	VersionResponse
//	@Router			/version [get]
func GetVersion(c *gin.Context) {
	c.JSON(http.StatusOK, VersionResponse{
		Data: VersionObject{
			Version: version,
		},
	})
}

// OptionsRoot returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			General
//	@Success		204
//	@Router			/ [options]
func OptionsRoot(c *gin.Context) {
	httputil.OptionsGet(c)
}

// OptionsVersion returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			General
//	@Success		204
//	@Router			/version [options]
func OptionsVersion(c *gin.Context) {
	httputil.OptionsGet(c)
}

type V1Response struct {
	Links V1Links `json:"links"` // Links for the v1 API
}

type V1Links struct {
	BudgetLines    string `json:"budgetLines" example:"https://example.com/api/v1/budget-lines"`       // URL of budget line list endpoint
	BankStatements string `json:"bankStatements" example:"https://example.com/api/v1/bank-statements"` // URL of bank statement list endpoint
	SchoolProfile  string `json:"schoolProfile" example:"https://example.com/api/v1/school-profile"`   // URL of the school profile endpoint
	AccountRules   string `json:"accountRules" example:"https://example.com/api/v1/account-rules"`     // URL of account rule list endpoint
	Months         string `json:"months" example:"https://example.com/api/v1/months"`                  // URL of the month view endpoint
	Reports        string `json:"reports" example:"https://example.com/api/v1/reports"`                // URL of the report endpoints
	Documents      string `json:"documents" example:"https://example.com/api/v1/documents"`            // URL of the document snapshot endpoint
	Suggestions    string `json:"suggestions" example:"https://example.com/api/v1/suggestions"`        // URL of the suggestion endpoints
	Export         string `json:"export" example:"https://example.com/api/v1/export"`                  // URL of the export endpoint
}

// GetV1 returns the link list for v1
//
//	@Summary		v1 API
//	@Description	Returns general information about the v1 API
//	@Tags			v1
//	@Success		200	{object}	V1Response
//	@Router			/v1 [get]
func GetV1(c *gin.Context) {
	url := httputil.RequestPathV1(c)

	c.JSON(http.StatusOK, V1Response{
		Links: V1Links{
			BudgetLines:    url + "/budget-lines",
			BankStatements: url + "/bank-statements",
			SchoolProfile:  url + "/school-profile",
			AccountRules:   url + "/account-rules",
			Months:         url + "/months",
			Reports:        url + "/reports",
			Documents:      url + "/documents",
			Suggestions:    url + "/suggestions",
			Export:         url + "/export",
		},
	})
}

// OptionsV1 returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			v1
//	@Success		204
//	@Router			/v1 [options]
func OptionsV1(c *gin.Context) {
	httputil.OptionsGetDelete(c)
}
