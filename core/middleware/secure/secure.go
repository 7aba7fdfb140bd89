package secure

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
)

const (
	// HSTSMaxAge is two years, with subdomains included.
	HSTSMaxAge = 63072000
	// CORSMaxAge is how long browsers may cache a preflight answer, in seconds.
	CORSMaxAge = 3600
)

var (
	// AllowedMethods lists the methods announced to cross-origin callers.
	AllowedMethods = []string{
		fiber.MethodGet,
		fiber.MethodPost,
		fiber.MethodPut,
		fiber.MethodDelete,
		fiber.MethodOptions,
	}
	// AllowedHeaders lists the request headers cross-origin callers may send.
	AllowedHeaders = []string{
		fiber.HeaderAuthorization,
		fiber.HeaderAccept,
		fiber.HeaderContentType,
	}
)

// Headers sets the security response headers.
//
// HSTS is only emitted on HTTPS requests, which is every request the
// server accepts.
func Headers() fiber.Handler {
	return helmet.New(helmet.Config{
		XSSProtection:             "0",
		ContentTypeNosniff:        "nosniff",
		XFrameOptions:             "DENY",
		HSTSMaxAge:                HSTSMaxAge,
		ReferrerPolicy:            "no-referrer",
		CrossOriginEmbedderPolicy: "unsafe-none",
		CrossOriginOpenerPolicy:   "same-origin",
		CrossOriginResourcePolicy: "cross-origin",
		OriginAgentCluster:        "?1",
		XDNSPrefetchControl:       "off",
		XDownloadOptions:          "noopen",
		XPermittedCrossDomain:     "none",
	})
}

// CORS allows any origin with credentials.
//
// A literal "*" cannot be combined with credentials, so the request origin
// is echoed back instead.
func CORS() fiber.Handler {
	return cors.New(cors.Config{
		AllowOriginsFunc: func(string) bool { return true },
		AllowMethods:     strings.Join(AllowedMethods, ","),
		AllowHeaders:     strings.Join(AllowedHeaders, ","),
		AllowCredentials: true,
		MaxAge:           CORSMaxAge,
	})
}
