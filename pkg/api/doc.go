// Package api provides the HTTP API layer for the equilibra analysis service.
//
// This package acts as a thin wrapper around the reusable pkg/server package,
// configuring it with application-specific routes and handlers. It exposes
// recipe analysis plus read-only browsing of the ingredient catalog and the
// category ruleset. Recipe file editing is a CLI concern; the API treats every
// posted recipe as a self-contained document.
//
// # Usage
//
// To start the API server:
//
//	package main
//
//	import (
//	    "log"
//	    "github.com/pastrylab/equilibra/pkg/api"
//	)
//
//	func main() {
//	    if err := api.Serve(); err != nil {
//	        log.Fatalf("server error: %v", err)
//	    }
//	}
//
// # Architecture
//
// The API layer is responsible for:
//   - Configuring structured logging with application name and version
//   - Loading the ingredient catalog and category ruleset (embedded or
//     from files named through the environment)
//   - Setting up route handlers
//   - Delegating server lifecycle management to pkg/server
//
// The pkg/server package handles:
//   - HTTP server setup and graceful shutdown
//   - Middleware (rate limiting, logging, metrics, panic recovery)
//   - Health and readiness endpoints
//   - Prometheus metrics
//
// # Endpoints
//
// Application Endpoints (with rate limiting):
//   - POST /v1/analyze             - Analyze a recipe document (JSON/YAML body)
//   - GET  /v1/ingredients         - List catalog ingredients in collated order
//   - GET  /v1/ingredients/{name}  - Look up one ingredient
//   - GET  /v1/categories          - List balance categories
//   - GET  /v1/categories/{name}   - Look up one category
//
// System Endpoints (no rate limiting):
//   - GET /health  - Health check (liveness probe)
//   - GET /ready   - Readiness check
//   - GET /metrics - Prometheus metrics
//
// # Request Body (POST /v1/analyze)
//
// POST requests accept a Recipe resource in the request body.
// Supports both JSON (application/json) and YAML (application/x-yaml) formats.
//
// Example request body:
//
//	kind: Recipe
//	apiVersion: equilibra.dev/v1alpha1
//	metadata:
//	  name: ganache-base
//	spec:
//	  name: ganache-base
//	  category: ganache de moldeo
//	  items:
//	    - ingredient: nata 35% MG
//	      quantity: 500
//	    - ingredient: chocolate negro 65%
//	      quantity: 400
//
// Example curl command:
//
//	curl -X POST http://localhost:8080/v1/analyze \
//	  -H "Content-Type: application/yaml" \
//	  -d @recipe.yaml
//
// The response is an AnalysisReport with the per-ingredient composition
// breakdown and, when the recipe names a category, the balance verdicts.
//
// # Configuration
//
// The server is configured via environment variables:
//   - PORT: HTTP server port (default: 8080)
//   - LOG_LEVEL: Logging level (debug, info, warn, error)
//   - EQUILIBRA_CATALOG: path to an ingredient catalog file
//   - EQUILIBRA_RULES: path to a category ruleset file
//   - EQUILIBRA_DATA_DIR: directory holding ingredients.yaml / categories.yaml
//
// Version information is set at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/pastrylab/equilibra/pkg/api.version=1.0.0'"
package api
