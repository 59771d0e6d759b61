package analysis

import (
	"log/slog"
	"net/http"

	"github.com/pastrylab/equilibra/pkg/errors"
	"github.com/pastrylab/equilibra/pkg/recipe"
	"github.com/pastrylab/equilibra/pkg/serializer"
	"github.com/pastrylab/equilibra/pkg/server"
)

// AnalyzeRoute is the path for recipe analysis requests.
const AnalyzeRoute = "/v1/analyze"

// HandleAnalyze serves POST /v1/analyze: a recipe document in the request
// body, an analysis report in the response. The body may be JSON or YAML,
// selected through the Content-Type header. Errors come back in the
// structured format shared by the rest of the API surface.
func (a *Analyzer) HandleAnalyze(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		server.WriteError(w, r, http.StatusMethodNotAllowed, errors.ErrCodeMethodNotAllowed,
			"Method not allowed", false, map[string]any{
				"method":  r.Method,
				"allowed": []string{"POST"},
			})
		return
	}

	defer func() {
		if r.Body != nil {
			r.Body.Close()
		}
	}()

	rec, err := recipe.FromBody(r.Body, r.Header.Get("Content-Type"))
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "Invalid recipe document", nil)
		return
	}

	report, err := a.Analyze(rec)
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "Failed to analyze recipe", map[string]any{
			"recipe": rec.Name,
		})
		return
	}

	slog.Debug("recipe analyzed",
		"recipe", rec.Name,
		"category", rec.Category,
		"balanced", report.Balanced(),
	)

	// Reports depend on the posted body, so responses are not cacheable
	w.Header().Set("Cache-Control", "no-store")

	serializer.RespondJSON(w, http.StatusOK, report)
}
