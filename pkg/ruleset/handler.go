package ruleset

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/pastrylab/equilibra/pkg/defaults"
	"github.com/pastrylab/equilibra/pkg/errors"
	"github.com/pastrylab/equilibra/pkg/serializer"
	"github.com/pastrylab/equilibra/pkg/server"
)

// CategoriesRoute is the base path for category browsing.
const CategoriesRoute = "/v1/categories"

// CategoryList is the response body for category listings.
type CategoryList struct {
	Count      int         `json:"count"`
	Categories []*Category `json:"categories"`
}

// HandleCategories serves GET /v1/categories and GET /v1/categories/{name}.
func (rs *Ruleset) HandleCategories(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		server.WriteError(w, r, http.StatusMethodNotAllowed, errors.ErrCodeMethodNotAllowed,
			"Method not allowed", false, map[string]any{
				"method": r.Method,
			})
		return
	}

	name := strings.Trim(strings.TrimPrefix(r.URL.Path, CategoriesRoute), "/")

	if name == "" {
		w.Header().Set("Cache-Control", cacheControlValue())
		serializer.RespondJSON(w, http.StatusOK, CategoryList{
			Count:      rs.Len(),
			Categories: rs.ListAll(),
		})
		return
	}

	cat, err := rs.Lookup(name)
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "Failed to look up category", nil)
		return
	}

	w.Header().Set("Cache-Control", cacheControlValue())
	serializer.RespondJSON(w, http.StatusOK, cat)
}

func cacheControlValue() string {
	return fmt.Sprintf("public, max-age=%d", int(defaults.CatalogCacheTTL.Seconds()))
}
