package catalog

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/pastrylab/equilibra/pkg/defaults"
	"github.com/pastrylab/equilibra/pkg/errors"
	"github.com/pastrylab/equilibra/pkg/serializer"
	"github.com/pastrylab/equilibra/pkg/server"
)

// IngredientsRoute is the base path for ingredient browsing.
const IngredientsRoute = "/v1/ingredients"

// IngredientList is the response body for ingredient listings.
type IngredientList struct {
	Count       int           `json:"count"`
	Ingredients []*Ingredient `json:"ingredients"`
}

// HandleIngredients serves GET /v1/ingredients and GET /v1/ingredients/{name}.
// Listings come back in collated order; unknown names return a structured
// not-found error.
func (c *Catalog) HandleIngredients(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		server.WriteError(w, r, http.StatusMethodNotAllowed, errors.ErrCodeMethodNotAllowed,
			"Method not allowed", false, map[string]any{
				"method": r.Method,
			})
		return
	}

	// The path after the route base selects a single ingredient.
	name := strings.Trim(strings.TrimPrefix(r.URL.Path, IngredientsRoute), "/")

	if name == "" {
		w.Header().Set("Cache-Control", cacheControlValue())
		serializer.RespondJSON(w, http.StatusOK, IngredientList{
			Count:       c.Len(),
			Ingredients: c.ListAll(),
		})
		return
	}

	ing, err := c.Lookup(name)
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "Failed to look up ingredient", nil)
		return
	}

	w.Header().Set("Cache-Control", cacheControlValue())
	serializer.RespondJSON(w, http.StatusOK, ing)
}

func cacheControlValue() string {
	return fmt.Sprintf("public, max-age=%d", int(defaults.CatalogCacheTTL.Seconds()))
}
