package swagger

import (
	"context"
	"net/http"
	"os"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
	httpSwagger "github.com/swaggo/http-swagger"
)

func Handler() http.Handler {
	return httpSwagger.Handler(
		httpSwagger.URL("/openapi.yml"), // URL to the OpenAPI spec served at root
	)
}

// SpecHandler serves the OpenAPI document, validating it with kin-openapi on
// first load so a broken spec fails loudly instead of rendering garbage.
func SpecHandler(path string) http.HandlerFunc {
	var (
		once    sync.Once
		data    []byte
		loadErr error
	)

	return func(w http.ResponseWriter, r *http.Request) {
		once.Do(func() {
			loader := openapi3.NewLoader()
			doc, err := loader.LoadFromFile(path)
			if err != nil {
				loadErr = err
				return
			}
			if err := doc.Validate(context.Background()); err != nil {
				loadErr = err
				return
			}
			data, loadErr = os.ReadFile(path)
		})

		if loadErr != nil {
			http.Error(w, "openapi spec unavailable", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/yaml")
		w.Write(data)
	}
}
