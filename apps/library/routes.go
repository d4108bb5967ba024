package library

import (
	"fmt"
	"net/http"
)

func (app *Library) apiRoutes(prefix string, mux *http.ServeMux) {
	apiPrefix := fmt.Sprintf("/%s/api", prefix)
	app.stateRoutes(apiPrefix, mux)
}

func (app *Library) Routes(prefix string, mux *http.ServeMux) {
	app.templateRoutes(prefix, mux)
	app.apiRoutes(prefix, mux)
}
