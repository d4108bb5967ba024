package community

import (
	"fmt"
	"net/http"
)

func (app *Community) apiRoutes(prefix string, mux *http.ServeMux) {
	apiPrefix := fmt.Sprintf("/%s/api", prefix)
	app.postsRoutes(apiPrefix, mux)
	mux.HandleFunc(
		fmt.Sprintf("GET %s/state", apiPrefix),
		app.Services.WebSocket.Handler(),
	)
}

func (app *Community) Routes(prefix string, mux *http.ServeMux) {
	app.templateRoutes(prefix, mux)
	app.apiRoutes(prefix, mux)
}
