package library

import (
	"fmt"
	"net/http"

	"readinglog.xdoubleu.com/apps/library/internal/jobs"
)

func (app *Library) stateRoutes(prefix string, mux *http.ServeMux) {
	mux.HandleFunc(
		fmt.Sprintf("GET %s/state", prefix),
		app.Services.WebSocket.Handler(),
	)
	mux.HandleFunc(
		fmt.Sprintf("GET %s/import", prefix),
		app.Services.Auth.Access(app.importHandler),
	)
}

func (app *Library) importHandler(w http.ResponseWriter, r *http.Request) {
	_, lastRunTime := app.jobQueue.FetchState(jobs.GoodreadsJobID)
	app.Services.WebSocket.UpdateState(jobs.GoodreadsJobID, true, lastRunTime)

	app.jobQueue.ForceRun(jobs.GoodreadsJobID)

	http.Redirect(w, r, fmt.Sprintf("/%s/", app.GetName()), http.StatusSeeOther)
}
