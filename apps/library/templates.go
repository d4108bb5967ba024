package library

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/xdoubleu/essentia/v2/pkg/communication/httptools"
	"github.com/xdoubleu/essentia/v2/pkg/contexttools"
	"github.com/xdoubleu/essentia/v2/pkg/parse"
	tpltools "github.com/xdoubleu/essentia/v2/pkg/tpl"
	"readinglog.xdoubleu.com/apps/library/internal/dtos"
	"readinglog.xdoubleu.com/apps/library/internal/models"
	"readinglog.xdoubleu.com/internal/constants"
	"readinglog.xdoubleu.com/internal/screen"
	sharedmodels "readinglog.xdoubleu.com/internal/models"
)

func (app *Library) templateRoutes(prefix string, mux *http.ServeMux) {
	mux.HandleFunc(
		fmt.Sprintf("GET /%s/{$}", prefix),
		app.Services.Auth.TemplateAccess(app.rootHandler),
	)
	mux.HandleFunc(
		fmt.Sprintf("GET /%s/filter/{status}", prefix),
		app.Services.Auth.TemplateAccess(app.filterHandler),
	)
}

func (app *Library) rootHandler(w http.ResponseWriter, r *http.Request) {
	http.Redirect(
		w,
		r,
		fmt.Sprintf("/%s/filter/%s", app.GetName(), app.Services.Library.Filter().Slug()),
		http.StatusSeeOther,
	)
}

type LibraryTemplateData struct {
	User    sharedmodels.User
	Filters []models.Filter
	Current models.Filter
	State   screen.State[models.Book]
	Import  bool
}

func (app *Library) filterHandler(w http.ResponseWriter, r *http.Request) {
	status, err := parse.URLParam[string](r, "status", nil)
	if err != nil {
		panic(err)
	}

	user := contexttools.GetValue[sharedmodels.User](
		r.Context(),
		constants.UserContextKey,
	)
	if user == nil {
		panic(errors.New("not signed in"))
	}

	filterDto := dtos.FilterDto{Status: status}
	if ok, errs := filterDto.Validate(); !ok {
		httptools.FailedValidationResponse(w, r, errs)
		return
	}

	// a failed read is part of the rendered state
	_ = app.Services.Library.SelectFilter(r.Context(), filterDto.Filter())

	tpltools.RenderWithPanic(app.tpl, w, "library.html", LibraryTemplateData{
		User:    *user,
		Filters: models.Filters,
		Current: app.Services.Library.Filter(),
		State:   app.Services.Library.State(),
		Import:  app.Services.Goodreads.Enabled(),
	})
}
