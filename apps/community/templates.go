package community

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/xdoubleu/essentia/v2/pkg/communication/httptools"
	"github.com/xdoubleu/essentia/v2/pkg/contexttools"
	"github.com/xdoubleu/essentia/v2/pkg/parse"
	tpltools "github.com/xdoubleu/essentia/v2/pkg/tpl"
	"readinglog.xdoubleu.com/apps/community/internal/models"
	"readinglog.xdoubleu.com/apps/community/internal/services"
	"readinglog.xdoubleu.com/internal/constants"
	"readinglog.xdoubleu.com/internal/screen"
	sharedmodels "readinglog.xdoubleu.com/internal/models"
)

func (app *Community) templateRoutes(prefix string, mux *http.ServeMux) {
	mux.HandleFunc(
		fmt.Sprintf("GET /%s/{$}", prefix),
		app.Services.Auth.TemplateAccess(app.feedHandler),
	)
	mux.HandleFunc(
		fmt.Sprintf("GET /%s/posts/{id}/delete", prefix),
		app.Services.Auth.TemplateAccess(app.confirmDeleteHandler),
	)
}

type FeedTemplateData struct {
	User  sharedmodels.User
	State screen.State[models.SharedNote]
	// Flash is the error a redirect back to the feed carried.
	Flash string
}

func (app *Community) feedHandler(w http.ResponseWriter, r *http.Request) {
	user := contexttools.GetValue[sharedmodels.User](
		r.Context(),
		constants.UserContextKey,
	)
	if user == nil {
		panic(errors.New("not signed in"))
	}

	flash, err := parse.QueryParam[string](r, "error", "", parse.String)
	if err != nil {
		panic(err)
	}

	// a failed read is part of the rendered state
	_ = app.Services.Feed.Load(r.Context())

	tpltools.RenderWithPanic(app.tpl, w, "feed.html", FeedTemplateData{
		User:  *user,
		State: app.Services.Feed.State(),
		Flash: flash,
	})
}

type ConfirmTemplateData struct {
	Prompt services.Prompt
	Note   *models.SharedNote
	ID     string
	Busy   bool
}

func (app *Community) confirmDeleteHandler(w http.ResponseWriter, r *http.Request) {
	id, err := parse.URLParam[string](r, "id", nil)
	if err != nil {
		panic(err)
	}

	if _, err = uuid.Parse(id); err != nil {
		httptools.FailedValidationResponse(
			w,
			r,
			map[string]string{"id": "must be a valid uuid"},
		)
		return
	}

	state := app.Services.Feed.State()

	var note *models.SharedNote
	for i := range state.Items {
		if state.Items[i].ID == id {
			note = &state.Items[i]
			break
		}
	}

	tpltools.RenderWithPanic(app.tpl, w, "confirm.html", ConfirmTemplateData{
		Prompt: services.DeletePrompt,
		Note:   note,
		ID:     id,
		Busy:   state.IsBusy(id),
	})
}
