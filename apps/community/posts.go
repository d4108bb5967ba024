package community

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/xdoubleu/essentia/v2/pkg/communication/httptools"
	"github.com/xdoubleu/essentia/v2/pkg/parse"
	"readinglog.xdoubleu.com/apps/community/internal/dtos"
	"readinglog.xdoubleu.com/apps/community/internal/services"
)

func (app *Community) postsRoutes(prefix string, mux *http.ServeMux) {
	mux.HandleFunc(
		fmt.Sprintf("POST %s/posts/{id}/delete", prefix),
		app.Services.Auth.Access(app.deletePostHandler),
	)
}

func (app *Community) deletePostHandler(w http.ResponseWriter, r *http.Request) {
	id, err := parse.URLParam[string](r, "id", nil)
	if err != nil {
		panic(err)
	}

	feedURL := fmt.Sprintf("/%s/", app.GetName())

	var unshareDto dtos.UnshareDto

	err = httptools.ReadForm(r, &unshareDto)
	if err != nil {
		httptools.RedirectWithError(w, r, feedURL, err)
		return
	}

	unshareDto.ID = id
	if ok, errs := unshareDto.Validate(); !ok {
		httptools.FailedValidationResponse(w, r, errs)
		return
	}

	err = app.Services.Feed.Unshare(
		r.Context(),
		unshareDto.ID,
		func(_ context.Context, _ services.Prompt) bool {
			return unshareDto.Confirm
		},
	)
	if err != nil {
		if !errors.Is(err, services.ErrUnshareInFlight) {
			err = errors.New(services.FailedToDeletePost)
		}
		httptools.RedirectWithError(w, r, feedURL, err)
		return
	}

	http.Redirect(w, r, feedURL, http.StatusSeeOther)
}
