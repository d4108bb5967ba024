package community_test

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xdoubleu/essentia/v2/pkg/test"
	"readinglog.xdoubleu.com/apps/community/internal/dtos"
)

func deletePost(t *testing.T, id string, confirm bool) *http.Response {
	t.Helper()

	tReq := test.CreateRequestTester(
		getRoutes(),
		http.MethodPost,
		fmt.Sprintf("/%s/api/posts/%s/delete", testApp.GetName(), id),
	)
	tReq.SetFollowRedirect(false)
	tReq.AddCookie(&accessToken)

	tReq.SetContentType(test.FormContentType)
	//nolint:exhaustruct //id comes from the path
	tReq.SetData(dtos.UnshareDto{Confirm: confirm})

	return tReq.Do(t)
}

func TestDeletePostCanceled(t *testing.T) {
	rs := deletePost(t, keptNoteID, false)
	assert.Equal(t, http.StatusSeeOther, rs.StatusCode)
	assert.NotContains(t, store.UnshareCalls(), keptNoteID)
}

func TestDeletePostConfirmed(t *testing.T) {
	rs := deletePost(t, unsharedNoteID, true)
	assert.Equal(t, http.StatusSeeOther, rs.StatusCode)
	assert.Contains(t, store.UnshareCalls(), unsharedNoteID)

	for _, note := range testApp.Services.Feed.State().Items {
		assert.NotEqual(t, unsharedNoteID, note.ID)
	}
}

func TestDeletePostInvalidID(t *testing.T) {
	rs := deletePost(t, "abc", true)
	assert.GreaterOrEqual(t, rs.StatusCode, http.StatusBadRequest)
	assert.Less(t, rs.StatusCode, http.StatusInternalServerError)
	assert.NotContains(t, store.UnshareCalls(), "abc")
}

func TestDeletePostFailureIsShownOnFeed(t *testing.T) {
	store.SetUnshareError(errors.New("connection reset"))
	defer store.SetUnshareError(nil)

	rs := deletePost(t, keptNoteID, true)
	assert.Equal(t, http.StatusSeeOther, rs.StatusCode)

	location := rs.Header.Get("Location")
	assert.Contains(t, location, "Failed to delete post")
	assert.NotContains(t, location, "connection reset")

	tReq := test.CreateRequestTester(
		getRoutes(),
		http.MethodGet,
		fmt.Sprintf("/%s/", testApp.GetName()),
	)
	tReq.AddCookie(&accessToken)

	rs = tReq.Do(t)
	require.Equal(t, http.StatusOK, rs.StatusCode)

	body, err := io.ReadAll(rs.Body)
	require.Nil(t, err)
	assert.Contains(t, string(body), "Failed to delete post")
	assert.Contains(t, string(body), "Fear is the mind-killer.")
}
