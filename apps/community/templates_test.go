package community_test

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xdoubleu/essentia/v2/pkg/test"
)

func TestFeed(t *testing.T) {
	tReq := test.CreateRequestTester(
		getRoutes(),
		http.MethodGet,
		fmt.Sprintf("/%s/", testApp.GetName()),
	)
	tReq.AddCookie(&accessToken)

	rs := tReq.Do(t)
	require.Equal(t, http.StatusOK, rs.StatusCode)

	body, err := io.ReadAll(rs.Body)
	require.Nil(t, err)
	assert.Contains(t, string(body), "Fear is the mind-killer.")
	assert.Contains(t, string(body), "5m")
}

func TestConfirmDelete(t *testing.T) {
	tReq := test.CreateRequestTester(
		getRoutes(),
		http.MethodGet,
		fmt.Sprintf("/%s/posts/%s/delete", testApp.GetName(), keptNoteID),
	)
	tReq.AddCookie(&accessToken)

	rs := tReq.Do(t)
	require.Equal(t, http.StatusOK, rs.StatusCode)

	body, err := io.ReadAll(rs.Body)
	require.Nil(t, err)
	assert.Contains(t, string(body), "Delete Post")
	assert.Contains(t, string(body), "Cancel")
	assert.Contains(t, string(body), ">Delete<")
}

func TestConfirmDeleteInvalidID(t *testing.T) {
	tReq := test.CreateRequestTester(
		getRoutes(),
		http.MethodGet,
		fmt.Sprintf("/%s/posts/abc/delete", testApp.GetName()),
	)
	tReq.AddCookie(&accessToken)

	rs := tReq.Do(t)
	assert.GreaterOrEqual(t, rs.StatusCode, http.StatusBadRequest)
	assert.Less(t, rs.StatusCode, http.StatusInternalServerError)
}

func TestFeedShowsRedirectError(t *testing.T) {
	tReq := test.CreateRequestTester(
		getRoutes(),
		http.MethodGet,
		fmt.Sprintf("/%s/", testApp.GetName()),
	)
	tReq.AddCookie(&accessToken)
	tReq.SetQuery(url.Values{"error": {"note is already being unshared"}})

	rs := tReq.Do(t)
	require.Equal(t, http.StatusOK, rs.StatusCode)

	body, err := io.ReadAll(rs.Body)
	require.Nil(t, err)
	assert.Contains(t, string(body), "note is already being unshared")
}
