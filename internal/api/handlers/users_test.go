package handlers_test

import (
	"net/http"
	"testing"

	"github.com/myflix/myflix-api/internal/service"
	"github.com/myflix/myflix-api/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserHandler_Signup(t *testing.T) {
	tests := []struct {
		name           string
		request        map[string]string
		expectedStatus int
		checkResponse  func(*testing.T, *http.Response)
	}{
		{
			name: "successful signup",
			request: map[string]string{
				"userName": "alice123",
				"email":    "a@b.com",
				"password": "p",
				"birthday": "2000-01-01",
			},
			expectedStatus: http.StatusCreated,
			checkResponse: func(t *testing.T, resp *http.Response) {
				var user map[string]interface{}
				testutil.AssertJSONResponse(t, resp, &user)
				assert.Equal(t, "alice123", user["userName"])
				assert.NotContains(t, user, "password")
			},
		},
		{
			name: "user name too short",
			request: map[string]string{
				"userName": "bob",
				"email":    "bob@example.com",
				"password": "password",
			},
			expectedStatus: http.StatusUnprocessableEntity,
			checkResponse: func(t *testing.T, resp *http.Response) {
				var result struct {
					Errors []service.FieldError `json:"errors"`
				}
				testutil.AssertJSONResponse(t, resp, &result)
				require.NotEmpty(t, result.Errors)
				assert.Equal(t, "userName", result.Errors[0].Field)
			},
		},
		{
			name: "missing email",
			request: map[string]string{
				"userName": "alice123",
				"password": "password",
			},
			expectedStatus: http.StatusUnprocessableEntity,
		},
		{
			name:           "empty request body",
			request:        map[string]string{},
			expectedStatus: http.StatusUnprocessableEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := testutil.NewTestServer(t)

			resp := ts.Do(t, http.MethodPost, "/users", "", tt.request)
			defer resp.Body.Close()

			assert.Equal(t, tt.expectedStatus, resp.StatusCode)

			if tt.checkResponse != nil {
				tt.checkResponse(t, resp)
			}
		})
	}
}

func TestUserHandler_SignupDuplicate(t *testing.T) {
	ts := testutil.NewTestServer(t)

	request := map[string]string{
		"userName": "alice123",
		"email":    "a@b.com",
		"password": "p",
	}

	first := ts.Do(t, http.MethodPost, "/users", "", request)
	first.Body.Close()
	require.Equal(t, http.StatusCreated, first.StatusCode)

	second := ts.Do(t, http.MethodPost, "/users", "", request)
	defer second.Body.Close()
	testutil.AssertErrorResponse(t, second, http.StatusBadRequest, "already exists")
}

func TestUserHandler_OwnershipEnforced(t *testing.T) {
	ts := testutil.NewTestServer(t)

	alice, alicePassword := testutil.NewUserBuilder().WithUserName("aliceowner").Build(t, ts.Repos.User)
	testutil.NewUserBuilder().WithUserName("bobvictim").Build(t, ts.Repos.User)

	token := ts.Login(t, alice.UserName, alicePassword)

	resp := ts.Do(t, http.MethodDelete, "/users/bobvictim", token, nil)
	defer resp.Body.Close()
	testutil.AssertStatusCode(t, resp, http.StatusForbidden)

	// Bob is untouched
	get := ts.Do(t, http.MethodGet, "/users/aliceowner", token, nil)
	defer get.Body.Close()
	testutil.AssertStatusCode(t, get, http.StatusOK)
}

func TestUserHandler_UpdateAndDelete(t *testing.T) {
	ts := testutil.NewTestServer(t)

	user, password := testutil.NewUserBuilder().WithUserName("updateuser1").Build(t, ts.Repos.User)
	token := ts.Login(t, user.UserName, password)

	update := ts.Do(t, http.MethodPut, "/users/"+user.UserName, token, map[string]string{
		"userName": user.UserName,
		"email":    "fresh@example.com",
		"birthday": "1985-03-14",
	})
	defer update.Body.Close()
	testutil.AssertStatusCode(t, update, http.StatusOK)

	var updated map[string]interface{}
	testutil.AssertJSONResponse(t, update, &updated)
	assert.Equal(t, "fresh@example.com", updated["email"])

	del := ts.Do(t, http.MethodDelete, "/users/"+user.UserName, token, nil)
	defer del.Body.Close()
	testutil.AssertStatusCode(t, del, http.StatusOK)

	// The old token no longer authenticates once the account is gone
	after := ts.Do(t, http.MethodGet, "/movies", token, nil)
	defer after.Body.Close()
	testutil.AssertStatusCode(t, after, http.StatusUnauthorized)
}

func TestUserHandler_Favorites(t *testing.T) {
	ts := testutil.NewTestServer(t)

	user, password := testutil.NewUserBuilder().WithUserName("favowner1").Build(t, ts.Repos.User)
	movie := testutil.NewMovieBuilder().Build(t, ts.Repos.Movie)
	token := ts.Login(t, user.UserName, password)

	path := "/users/" + user.UserName + "/movies/" + movie.ID.Hex()

	// Add twice; the identifier appears exactly once
	for i := 0; i < 2; i++ {
		resp := ts.Do(t, http.MethodPost, path, token, nil)
		var favorites []string
		testutil.AssertJSONResponse(t, resp, &favorites)
		resp.Body.Close()

		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, []string{movie.ID.Hex()}, favorites)
	}

	remove := ts.Do(t, http.MethodDelete, path, token, nil)
	defer remove.Body.Close()

	var favorites []string
	testutil.AssertJSONResponse(t, remove, &favorites)
	assert.Empty(t, favorites)
}

func TestUserHandler_AddFavoriteUnknownMovie(t *testing.T) {
	ts := testutil.NewTestServer(t)

	user, password := testutil.NewUserBuilder().WithUserName("favowner2").Build(t, ts.Repos.User)
	token := ts.Login(t, user.UserName, password)

	resp := ts.Do(t, http.MethodPost, "/users/"+user.UserName+"/movies/62c84d2f9e1f8a3b4c5d6e7f", token, nil)
	defer resp.Body.Close()
	testutil.AssertErrorResponse(t, resp, http.StatusNotFound, "movie not found")
}
