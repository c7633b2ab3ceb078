package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/myflix/myflix-api/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthHandler_Login(t *testing.T) {
	ts := testutil.NewTestServer(t)

	user, password := testutil.NewUserBuilder().
		WithUserName("loginuser1").
		WithPassword("correctpassword").
		Build(t, ts.Repos.User)

	tests := []struct {
		name           string
		request        map[string]string
		expectedStatus int
		checkResponse  func(*testing.T, *http.Response)
	}{
		{
			name: "successful login",
			request: map[string]string{
				"userName": user.UserName,
				"password": password,
			},
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, resp *http.Response) {
				var result testutil.LoginResponse
				testutil.AssertJSONResponse(t, resp, &result)
				assert.Equal(t, user.UserName, result.User.UserName)
				assert.NotEmpty(t, result.Token)
			},
		},
		{
			name: "wrong password",
			request: map[string]string{
				"userName": user.UserName,
				"password": "wrongpassword",
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "unknown user",
			request: map[string]string{
				"userName": "nosuchuser",
				"password": password,
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "empty request body",
			request:        map[string]string{},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := ts.Do(t, http.MethodPost, "/login", "", tt.request)
			defer resp.Body.Close()

			assert.Equal(t, tt.expectedStatus, resp.StatusCode)

			if tt.checkResponse != nil {
				tt.checkResponse(t, resp)
			}
		})
	}
}

func TestAuthHandler_LoginFailureShapeIsUniform(t *testing.T) {
	ts := testutil.NewTestServer(t)

	user, _ := testutil.NewUserBuilder().WithUserName("enumuser1").Build(t, ts.Repos.User)

	wrongPassword := ts.Do(t, http.MethodPost, "/login", "", map[string]string{
		"userName": user.UserName,
		"password": "wrong",
	})
	defer wrongPassword.Body.Close()

	unknownUser := ts.Do(t, http.MethodPost, "/login", "", map[string]string{
		"userName": "definitelynotauser",
		"password": "wrong",
	})
	defer unknownUser.Body.Close()

	// Identical status and body for both failure causes
	assert.Equal(t, wrongPassword.StatusCode, unknownUser.StatusCode)
	assert.Equal(t, http.StatusBadRequest, wrongPassword.StatusCode)

	bodyA := testutil.ReadBody(t, wrongPassword)
	bodyB := testutil.ReadBody(t, unknownUser)
	assert.JSONEq(t, bodyA, bodyB)
	assert.Contains(t, bodyA, "Something is not right")
}

func TestAuthHandler_LoginNeverLeaksPasswordHash(t *testing.T) {
	ts := testutil.NewTestServer(t)

	user, password := testutil.NewUserBuilder().WithUserName("hashuser1").Build(t, ts.Repos.User)

	resp := ts.Do(t, http.MethodPost, "/login", "", map[string]string{
		"userName": user.UserName,
		"password": password,
	})
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var payload map[string]interface{}
	testutil.AssertJSONResponse(t, resp, &payload)

	userPayload, ok := payload["user"].(map[string]interface{})
	require.True(t, ok, "response has no user object")
	assert.NotContains(t, userPayload, "password")

	raw, err := json.Marshal(payload)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), user.PasswordHash)
}
