package server

import (
	"fmt"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateComment(t *testing.T) {
	_, app := newTestServer(t)
	aliceToken, _ := registerUser(t, app, "alice")
	bobToken, bobID := registerUser(t, app, "bob")
	postID := createPostViaAPI(t, app, aliceToken, "discuss")
	path := fmt.Sprintf("/api/posts/%d/comments", postID)

	resp, _ := doRequest(t, app, fiber.MethodPost, path, "", fiber.Map{"body": "anon"})
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	resp, body := doRequest(t, app, fiber.MethodPost, path, bobToken, fiber.Map{"body": "great point"})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	comment := body["comment"].(map[string]any)
	assert.Equal(t, "great point", comment["body"])
	assert.EqualValues(t, bobID, comment["user_id"])
	assert.Equal(t, "bob", comment["user"].(map[string]any)["username"])

	resp, body = doRequest(t, app, fiber.MethodPost, path, bobToken, fiber.Map{"body": ""})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION_ERROR", body["code"])

	resp, _ = doRequest(t, app, fiber.MethodPost, path, bobToken, fiber.Map{
		"body": strings.Repeat("x", 10001),
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp, body = doRequest(t, app, fiber.MethodPost, "/api/posts/999/comments", bobToken, fiber.Map{"body": "hello?"})
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", body["code"])
}

func TestComments_OrderedOldestFirst(t *testing.T) {
	_, app := newTestServer(t)
	token, _ := registerUser(t, app, "alice")
	postID := createPostViaAPI(t, app, token, "thread")
	path := fmt.Sprintf("/api/posts/%d", postID)

	for i := 0; i < 3; i++ {
		resp, _ := doRequest(t, app, fiber.MethodPost, path+"/comments", token, fiber.Map{
			"body": fmt.Sprintf("reply %d", i),
		})
		require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	}

	resp, body := doRequest(t, app, fiber.MethodGet, path, "", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	comments := body["comments"].([]any)
	require.Len(t, comments, 3)
	for i, raw := range comments {
		comment := raw.(map[string]any)
		assert.Equal(t, fmt.Sprintf("reply %d", i), comment["body"])
	}
}
