package board

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, "test-token", 5*time.Second, 0)
}

func TestTasks(t *testing.T) {
	var gotAuth, gotPath, gotQuery string
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		w.Write([]byte(`{"tasks": [
			{"id": "7", "title": "fix parser", "description": "d", "status": "open",
			 "agent": {"name": "echo"}, "comment_count": 3, "pr_count": 1,
			 "created_at": "2026-01-10T09:00:00Z"},
			{"id": "8", "title": "sparse task", "agent": {"name": "nova"},
			 "created_at": "2026-01-11T09:00:00Z"}
		]}`))
	}))

	tasks, err := client.Tasks(context.Background(), 50)
	require.NoError(t, err)
	require.Len(t, tasks, 2)

	assert.Equal(t, "Bearer test-token", gotAuth)
	assert.Equal(t, "/tasks", gotPath)
	assert.Equal(t, "limit=50&sort=recent", gotQuery)

	assert.Equal(t, "7", tasks[0].ID)
	assert.Equal(t, "echo", tasks[0].Agent.Name)
	assert.Equal(t, 3, tasks[0].CommentCount)
	assert.Equal(t, 1, tasks[0].PRCount)

	// Missing optional fields default rather than fail
	assert.Equal(t, 0, tasks[1].CommentCount)
	assert.Equal(t, 0, tasks[1].PRCount)
	assert.Equal(t, "", tasks[1].Description)
	assert.Equal(t, "", tasks[1].Status)
}

func TestTasksHTTPFailure(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream broken", http.StatusBadGateway)
	}))

	_, err := client.Tasks(context.Background(), 10)
	require.Error(t, err)

	var fetchErr *FetchError
	require.True(t, errors.As(err, &fetchErr), "want FetchError, got %T", err)
	assert.Contains(t, fetchErr.Error(), "502")
}

func TestTasksMalformedBody(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"tasks": [`))
	}))

	_, err := client.Tasks(context.Background(), 10)
	var fetchErr *FetchError
	require.True(t, errors.As(err, &fetchErr), "want FetchError, got %T", err)
}

func TestDetails(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/tasks/42":
			w.Write([]byte(`{"task": {"id": "42", "title": "t", "agent": {"name": "echo"},
				"created_at": "2026-01-10T09:00:00Z"}}`))
		case "/tasks/42/comments":
			w.Write([]byte(`{"comments": [
				{"id": "c1", "author": "nova", "body": "looks good", "created_at": "2026-01-10T10:00:00Z"}
			]}`))
		default:
			http.NotFound(w, r)
		}
	}))

	details, err := client.Details(context.Background(), "42")
	require.NoError(t, err)
	require.NotNil(t, details.Task)
	assert.Equal(t, "42", details.Task.ID)
	require.Len(t, details.Comments, 1)
	assert.Equal(t, "nova", details.Comments[0].Author)
}

func TestDetailsFailureIsDetailFetchError(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))

	_, err := client.Details(context.Background(), "gone")
	require.Error(t, err)

	var detailErr *DetailFetchError
	require.True(t, errors.As(err, &detailErr), "want DetailFetchError, got %T", err)
	assert.Equal(t, "gone", detailErr.TaskID)
}

func TestLoadCredentials(t *testing.T) {
	path := filepath.Join(t.TempDir(), "creds.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"api_key": "sk-board-123"}`), 0600))

	token, err := LoadCredentials(path)
	require.NoError(t, err)
	assert.Equal(t, "sk-board-123", token)
}

func TestLoadCredentialsErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing file", ""},
		{"malformed json", `{"api_key": `},
		{"empty key", `{"api_key": ""}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "creds.json")
			if tt.body != "" {
				require.NoError(t, os.WriteFile(path, []byte(tt.body), 0600))
			}

			_, err := LoadCredentials(path)
			require.Error(t, err)

			var credErr *CredentialError
			require.True(t, errors.As(err, &credErr), "want CredentialError, got %T", err)
			assert.Equal(t, path, credErr.Path)
		})
	}
}
