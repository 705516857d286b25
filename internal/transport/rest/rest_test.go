package rest

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/kotoba-backend/internal/transport/middleware"
	"github.com/heartmarshall/kotoba-backend/pkg/ctxutil"
)

//go:generate moq -out review_service_mock_test.go -pkg rest . reviewService
//go:generate moq -out progress_service_mock_test.go -pkg rest . progressService
//go:generate moq -out reminder_runner_mock_test.go -pkg rest . reminderRunner

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

type testServer struct {
	reviews       *reviewServiceMock
	progress      *progressServiceMock
	reminders     *reminderRunnerMock
	reviewHandler *ReviewHandler
	handler       http.Handler
}

// newTestServer builds the full router. The caller identity is taken from
// the X-Test-User and X-Test-Role headers instead of a token.
func newTestServer() *testServer {
	ts := &testServer{
		reviews:   &reviewServiceMock{},
		progress:  &progressServiceMock{},
		reminders: &reminderRunnerMock{},
	}

	fakeAuth := middleware.Middleware(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			if id, err := uuid.Parse(r.Header.Get("X-Test-User")); err == nil {
				ctx = ctxutil.WithUserID(ctx, id)
				ctx = ctxutil.WithUserRole(ctx, r.Header.Get("X-Test-Role"))
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	})

	ts.reviewHandler = NewReviewHandler(ts.reviews, discardLogger)
	ts.reviewHandler.now = func() time.Time { return testNow.Add(48 * time.Hour) }

	ts.handler = NewRouter(Handlers{
		Review:   ts.reviewHandler,
		Progress: NewProgressHandler(ts.progress, discardLogger),
		Admin:    NewAdminHandler(ts.reminders, discardLogger),
		Health:   NewHealthHandler(map[string]Pinger{"database": PingFunc(okPing)}, "test"),
	}, fakeAuth)
	return ts
}

func (ts *testServer) do(t *testing.T, method, target, body string, userID uuid.UUID, role string) *httptest.ResponseRecorder {
	t.Helper()

	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	if userID != uuid.Nil {
		req.Header.Set("X-Test-User", userID.String())
		req.Header.Set("X-Test-Role", role)
	}
	rec := httptest.NewRecorder()
	ts.handler.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&v), "body: %s", rec.Body.String())
	return v
}

func userIDFrom(ctx context.Context) uuid.UUID {
	id, _ := ctxutil.UserIDFromCtx(ctx)
	return id
}
