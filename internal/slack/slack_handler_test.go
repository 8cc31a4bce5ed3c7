package slack_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrii-maglovanyi/mandrii-sub004/internal/slack"
)

type fakeSlackService struct {
	NotifyFn func(ctx context.Context, topic, url string) error
}

func (f *fakeSlackService) Notify(ctx context.Context, topic, url string) error {
	return f.NotifyFn(ctx, topic, url)
}

func (f *fakeSlackService) NotifyAsync(topic, url string) {}

func doNotify(t *testing.T, svc slack.Service, body string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req := httptest.NewRequest(http.MethodPost, "/slack/notify", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req

	slack.NewHandler(svc, nil).Notify(c)
	return w
}

func TestSlackHandler_Notify(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		var gotTopic, gotURL string
		svc := &fakeSlackService{
			NotifyFn: func(_ context.Context, topic, url string) error {
				gotTopic, gotURL = topic, url
				return nil
			},
		}

		w := doNotify(t, svc, `{"topic":"New venue added","url":"https://mandrii.com/venues/kyiv-coffee"}`)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "New venue added", gotTopic)
		assert.Equal(t, "https://mandrii.com/venues/kyiv-coffee", gotURL)

		var body map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, true, body["success"])
	})

	t.Run("missing_topic_is_rejected", func(t *testing.T) {
		called := false
		svc := &fakeSlackService{
			NotifyFn: func(context.Context, string, string) error {
				called = true
				return nil
			},
		}

		w := doNotify(t, svc, `{"url":"https://mandrii.com"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.False(t, called)
	})

	t.Run("delivery_failure_maps_to_502", func(t *testing.T) {
		svc := &fakeSlackService{
			NotifyFn: func(context.Context, string, string) error {
				return errors.New("webhook gone")
			},
		}

		w := doNotify(t, svc, `{"topic":"hello"}`)
		assert.Equal(t, http.StatusBadGateway, w.Code)
	})
}

func TestWebhookService_Notify(t *testing.T) {
	t.Run("posts_text_payload", func(t *testing.T) {
		var got map[string]string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
			w.WriteHeader(http.StatusOK)
		}))
		defer srv.Close()

		svc := slack.NewWebhookService(srv.URL, nil)
		err := svc.Notify(context.Background(), "New event", "https://mandrii.com/events/1")
		require.NoError(t, err)
		assert.Equal(t, "New event\nhttps://mandrii.com/events/1", got["text"])
	})

	t.Run("non_200_is_an_error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "invalid_payload", http.StatusBadRequest)
		}))
		defer srv.Close()

		svc := slack.NewWebhookService(srv.URL, nil)
		assert.Error(t, svc.Notify(context.Background(), "x", ""))
	})
}
