package tests

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	echoapi "github.com/vruksha/portal/apps/api/echo"
)

func Test_chatApi_greeting(t *testing.T) {
	app := setup(t)

	req, rec := newRequest(http.MethodGet, "/v1/chat/greeting")
	app.server.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("code = %v; want 200; body %s", rec.Code, rec.Body.String())
	}

	var respData echoapi.ChatGreetingResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &respData); err != nil {
		t.Fatalf("json.Unmarshal() failed: %v", err)
	}
	if !strings.Contains(respData.Greeting, app.conf.AppName) {
		t.Errorf("greeting = %q, want it to name the app", respData.Greeting)
	}
	if len(respData.QuickQuestions) == 0 {
		t.Error("no quick questions in response")
	}
}

func Test_chatApi_message(t *testing.T) {
	app := setup(t)

	tests := []httpTest{
		{
			name: "empty payload", body: []byte("{}"), wantCode: http.StatusBadRequest,
			wantData: marchallObj(t, echo.Map{"message": "this field is required"}),
		},
		{
			name: "whitespace only", body: marchallObj(t, echo.Map{"message": "   "}), wantCode: http.StatusBadRequest,
			wantData: marchallObj(t, echo.Map{"message": "this field is required"}),
		},
	}
	for _, tt := range tests {
		tt.method = http.MethodPost
		tt.path = "/v1/chat/messages"

		t.Run(tt.name, func(t *testing.T) {
			req, rec := newRequest(tt.method, tt.path, tt.body)
			app.server.ServeHTTP(rec, req)
			checkCodeAndData(t, tt, rec)
		})
	}

	replies := []struct {
		name    string
		message string
		want    string
	}{
		{"upload question", "how do I upload a lesson?", "Upload Content section"},
		{"format question", "what file formats work?", "Supported formats"},
		{"fallback", "tell me a joke", "Try asking about"},
	}
	for _, tc := range replies {
		t.Run(tc.name, func(t *testing.T) {
			req, rec := newRequest(http.MethodPost, "/v1/chat/messages", marchallObj(t, echo.Map{"message": tc.message}))
			app.server.ServeHTTP(rec, req)
			if rec.Code != http.StatusOK {
				t.Fatalf("code = %v; want 200; body %s", rec.Code, rec.Body.String())
			}

			var respData echoapi.ChatMessageResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &respData); err != nil {
				t.Fatalf("json.Unmarshal() failed: %v", err)
			}
			if !strings.Contains(respData.Reply, tc.want) {
				t.Errorf("reply = %q, want it to contain %q", respData.Reply, tc.want)
			}
			if respData.DelayMS != app.conf.Chat.ReplyDelay.Milliseconds() {
				t.Errorf("delay_ms = %d, want %d", respData.DelayMS, app.conf.Chat.ReplyDelay.Milliseconds())
			}
		})
	}
}
