package kirka

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/i-am-called-glitchy/kirka-bot-go/pkg/errors"
	"go.uber.org/zap"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	client := NewClient(server.URL, "kirka.io", "test-token", zap.NewNop())
	t.Cleanup(client.Close)
	return client, server
}

func TestGetProfile(t *testing.T) {
	var gotMethod, gotPath, gotAuth string
	var gotBody []byte

	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		gotBody, _ = io.ReadAll(r.Body)

		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{
			"id": "long-1",
			"shortId": "AB12C",
			"name": "tester",
			"level": 30,
			"stats": {"kills": 100, "deaths": 40, "wins": 10, "games": 25}
		}`)
	})

	profile, err := client.GetProfile(context.Background(), "AB12C")
	if err != nil {
		t.Fatalf("GetProfile: %v", err)
	}

	if gotMethod != http.MethodPost || gotPath != "/api/user/getProfile" {
		t.Errorf("request = %s %s", gotMethod, gotPath)
	}
	if gotAuth != "" {
		t.Errorf("profile lookup must not send auth, got %q", gotAuth)
	}

	var payload struct {
		ID        string `json:"id"`
		IsShortID bool   `json:"isShortId"`
	}
	if err := json.Unmarshal(gotBody, &payload); err != nil {
		t.Fatalf("request body: %v", err)
	}
	if payload.ID != "AB12C" || !payload.IsShortID {
		t.Errorf("payload = %+v", payload)
	}

	if profile.Name != "tester" || profile.Level != 30 {
		t.Errorf("profile = %+v", profile)
	}
	if kd := profile.KDRatio(); kd != 2.5 {
		t.Errorf("KDRatio = %v, want 2.5", kd)
	}
	if wr := profile.WinRate(); wr != 0.4 {
		t.Errorf("WinRate = %v, want 0.4", wr)
	}
}

func TestGetMyProfileSendsBearer(t *testing.T) {
	var gotAuth string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		io.WriteString(w, `{"id": "long-1"}`)
	})

	if _, err := client.GetMyProfile(context.Background()); err != nil {
		t.Fatalf("GetMyProfile: %v", err)
	}
	if gotAuth != "Bearer test-token" {
		t.Errorf("Authorization = %q", gotAuth)
	}
}

func TestDoRequestTranslatesErrorBody(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		io.WriteString(w, `{"status": 102}`)
	})

	_, err := client.GetProfile(context.Background(), "NOONE")
	if err == nil {
		t.Fatal("expected an error for a 400 response")
	}

	var apiErr *errors.APIError
	if !stderrors.As(err, &apiErr) {
		t.Fatalf("error type %T, want *errors.APIError", err)
	}
	if apiErr.StatusCode != http.StatusBadRequest {
		t.Errorf("StatusCode = %d", apiErr.StatusCode)
	}
	if reason, _ := apiErr.Context["reason"].(string); reason != "User not found" {
		t.Errorf("reason = %q, want translated code 102", reason)
	}
}

func TestDoRequestErrorWithoutGameCode(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		io.WriteString(w, "nope")
	})

	_, err := client.GetProfile(context.Background(), "AB12C")
	var apiErr *errors.APIError
	if !stderrors.As(err, &apiErr) {
		t.Fatalf("error type %T", err)
	}
	if _, ok := apiErr.Context["reason"]; ok {
		t.Error("reason must be absent when the body carries no game code")
	}
	if body, _ := apiErr.Context["body"].(string); body != "nope" {
		t.Errorf("body = %q", body)
	}
}

func TestNormalizeShortID(t *testing.T) {
	cases := map[string]string{
		"#ab12c": "AB12C",
		"AB12C":  "AB12C",
		"ab12c":  "AB12C",
		"#AB12C": "AB12C",
	}
	for in, want := range cases {
		if got := NormalizeShortID(in); got != want {
			t.Errorf("NormalizeShortID(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestTranslateErrorCode(t *testing.T) {
	if got := TranslateErrorCode(403); got != "Clan not found" {
		t.Errorf("TranslateErrorCode(403) = %q", got)
	}
	if got := TranslateErrorCode(-1); !strings.Contains(got, "Unknown") {
		t.Errorf("TranslateErrorCode(-1) = %q", got)
	}
}

func TestJoinDate(t *testing.T) {
	p := &Profile{CreatedAt: "2021-06-15T10:30:00.000Z"}
	if got := p.JoinDate(); got != "June 15, 2021" {
		t.Errorf("JoinDate = %q", got)
	}

	p = &Profile{CreatedAt: "garbage"}
	if got := p.JoinDate(); got != "garbage" {
		t.Errorf("unparsable JoinDate = %q", got)
	}
}
