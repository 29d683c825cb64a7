package telegram

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSendMessage(t *testing.T) {
	var got sendMessageRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/bottoken123/sendMessage" {
			t.Errorf("path sai: %s", r.URL.Path)
		}
		json.NewDecoder(r.Body).Decode(&got)
		json.NewEncoder(w).Encode(apiResponse{OK: true})
	}))
	defer srv.Close()

	c := NewClientWithBase("token123", srv.URL)
	if err := c.SendMessage(context.Background(), "-100123", "📋 **Menu hôm nay**"); err != nil {
		t.Fatal(err)
	}
	if got.ChatID != "-100123" || got.ParseMode != "Markdown" || got.Text == "" {
		t.Errorf("request sai: %+v", got)
	}
}

func TestSendMessageAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(apiResponse{OK: false, Description: "chat not found"})
	}))
	defer srv.Close()

	c := NewClientWithBase("token123", srv.URL)
	err := c.SendMessage(context.Background(), "-1", "hi")
	if err == nil {
		t.Fatal("API trả ok=false phải thành error")
	}
}

func TestSetWebhook(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/bottoken123/setWebhook" {
			t.Errorf("path sai: %s", r.URL.Path)
		}
		if r.URL.Query().Get("url") != "https://bot.example.com" {
			t.Errorf("url sai: %s", r.URL.Query().Get("url"))
		}
		json.NewEncoder(w).Encode(apiResponse{OK: true})
	}))
	defer srv.Close()

	c := NewClientWithBase("token123", srv.URL)
	if err := c.SetWebhook(context.Background(), "https://bot.example.com"); err != nil {
		t.Fatal(err)
	}
}
