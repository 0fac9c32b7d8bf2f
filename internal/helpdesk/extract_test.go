package helpdesk

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestTranscript_Scrub(t *testing.T) {
	tr := Transcript{
		"chat_id": "c-1",
		"conversation": []any{
			map[string]any{"msg": "reach me at bob@example.com", "sent_by": "555-123-4567"},
			map[string]any{"msg": "ok"},
			"not a message map",
		},
	}

	tr.Scrub()

	msgs := tr["conversation"].([]any)
	first := msgs[0].(map[string]any)
	if first["msg"] != "reach me at [EMAIL_REDACTED]" {
		t.Errorf("msg = %q", first["msg"])
	}
	if first["sent_by"] != "[PHONE_REDACTED]" {
		t.Errorf("sent_by = %q", first["sent_by"])
	}
	if msgs[1].(map[string]any)["msg"] != "ok" {
		t.Errorf("clean message changed: %v", msgs[1])
	}
}

func TestTranscript_Scrub_NoConversation(t *testing.T) {
	tr := Transcript{"chat_id": "c-2"}
	tr.Scrub() // must not panic
	if len(tr) != 1 {
		t.Errorf("transcript changed: %v", tr)
	}
}

func TestExtractor_Run(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/token":
			fmt.Fprint(w, `{"access_token": "tok-1"}`)
		case "/chats":
			if r.URL.Query().Get("start_index") == "1" {
				fmt.Fprint(w, `{"data": [{"id": "ok-1"}, {"id": "no-conv"}, {"id": "boom"}]}`)
				return
			}
			fmt.Fprint(w, `{"data": []}`)
		case "/chats/ok-1/conversation":
			fmt.Fprint(w, `{"data": {"chat_id": "ok-1", "conversation": [{"msg": "mail bob@example.com or call 555-123-4567", "sent_by": "carol@example.com"}]}}`)
		case "/chats/no-conv/conversation":
			fmt.Fprint(w, `{"data": {"chat_id": "no-conv"}}`)
		case "/chats/boom/conversation":
			http.Error(w, "server error", http.StatusInternalServerError)
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	client, _ := testClient(server, Config{})
	res, err := NewExtractor(client).Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if res.Fetched != 1 || res.Skipped != 2 {
		t.Errorf("fetched/skipped = %d/%d, want 1/2", res.Fetched, res.Skipped)
	}
	if len(res.Transcripts) != 1 {
		t.Fatalf("transcripts = %d, want 1", len(res.Transcripts))
	}

	msgs := res.Transcripts[0]["conversation"].([]any)
	first := msgs[0].(map[string]any)
	if first["msg"] != "mail [EMAIL_REDACTED] or call [PHONE_REDACTED]" {
		t.Errorf("msg not redacted: %q", first["msg"])
	}
	if first["sent_by"] != "[EMAIL_REDACTED]" {
		t.Errorf("sent_by not redacted: %q", first["sent_by"])
	}
}

func TestExtractor_Run_ListingStopsEarly(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/token":
			fmt.Fprint(w, `{"access_token": "tok-1"}`)
		case "/chats":
			if r.URL.Query().Get("start_index") == "1" {
				fmt.Fprint(w, `{"data": [{"id": "ok-1"}]}`)
				return
			}
			// The second page breaks; the chat already listed must
			// still be fetched and exported.
			http.Error(w, "server error", http.StatusInternalServerError)
		case "/chats/ok-1/conversation":
			fmt.Fprint(w, `{"data": {"chat_id": "ok-1", "conversation": [{"msg": "hello"}]}}`)
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	client, _ := testClient(server, Config{PageSize: 1})
	res, err := NewExtractor(client).Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.Fetched != 1 || res.Skipped != 0 {
		t.Errorf("fetched/skipped = %d/%d, want 1/0", res.Fetched, res.Skipped)
	}
	if len(res.Transcripts) != 1 || res.Transcripts[0]["chat_id"] != "ok-1" {
		t.Errorf("transcripts = %v, want the one listed chat", res.Transcripts)
	}
}

func TestExtractor_Run_MissingCredentials(t *testing.T) {
	client := NewClient(Config{})
	client.Sleep = func(context.Context, time.Duration) error { return nil }

	_, err := NewExtractor(client).Run(context.Background())
	if err == nil || !strings.Contains(err.Error(), "missing helpdesk credentials") {
		t.Fatalf("err = %v, want missing credentials", err)
	}
}

func TestWriteTranscripts(t *testing.T) {
	path := filepath.Join(t.TempDir(), "transcripts.json")
	ts := []Transcript{
		{"chat_id": "a", "conversation": []any{map[string]any{"msg": "hi"}}},
		{"chat_id": "b"},
	}

	if err := WriteTranscripts(path, ts); err != nil {
		t.Fatalf("WriteTranscripts: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if !strings.HasPrefix(string(data), "[\n    {") {
		t.Errorf("output not indented with four spaces:\n%s", data)
	}

	var got []Transcript
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("round trip: %v", err)
	}
	if diff := cmp.Diff(ts, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestWriteTranscripts_Empty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "transcripts.json")
	if err := WriteTranscripts(path, nil); err != nil {
		t.Fatalf("WriteTranscripts: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(data) != "[]" {
		t.Errorf("empty export = %q, want []", data)
	}
}
