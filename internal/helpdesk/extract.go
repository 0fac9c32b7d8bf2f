package helpdesk

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"triage/internal/logging"
	"triage/internal/redact"
)

// Scrub redacts PII in place across the transcript's message list. Both
// the message text and the sender label pass through redaction; senders
// are often raw email addresses.
func (t Transcript) Scrub() {
	msgs, ok := t["conversation"].([]any)
	if !ok {
		return
	}
	for _, m := range msgs {
		msg, ok := m.(map[string]any)
		if !ok {
			continue
		}
		if s, ok := msg["msg"].(string); ok {
			msg["msg"] = redact.Scrub(s)
		}
		if s, ok := msg["sent_by"].(string); ok {
			msg["sent_by"] = redact.Scrub(s)
		}
	}
}

// Result summarizes one extraction run.
type Result struct {
	Transcripts []Transcript
	Fetched     int
	Skipped     int
}

// Extractor drives a full transcript export: token refresh, chat
// listing, per-chat conversation fetches, and redaction.
type Extractor struct {
	client *Client
	log    *slog.Logger
}

// NewExtractor returns an extractor over the given client.
func NewExtractor(client *Client) *Extractor {
	return &Extractor{client: client, log: logging.New("helpdesk")}
}

// Run performs the export. Individual chat failures are logged and
// counted as skipped; credential, listing and context errors abort the
// whole run.
func (e *Extractor) Run(ctx context.Context) (*Result, error) {
	token, err := e.client.RefreshAccessToken(ctx)
	if err != nil {
		return nil, err
	}
	e.log.Info("access token refreshed")

	ids, err := e.client.ListChatIDs(ctx, token)
	if err != nil {
		return nil, err
	}
	e.log.Info("chat listing complete", "chats", len(ids))

	res := &Result{}
	for _, id := range ids {
		t, err := e.client.FetchConversation(ctx, token, id)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			e.log.Warn("skipping chat", "chat_id", id, "error", err)
			res.Skipped++
			continue
		}
		if _, ok := t["conversation"]; !ok {
			e.log.Warn("skipping chat without conversation", "chat_id", id)
			res.Skipped++
			continue
		}
		t.Scrub()
		res.Transcripts = append(res.Transcripts, t)
		res.Fetched++
		if err := e.client.Sleep(ctx, e.client.Config.ChatDelay); err != nil {
			return nil, err
		}
	}
	return res, nil
}

// WriteTranscripts writes transcripts as one pretty-printed JSON array.
// A nil slice still writes "[]" so downstream readers always get an
// array.
func WriteTranscripts(path string, ts []Transcript) error {
	if ts == nil {
		ts = []Transcript{}
	}
	data, err := json.MarshalIndent(ts, "", "    ")
	if err != nil {
		return fmt.Errorf("encode transcripts: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
