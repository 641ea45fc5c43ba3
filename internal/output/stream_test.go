package output

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/povarna/generative-ai-agents/listing-agent/internal/models"
	"github.com/redis/go-redis/v9"
)

type fakeStream struct {
	args *redis.XAddArgs
	id   string
	err  error
}

func (f *fakeStream) XAdd(ctx context.Context, a *redis.XAddArgs) *redis.StringCmd {
	f.args = a
	return redis.NewStringResult(f.id, f.err)
}

func TestStreamSink_Save(t *testing.T) {
	fake := &fakeStream{id: "1700000000000-0"}
	sink := NewStreamSink(fake, "", testLogger())

	listing := testListing("bidon", models.FormatText)
	location, err := sink.Save(context.Background(), listing)
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	if location != "listing-events/1700000000000-0" {
		t.Errorf("location: %s", location)
	}
	if fake.args.Stream != DefaultStream {
		t.Errorf("stream: %s, want: %s", fake.args.Stream, DefaultStream)
	}

	values, ok := fake.args.Values.(map[string]any)
	if !ok {
		t.Fatalf("values should be a map, got %T", fake.args.Values)
	}
	payload, ok := values["payload"].(string)
	if !ok {
		t.Fatalf("payload should be a string, got %T", values["payload"])
	}

	var got models.Listing
	if err := json.Unmarshal([]byte(payload), &got); err != nil {
		t.Fatalf("payload is not a listing: %v", err)
	}
	if got.ID != listing.ID || got.ProductName != listing.ProductName || got.Content != listing.Content {
		t.Errorf("payload: %+v", got)
	}
}

func TestStreamSink_Error(t *testing.T) {
	fake := &fakeStream{err: errors.New("connection refused")}
	sink := NewStreamSink(fake, "listings", testLogger())

	_, err := sink.Save(context.Background(), testListing("bidon", models.FormatText))
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, fake.err) {
		t.Errorf("error should wrap the client error, got %v", err)
	}
}
