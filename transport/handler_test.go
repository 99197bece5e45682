package transport_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"nhooyr.io/websocket"
	"nhooyr.io/websocket/wsjson"

	schema "github.com/llehouerou/go-graphql-schema"
	"github.com/llehouerou/go-graphql-schema/transport"
)

var ada = schema.UUID{UUID: [16]byte{0xa1, 0xda}}

func buildSchema(t *testing.T) *schema.Schema {
	t.Helper()

	b := schema.NewBuilder()
	s := b.Session()

	person := b.Object("Person")
	person.Set("id", s.UUID(schema.Keywords{"required": true}))
	person.Set("name", s.String(schema.Keywords{"required": true}))

	query := b.Object("Query")
	query.Set("hello", s.String(
		schema.Arguments{"name": s.String(schema.Keywords{"default_value": "world"})},
		schema.Keywords{"required": true},
	))
	query.Set("person", s.Of(person, schema.Arguments{"id": s.UUID(schema.Keywords{"required": true})}))

	subscription := b.Object("Subscription")
	subscription.Set("ticks", s.Int(
		schema.Arguments{"count": s.Int(schema.Keywords{"required": true})},
		schema.Keywords{"required": true},
	))

	b.Query(query).Subscription(subscription)

	built, err := b.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return built
}

type resolver struct{}

func (resolver) Hello(args struct{ Name *string }) string {
	return "Hello, " + *args.Name + "!"
}

func (resolver) Person(args struct{ ID schema.UUID }) *personResolver {
	if args.ID != ada {
		return nil
	}
	return &personResolver{id: ada, name: "Ada"}
}

func (resolver) Ticks(ctx context.Context, args struct{ Count int32 }) <-chan int32 {
	c := make(chan int32)
	go func() {
		defer close(c)
		for i := int32(1); i <= args.Count; i++ {
			select {
			case c <- i:
			case <-ctx.Done():
				return
			}
		}
	}()
	return c
}

type personResolver struct {
	id   schema.UUID
	name string
}

func (p *personResolver) ID() schema.UUID { return p.id }
func (p *personResolver) Name() string    { return p.name }

func newServer(t *testing.T, opts ...transport.Option) *httptest.Server {
	t.Helper()

	h, err := transport.NewHandler(buildSchema(t), resolver{}, opts...)
	if err != nil {
		t.Fatalf("NewHandler: %v", err)
	}
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return srv
}

func TestNewHandler_http(t *testing.T) {
	srv := newServer(t)

	tests := []struct {
		name      string
		query     string
		variables map[string]any
		want      string
	}{
		{
			name:  "default argument value",
			query: `{ hello }`,
			want:  `{"data":{"hello":"Hello, world!"}}`,
		},
		{
			name:      "variables",
			query:     `query($name: String) { hello(name: $name) }`,
			variables: map[string]any{"name": "Ada"},
			want:      `{"data":{"hello":"Hello, Ada!"}}`,
		},
		{
			name:      "uuid scalar",
			query:     `query($id: UUID!) { person(id: $id) { id name } }`,
			variables: map[string]any{"id": ada.String()},
			want:      `{"data":{"person":{"id":"` + ada.String() + `","name":"Ada"}}}`,
		},
		{
			name:      "nullable object",
			query:     `query($id: UUID!) { person(id: $id) { name } }`,
			variables: map[string]any{"id": schema.NewUUID().String()},
			want:      `{"data":{"person":null}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body, err := json.Marshal(map[string]any{"query": tt.query, "variables": tt.variables})
			if err != nil {
				t.Fatal(err)
			}

			resp, err := http.Post(srv.URL, "application/json", bytes.NewReader(body))
			if err != nil {
				t.Fatalf("Post: %v", err)
			}
			defer resp.Body.Close()

			if resp.StatusCode != http.StatusOK {
				t.Fatalf("got status %d", resp.StatusCode)
			}
			got, err := io.ReadAll(resp.Body)
			if err != nil {
				t.Fatal(err)
			}
			if string(got) != tt.want {
				t.Errorf("got %s, want %s", got, tt.want)
			}
		})
	}
}

func TestNewHandler_invalidUUIDArgument(t *testing.T) {
	srv := newServer(t)

	body := `{"query":"{ person(id: \"not-a-uuid\") { name } }"}`
	resp, err := http.Post(srv.URL, "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatalf("Post: %v", err)
	}
	defer resp.Body.Close()

	var out struct {
		Errors []struct {
			Message string `json:"message"`
		} `json:"errors"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatal(err)
	}
	if len(out.Errors) == 0 {
		t.Fatal("got no errors")
	}
}

type wsMessage struct {
	ID      string          `json:"id,omitempty"`
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// readMessage returns the next message that is not a keep-alive.
func readMessage(ctx context.Context, t *testing.T, c *websocket.Conn) wsMessage {
	t.Helper()
	for {
		var msg wsMessage
		if err := wsjson.Read(ctx, c, &msg); err != nil {
			t.Fatalf("read: %v", err)
		}
		if msg.Type != "ka" {
			return msg
		}
	}
}

func TestNewHandler_subscription(t *testing.T) {
	srv := newServer(t)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	c, _, err := websocket.Dial(ctx, "ws"+strings.TrimPrefix(srv.URL, "http"), &websocket.DialOptions{
		Subprotocols: []string{"graphql-ws"},
	})
	if err != nil {
		t.Fatalf("Dial: %v", err)
	}
	defer c.Close(websocket.StatusNormalClosure, "")

	if err := wsjson.Write(ctx, c, wsMessage{Type: "connection_init", Payload: json.RawMessage(`{}`)}); err != nil {
		t.Fatalf("write connection_init: %v", err)
	}
	if msg := readMessage(ctx, t, c); msg.Type != "connection_ack" {
		t.Fatalf("got %q, want connection_ack", msg.Type)
	}

	start := wsMessage{
		ID:      "1",
		Type:    "start",
		Payload: json.RawMessage(`{"query":"subscription { ticks(count: 3) }"}`),
	}
	if err := wsjson.Write(ctx, c, start); err != nil {
		t.Fatalf("write start: %v", err)
	}

	var ticks []int
	for len(ticks) < 3 {
		msg := readMessage(ctx, t, c)
		if msg.Type != "data" || msg.ID != "1" {
			t.Fatalf("got message %+v, want data for 1", msg)
		}
		var payload struct {
			Data struct {
				Ticks int `json:"ticks"`
			} `json:"data"`
		}
		if err := json.Unmarshal(msg.Payload, &payload); err != nil {
			t.Fatalf("decode payload %s: %v", msg.Payload, err)
		}
		ticks = append(ticks, payload.Data.Ticks)
	}

	for i, got := range ticks {
		if got != i+1 {
			t.Errorf("tick %d: got %d, want %d", i, got, i+1)
		}
	}
}

func TestNewHandler_resolverMismatch(t *testing.T) {
	_, err := transport.NewHandler(buildSchema(t), struct{}{})
	if err == nil {
		t.Fatal("got nil error")
	}

	var e schema.Error
	if !errors.As(err, &e) || e.GetCode() != schema.ErrSchemaValidation {
		t.Errorf("got %v, want a schema validation error", err)
	}
}

func TestNewHandler_logsRequests(t *testing.T) {
	var buf lockedBuffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	srv := newServer(t, transport.WithLogger(logger))

	resp, err := http.Post(srv.URL+"/graphql", "application/json", strings.NewReader(`{"query":"{ hello }"}`))
	if err != nil {
		t.Fatalf("Post: %v", err)
	}
	resp.Body.Close()

	if out := buf.String(); !strings.Contains(out, `msg="graphql request" method=POST path=/graphql websocket=false`) {
		t.Errorf("unexpected log output:\n%s", out)
	}
}

// lockedBuffer is written by the server goroutine and read by the test.
type lockedBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *lockedBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *lockedBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}
