// Package transport serves a built schema over HTTP and websockets.
package transport

import (
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/graph-gophers/graphql-go"
	"github.com/graph-gophers/graphql-go/relay"
	"github.com/graph-gophers/graphql-transport-ws/graphqlws"

	schema "github.com/llehouerou/go-graphql-schema"
)

type options struct {
	logger     *slog.Logger
	schemaOpts []graphql.SchemaOpt
}

// Option configures NewHandler.
type Option func(o *options)

// WithLogger reports every request to logger at debug level.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithSchemaOptions forwards opts to graphql-go when the schema is parsed.
func WithSchemaOptions(opts ...graphql.SchemaOpt) Option {
	return func(o *options) {
		o.schemaOpts = append(o.schemaOpts, opts...)
	}
}

// NewHandler parses s against resolver and returns a handler answering
// queries and mutations posted as JSON, and subscriptions over the graphql-ws
// websocket protocol.
func NewHandler(s *schema.Schema, resolver any, opts ...Option) (http.Handler, error) {
	o := options{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(&o)
	}

	gs, err := s.Parse(resolver, o.schemaOpts...)
	if err != nil {
		return nil, err
	}

	h := graphqlws.NewHandlerFunc(gs, &relay.Handler{Schema: gs})
	return logRequests(o.logger, h), nil
}

func logRequests(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		logger.Debug("graphql request",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Bool("websocket", r.Header.Get("Upgrade") != ""),
			slog.Duration("duration", time.Since(start)),
		)
	})
}
