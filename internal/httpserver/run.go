package httpserver

import (
	"context"
	"fmt"
)

// Run maps all handlers and starts serving. It blocks until the listener
// fails.
func (srv *HTTPServer) Run() error {
	if err := srv.mapHandlers(); err != nil {
		return fmt.Errorf("failed to map handlers: %w", err)
	}

	srv.l.Infof(context.Background(), "HTTP server listening on :%d", srv.port)

	return srv.gin.Run(fmt.Sprintf(":%d", srv.port))
}
