package weathermcp

import (
	"context"
	"fmt"
)

// WithSession manages client lifecycle with automatic cleanup.
//
// This helper creates a client, connects it with the provided options,
// executes the callback, and guarantees Close() on every exit path out of
// the session, including errors raised by the callback.
//
// The callback receives a connected Client ready for use. If the callback
// returns an error, it is returned to the caller. If Close() fails, a
// warning is logged but does not override the callback's error.
//
// Example usage:
//
//	err := weathermcp.WithSession(ctx, func(c weathermcp.Client) error {
//	    report, err := c.QueryWeather(ctx, "Tokyo")
//	    if err != nil {
//	        return err
//	    }
//	    fmt.Println(report)
//	    return nil
//	},
//	    weathermcp.WithLogger(log),
//	)
func WithSession(ctx context.Context, fn func(Client) error, opts ...Option) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}

	options := applyOptions(opts)

	log := options.Logger
	if log == nil {
		log = NopLogger()
	}

	client := NewClient()
	if err := client.Connect(ctx, opts...); err != nil {
		return fmt.Errorf("failed to connect: %w", err)
	}

	defer func() {
		if closeErr := client.Close(); closeErr != nil {
			log.Warn("failed to close client", "error", closeErr)
		}
	}()

	return fn(client)
}
