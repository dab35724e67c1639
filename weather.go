package weathermcp

import "context"

// QueryWeather performs a one-shot weather query: it launches the server,
// queries the given location, and tears the session down again.
//
// For repeated queries, keep a session open with NewClient or WithSession
// instead of paying the launch cost per call.
//
//	report, err := weathermcp.QueryWeather(ctx, "Beijing",
//	    weathermcp.WithLogger(slog.Default()),
//	)
func QueryWeather(ctx context.Context, location string, opts ...Option) (string, error) {
	var report string

	err := WithSession(ctx, func(c Client) error {
		var queryErr error

		report, queryErr = c.QueryWeather(ctx, location)

		return queryErr
	}, opts...)

	return report, err
}
