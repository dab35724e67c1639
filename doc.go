// Package weathermcp provides a Go client for the weather-query MCP server.
//
// The client launches the weather server as a subprocess, performs the MCP
// initialize handshake over the server's standard input/output, discovers
// the server's tools, and invokes them. Protocol framing and the handshake
// are handled by the official MCP Go SDK; this package owns session
// lifecycle, the tool-invocation contract, and the interactive dispatch
// loop used by the weatherctl command.
//
// # Basic Usage
//
// For a one-shot query, use the QueryWeather function:
//
//	ctx := context.Background()
//	report, err := weathermcp.QueryWeather(ctx, "Beijing")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(report)
//
// # Sessions
//
// For repeated queries over one server process, use NewClient or the
// WithSession helper:
//
//	err := weathermcp.WithSession(ctx, func(c weathermcp.Client) error {
//	    report, err := c.QueryWeather(ctx, "Paris")
//	    if err != nil {
//	        return err
//	    }
//	    fmt.Println(report)
//	    return nil
//	},
//	    weathermcp.WithLogger(slog.Default()),
//	)
//
//	// Or using NewClient directly for more control
//	client := weathermcp.NewClient()
//	defer client.Close()
//
//	if err := client.Connect(ctx); err != nil {
//	    log.Fatal(err)
//	}
//
// # Server launch configuration
//
// By default the client launches the weather server with uvx, fetching it
// straight from its repository. Substitute any other launch command with
// WithServerCommand:
//
//	err := client.Connect(ctx,
//	    weathermcp.WithServerCommand("python3", "-m", "weather_server"),
//	)
//
// # Error Handling
//
// The client provides typed errors for different failure scenarios:
//
//	report, err := client.QueryWeather(ctx, location)
//	if err != nil {
//	    var invErr *weathermcp.ToolInvocationError
//	    if errors.As(err, &invErr) {
//	        log.Printf("server could not answer: %v", invErr)
//	    }
//	    if errors.Is(err, weathermcp.ErrNotConnected) {
//	        log.Fatal("Connect must be called first")
//	    }
//	}
//
// # Requirements
//
// The default launch command requires uvx to be installed and network
// access to fetch the server package. Use WithServerCommand or a
// configuration file to point at a locally installed server instead.
package weathermcp
