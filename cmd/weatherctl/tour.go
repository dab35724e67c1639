package main

import (
	"context"
	"fmt"
	"io"

	weathermcp "github.com/Zero-Hero-ing/mcp-interaction"
)

// runTour exercises the connected server with a scripted set of queries:
// a few cities, alerts for a few US states, and direct coordinate forecasts.
func runTour(ctx context.Context, out io.Writer, client weathermcp.Client) error {
	fmt.Fprintln(out, "\nQuerying weather for example locations...")

	for _, location := range []string{"Beijing", "New York", "London", "Tokyo"} {
		if err := ctx.Err(); err != nil {
			return nil
		}

		fmt.Fprintf(out, "\n--- Weather for %s ---\n", location)

		report, err := client.QueryWeather(ctx, location)
		if err != nil {
			fmt.Fprintf(out, "Error: %v\n", err)

			continue
		}

		fmt.Fprintln(out, report)
	}

	tools, err := client.Tools()
	if err != nil {
		return err
	}

	if hasTool(tools, weathermcp.ToolGetAlerts) {
		fmt.Fprintln(out, "\nChecking weather alerts for example states...")

		for _, state := range []string{"CA", "NY", "FL", "TX"} {
			if err := ctx.Err(); err != nil {
				return nil
			}

			fmt.Fprintf(out, "\n--- Weather Alerts for %s ---\n", state)

			report, err := client.GetAlerts(ctx, state)
			if err != nil {
				fmt.Fprintf(out, "Error: %v\n", err)

				continue
			}

			fmt.Fprintln(out, report)
		}
	}

	if hasTool(tools, weathermcp.ToolGetForecast) {
		fmt.Fprintln(out, "\nChecking direct coordinate forecasts...")

		coordinates := []struct {
			name     string
			lat, lon float64
		}{
			{"San Francisco", 37.7749, -122.4194},
			{"New York City", 40.7128, -74.0060},
			{"London", 51.5074, -0.1278},
		}

		for _, c := range coordinates {
			if err := ctx.Err(); err != nil {
				return nil
			}

			fmt.Fprintf(out, "\n--- Forecast for %s (%.4f, %.4f) ---\n", c.name, c.lat, c.lon)

			report, err := client.GetForecast(ctx, c.lat, c.lon)
			if err != nil {
				fmt.Fprintf(out, "Error: %v\n", err)

				continue
			}

			fmt.Fprintln(out, report)
		}
	}

	fmt.Fprintln(out, "\nTour completed.")

	return nil
}

func hasTool(tools []weathermcp.ToolDescriptor, name string) bool {
	for _, t := range tools {
		if t.Name == name {
			return true
		}
	}

	return false
}
