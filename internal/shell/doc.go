// Package shell implements the interactive read-eval loop of the weather
// client: each input line is dispatched to a command (tools, help, forecast,
// alerts, quit) or treated as a location for a weather query. Errors from a
// single query are printed and the loop continues.
package shell
