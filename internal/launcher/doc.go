// Package launcher locates the binary used to fetch and run the weather
// server (uvx by default). Discovery checks an explicit path first, then
// PATH, then a few common install locations.
package launcher
