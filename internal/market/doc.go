// Package market talks to the upstream finance endpoint and understands its
// payload. HTTPSource performs the single GET per invocation and strips the
// fixed 5-byte anti-JSON prefix; ParseQuote extracts the tracked index from the
// resulting JSON document.
package market
