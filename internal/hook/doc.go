// Package hook defines the request/response exchange with the host process.
//
// The host writes one JSON object to stdin and reads the decision from
// stdout. Empty stdout means proceed; a blocking decision is a single object:
//
//	{"decision":"block","reason":"Errors detected in .blitz/metro.log ..."}
//
// The process exits 0 in both cases. Malformed input is returned as an error
// and the caller aborts without touching the cursor.
package hook
