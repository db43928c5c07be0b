// Package members provides the HTTP client for the remote member list.
//
// # Overview
//
// The admin table is populated by a single GET of a JSON document holding an
// array of member objects:
//
//	[
//	  {"id": "1", "name": "Aaron Miles", "email": "aaron@mailinator.com", "role": "member"},
//	  ...
//	]
//
// Client.FetchMembers performs that request and hands the body to
// roster.Decode, which keeps each object's key order so the table columns
// follow the payload.
//
// # Client Usage
//
//	client, err := members.NewClient(cfg.SourceURL, cfg.RequestTimeout)
//	if err != nil {
//		return err
//	}
//	ds, err := client.FetchMembers(ctx)
//
// # Source URL
//
// NewClient accepts a full URL or a bare host/path:
//
//   - "" → DefaultSourceURL
//   - "example.com/members.json" → https://example.com/members.json
//   - "http://127.0.0.1:8080/m.json" → used as-is
//
// Only http and https are accepted. Query strings are kept; fragments are
// dropped.
//
// # Error Handling
//
// Errors are wrapped with the step that failed:
//
//   - "create request: ..." for malformed requests
//   - "execute request: ..." for transport failures and timeouts
//   - "GET /path returned status 404" for HTTP errors
//   - "decode response: ..." for payloads that are not a JSON array of objects
//
// # Design Rationale
//
// The client makes exactly one attempt. Whether and how to retry is left to
// the caller; the admin table loads once per session and shows the failure
// instead of retrying.
package members
