// Package services implements the clients for the remote answering service that backs the course assistant.
//
// # Asker
//
// [Asker] is the narrow interface the chat widget, the CLI and the web server depend on.
// [AskService] implements it with a JSON POST to the configured endpoint (default http://localhost:8000/ask):
//
//	request:  {"query": "What is ML?"}
//	response: {"answer": "Machine learning is...", "sources": [{"filename": "...", "page": 1, "chunk": 2}]}
//
// # Raw client
//
// [APIService] performs raw requests and returns status, headers and body untouched. The web server forwards
// browser requests to the answering service through it, and [APIService.Ping] backs the health endpoint.
//
// # Error Handling
//
// Services use typed errors from shared package:
//   - [shared.ErrAPIRequest] : transport failure, non-2xx status or undecodable body
//   - [shared.ErrServiceUnavailable] : the service could not be reached at all
//
// A 2xx response without an answer is returned as an empty [models.Answer]; the chat widget substitutes its
// fallback text.
package services
