// Package merge implements the create XML merge feature.
//
// A merge compares document A (the newer, incremental version) against B
// (the former version) and produces three things: the diagnostics, the
// merged document (B plus everything new in A) and a MySQL migration script
// turning a database built from B into one matching the merged document.
//
// # Components
//
//   - Service: file based runs (MergeFiles) with optional report, publishing
//     and script application, and in-memory runs (MergeDocuments).
//   - Handler: exposes in-memory runs over HTTP.
//   - Loader: registers the feature with the application.
//
// # HTTP Endpoints
//
//   - POST /merge : body {"a": "<xml>", "b": "<xml>"}.
package merge
