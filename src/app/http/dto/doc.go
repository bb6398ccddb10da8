// Package dto contains Data Transfer Objects for HTTP requests and responses.
//
// DTOs are separate from domain entities to:
//   - Control what data is exposed in the API
//   - Keep JSON field names (binary_8bit, ...) out of the domain
//
// Naming convention:
//   - Request types: <Action>Request (e.g., ConvertRequest)
//   - Response types: <Action>Response (e.g., ConvertResponse)
package dto
