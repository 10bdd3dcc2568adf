// Package domain translates MCP tool calls into planner operations.
//
// The package is intentionally explicit about that mapping:
// - decode MCP tool inputs into application parameters,
// - route calls to the planner service,
// - and surface structured outputs that MCP clients can render, including
//   clamp adjustments that never fail the call.
package domain
