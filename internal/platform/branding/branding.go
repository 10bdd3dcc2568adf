// Package branding centralizes user-facing product naming.
package branding

// AppName is the product name surfaced to MCP clients and logs.
const AppName = "TinkerTools"
