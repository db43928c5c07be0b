// Package app is the composition root for memberadmin.
//
// # Overview
//
// This package wires configuration, logging, the member client, the session
// store and the UI together. Business logic lives in the domain packages
// (roster, members, state, ui); app only connects them.
//
// # Startup
//
//  1. Load config from ~/.config/memberadmin/config.toml plus environment
//  2. Build the zap logger (rotating file sink)
//  3. Build the members.Client for the configured source URL
//  4. Create an empty state.Store and subscribe a debug tracer to it
//  5. Start the TUI, which runs LoadMembers once as its first command
//
// # Data Flow
//
//	┌──────────────┐
//	│   Run()      │
//	└──────┬───────┘
//	       ├─────> config.Load()        settings + env overrides
//	       ├─────> logging.New()        zap + lumberjack
//	       ├─────> members.NewClient()  HTTP client
//	       ├─────> state.Store{}        session state
//	       └─────> ui.Run()             TUI (blocks)
//	                 └─> LoadMembers()  single GET, no retry
//
// # Error Handling
//
// Fatal (returned from Run or Export):
//   - unreadable or invalid config file
//   - invalid source URL
//
// Recoverable (logged, shown in the header):
//   - the startup fetch failing for any reason
//
// Export treats a failed fetch as fatal since there is nothing to write.
//
// # Export
//
// Export runs the same single load without the TUI, applies a search term
// and an optional page, and writes CSV or JSON:
//
//	err := app.Export(ctx, app.ExportOptions{Search: "admin", Format: app.FormatJSON}, os.Stdout)
package app
