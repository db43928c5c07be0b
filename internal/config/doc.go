// Package config loads memberadmin's startup settings.
//
// # Configuration Discovery
//
// Load follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/memberadmin/config.toml
//  3. If the file doesn't exist, start from Default()
//  4. Apply MEMBERADMIN_* environment variables on top
//
// The command line loads a .env file from the working directory before
// calling Load, so the environment overrides can live there too.
//
// # TOML Format
//
//	source_url = "https://geektrust.s3-ap-southeast-1.amazonaws.com/adminui-problem/members.json"
//	request_timeout = "10s"
//	log_file = "~/.local/state/memberadmin/memberadmin.log"
//	log_level = "info"
//
// Every field is optional. Empty values fall back to defaults; paths are
// tilde-expanded and made absolute.
//
// # Environment
//
//   - MEMBERADMIN_SOURCE_URL overrides source_url
//   - MEMBERADMIN_LOG_LEVEL overrides log_level
//   - MEMBERADMIN_LOG_FILE overrides log_file
//
// # Error Handling
//
// A missing file is not an error. Unreadable files, invalid TOML and
// unparseable durations are returned wrapped ("parse config: ...").
//
// There is no page size setting; the table always shows 10 rows.
package config
