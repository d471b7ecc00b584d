// Package timezone provides timezone utilities for the application.
//
// Usage Examples:
//
//  1. Initialization from configuration:
//     timezone.Init(cfg.App.Timezone)
//
//  2. Current time in the application timezone:
//     now := timezone.Now()
//
//  3. Reading a naive wall clock as local time somewhere:
//     loc, _ := time.LoadLocation("America/New_York")
//     t := timezone.Localize(time.Date(2024, 3, 10, 2, 30, 0, 0, time.UTC), loc) // 03:30 EDT
//
//  4. UTC offset of an instant:
//     d := timezone.OffsetAt(t) // -4h
//
// Supported timezone formats:
// - Standard timezone names only: "UTC", "Asia/Jakarta", "America/New_York", "Europe/London"
//
// The application timezone is configured via the APP_TIMEZONE environment variable.
// Use standard IANA timezone database names for reliable cross-platform compatibility.
package timezone
