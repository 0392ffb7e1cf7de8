// Package timezone holds the application time zone.
//
// The zone is configured via APP_TIMEZONE and installed once at startup with
// timezone.Init. Until then every helper falls back to UTC.
//
//	now := timezone.Now()
//	t, err := timezone.Parse(time.DateOnly, "2025-03-10")
//
// Use standard IANA timezone database names ("UTC", "Asia/Jakarta", "Europe/London").
package timezone
