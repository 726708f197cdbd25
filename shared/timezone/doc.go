// Package timezone pins every date comparison to the guest house's local calendar.
//
// Usage Examples:
//
//  1. Current instant and calendar day in the configured zone:
//     now := timezone.Now()
//     today := timezone.Today()                 // midnight of the local day
//
//  2. Parsing a date picked in a form (YYYY-MM-DD):
//     day, err := timezone.ParseDate("2025-12-24")
//
//  3. Formatting back to the wire format:
//     timezone.FormatDate(day.AddDate(0, 0, 1))
//
// The zone is read from APP_TIMEZONE when the package is imported and
// falls back to UTC. Use IANA names such as "Asia/Kathmandu" or "UTC".
package timezone
