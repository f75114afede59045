// Package timezone holds the hotel's wall clock and the date helpers used for stays.
//
// Instants (audit rows, bill timestamps, metadata) are produced with Now and rendered
// with Format in the location named by APP_TIMEZONE. Stay dates are calendar dates:
// DateOf strips the clock and pins the value to midnight UTC, so check-in and check-out
// dates compare and subtract the same way regardless of where they were parsed.
//
//	checkIn, _ := timezone.ParseDate("2024-01-10")
//	nights := int(timezone.DateOf(checkOut).Sub(checkIn).Hours() / 24)
//
// Unknown zone names fall back to UTC with an error log.
package timezone
