// Package timezone pins every timestamp the service produces (session token
// claims, intake events) to the application timezone configured by
// APP_TIMEZONE, which defaults to Asia/Tokyo for the booking calendar.
//
//	now := timezone.Now()
//	stamp := timezone.Format(now, constant.DateFormat)
package timezone
