// Package timezone pins every wall clock the API deals with to APP_TIMEZONE.
//
// Booking dates ("2006-01-02") and slot times ("15:04") are parsed and rendered in that
// location, so a booking made for 2024-05-20 09:30 means 09:30 on campus regardless of
// where the server runs. The location is loaded once at package init and falls back to
// UTC when the name is empty or unknown.
package timezone
