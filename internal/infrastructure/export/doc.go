// Package export renders registrations as spreadsheets and matchmaking
// brackets as PDF documents.
package export
