// Package telemap defines the normalized, platform-stable chat entities
// produced from raw wire records. Values are immutable once returned:
// consumers may retain them freely, nothing is shared back into the raw
// tables they came from.
//
// Absence conventions: optional sub-records are nil pointers, optional
// lists are nil slices, optional timestamps are the zero time.Time, and
// optional strings are empty; an empty string is never legitimate data in
// any field here. Numeric fields whose zero could be mistaken for data use
// an explicit pointer (Contact.UserID).
package telemap
