// Package types defines the address book data model: the validated Name,
// Phone and Birthday value types, the Record entity, and the AddressBook
// collection with its upcoming-birthdays query.
//
// All state lives in memory. Values are validated at construction and the
// package returns sentinel errors that callers match with errors.Is.
package types
