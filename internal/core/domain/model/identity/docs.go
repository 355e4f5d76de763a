// Package identity validates and normalizes the buyer identity fields used at
// checkout: the Chilean national identity number (RUT), the phone number and
// the e-mail address.
//
// Every parser is a pure function. Parsing an already canonical value returns
// it unchanged, so values read back from storage go through the same parsers.
//
// Canonical forms:
//   - NationalID: "<digits>-<check>", e.g. "12345678-5", check is 0-9 or K
//   - Phone:      "+56" followed by 9 or 8 digits, e.g. "+56987654321"
//   - Email:      the bare address, lower-cased domain untouched
package identity
