// Package phone normalizes Brazilian-style phone input and formats it for display.
//
// Two subtypes are supported: Fixed numbers carry 10 digits (2-digit area code plus
// an 8-digit subscriber number) and Mobile numbers carry 11 digits (area code plus a
// 9-digit subscriber number).
//
//	phone.Mask("11988887777", phone.Mobile) // "(11) 98888-7777"
//	phone.Mask("1133334444", phone.Fixed)   // "(11) 3333-4444"
//	phone.Digits("(11) 98888-7777")         // "11988887777"
//
// Masking only inserts punctuation: Digits(Mask(raw, s)) always equals the first
// s.MaxDigits() digits of raw.
package phone
