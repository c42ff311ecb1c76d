package sanitizer

// NormalizePhone strips every character that is not an ASCII digit.
// "(11) 98888-7777" becomes "11988887777"; input without digits becomes "".
func NormalizePhone(phone string) string {
	return nonDigitRegex.ReplaceAllString(phone, "")
}

// TakeDigits returns at most limit leading digits of the normalized phone.
// A non-positive limit returns all digits.
func TakeDigits(phone string, limit int) string {
	digits := NormalizePhone(phone)
	if limit > 0 && len(digits) > limit {
		return digits[:limit]
	}
	return digits
}
