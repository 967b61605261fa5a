package sanitizer

import "strings"

// NormalizePhone converts a Nigerian phone number to the bare international
// form the SMS gateway expects ("2348012345678", no plus sign):
//
//  1. spaces and hyphens are stripped
//  2. a leading "0" becomes "234"
//  3. a number without a "234"/"+234" prefix gets "234" prepended
//  4. any remaining "+" is stripped
func NormalizePhone(phone string) string {
	phone = strings.ReplaceAll(phone, " ", "")
	phone = strings.ReplaceAll(phone, "-", "")

	if strings.HasPrefix(phone, "0") {
		phone = "234" + phone[1:]
	} else if !strings.HasPrefix(phone, "234") && !strings.HasPrefix(phone, "+234") {
		phone = "234" + phone
	}

	return strings.ReplaceAll(phone, "+", "")
}
