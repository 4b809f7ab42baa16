package deals

import "strconv"

// FormatPrice renders a whole-rupee amount with the currency glyph and
// thousands separators, e.g. 134900 -> "₹134,900".
func FormatPrice(amount int) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	digits := strconv.Itoa(amount)
	n := len(digits)
	if n <= 3 {
		return sign + "₹" + digits
	}
	var out []byte
	head := n % 3
	if head > 0 {
		out = append(out, digits[:head]...)
	}
	for i := head; i < n; i += 3 {
		if len(out) > 0 {
			out = append(out, ',')
		}
		out = append(out, digits[i:i+3]...)
	}
	return sign + "₹" + string(out)
}
