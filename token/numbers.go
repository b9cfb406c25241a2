package token

// number reports whether d fully matches the numeric literal grammar:
// optional sign, digits, optional fraction, optional exponent.  The second
// result is true when d carries a fractional marker or an exponent, which
// classifies the token as a float rather than an integer.  Anything short of
// a full match is a symbol, so "1.2.3" and "-" never classify as numbers.
func number(d []byte) (isNum, isFloat bool) {
	i := 0
	if i < len(d) && (d[i] == '+' || d[i] == '-') {
		i++
	}
	n := asciiDigits(d[i:])
	if n == 0 {
		return false, false
	}
	i += n
	if i < len(d) && d[i] == '.' {
		i++
		n = asciiDigits(d[i:])
		if n == 0 {
			return false, false
		}
		i += n
		isFloat = true
	}
	if i < len(d) && (d[i] == 'e' || d[i] == 'E') {
		i++
		if i < len(d) && (d[i] == '+' || d[i] == '-') {
			i++
		}
		n = asciiDigits(d[i:])
		if n == 0 {
			return false, false
		}
		i += n
		isFloat = true
	}
	return i == len(d), isFloat
}

func asciiDigits(d []byte) int {
	i := 0
	for i < len(d) {
		if !asciiDigit(d[i]) {
			return i
		}
		i++
	}
	return i
}

func asciiDigit(c byte) bool {
	switch c {
	case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		return true
	default:
		return false
	}
}
