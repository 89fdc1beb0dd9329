package core

// FormatSize renders size in decimal with a comma between every group of
// three digits, counted from the least significant end.
func FormatSize(size int64) string {
	if size < 0 {
		return "-" + formatDigits(uint64(-(size + 1))+1)
	}
	return formatDigits(uint64(size))
}

func formatDigits(n uint64) string {
	// Digits are collected least significant first, then reversed.
	buf := make([]byte, 0, 27)
	counter := 0
	for {
		if counter == 3 {
			buf = append(buf, ',')
			counter = 0
		}
		buf = append(buf, byte('0'+n%10))
		counter++
		n /= 10
		if n == 0 {
			break
		}
	}
	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
	return string(buf)
}
