package normalization

import (
	"errors"
	"strconv"
	"strings"
)

var ErrPhoneTooLong = errors.New("phone number is too long")

func ParseInputString(input string) string {
	return strings.ToLower(strings.TrimSpace(input))
}

func Email(input string) string {
	return ParseInputString(input)
}

// Digits drops every byte that is not an ASCII digit.
func Digits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

// Phone joins the dial code and local number and keeps only digits. It
// returns nil when nothing numeric remains.
func Phone(dialCode, number string) (*int64, error) {
	digits := Digits(strings.TrimSpace(dialCode) + strings.TrimSpace(number))
	if digits == "" {
		return nil, nil
	}
	n, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return nil, ErrPhoneTooLong
	}
	return &n, nil
}

// Tags trims labels and drops blanks and duplicates, keeping first-seen order.
func Tags(in []string) []string {
	out := make([]string, 0, len(in))
	seen := make(map[string]struct{}, len(in))
	for _, t := range in {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		key := strings.ToLower(t)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, t)
	}
	return out
}

// PositiveInt parses a trimmed base-10 integer greater than zero.
func PositiveInt(s string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}
