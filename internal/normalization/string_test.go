package normalization

import "testing"

func TestPhone(t *testing.T) {
	p, err := Phone("+91", "98765 43210")
	if err != nil || p == nil || *p != 919876543210 {
		t.Fatalf("Phone: p=%v err=%v", p, err)
	}
	if p, err := Phone("", " - "); err != nil || p != nil {
		t.Fatalf("empty phone: p=%v err=%v", p, err)
	}
	if _, err := Phone("+91", "99999999999999999999"); err != ErrPhoneTooLong {
		t.Fatalf("expected ErrPhoneTooLong, got %v", err)
	}
}

func TestTags(t *testing.T) {
	got := Tags([]string{" VIP ", "", "vip", "Regular"})
	if len(got) != 2 || got[0] != "VIP" || got[1] != "Regular" {
		t.Fatalf("Tags=%v", got)
	}
}

func TestPositiveInt(t *testing.T) {
	if n, ok := PositiveInt(" 400001 "); !ok || n != 400001 {
		t.Fatalf("n=%d ok=%v", n, ok)
	}
	for _, bad := range []string{"", "0", "-5", "40a", "400-001", "400 001"} {
		if _, ok := PositiveInt(bad); ok {
			t.Fatalf("PositiveInt(%q) accepted", bad)
		}
	}
}
