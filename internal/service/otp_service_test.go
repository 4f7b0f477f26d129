package service

import "testing"

func TestGenerateCodeLengthAndDigits(t *testing.T) {
	for _, length := range []int{4, 6, 8} {
		code, err := generateCode(length)
		if err != nil {
			t.Fatalf("generateCode(%d): %v", length, err)
		}
		if len(code) != length {
			t.Errorf("generateCode(%d) = %q, want %d digits", length, code, length)
		}
		for _, r := range code {
			if r < '0' || r > '9' {
				t.Errorf("generateCode(%d) = %q, contains non-digit %q", length, code, r)
			}
		}
	}
}

func TestGenerateCodeVaries(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 20; i++ {
		code, err := generateCode(6)
		if err != nil {
			t.Fatalf("generateCode: %v", err)
		}
		seen[code] = true
	}
	// 20 draws from a million-value space colliding into one value would
	// mean the generator is broken.
	if len(seen) < 2 {
		t.Fatalf("20 generated codes produced %d distinct values", len(seen))
	}
}
