package auth

import "testing"

func TestHashPasswordIsSaltedButComparable(t *testing.T) {
	first, err := HashPassword("s3cret", 4)
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	second, err := HashPassword("s3cret", 4)
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}

	if first == second {
		t.Fatal("two hashes of the same password should differ")
	}
	if err := ComparePassword(first, "s3cret"); err != nil {
		t.Fatalf("first hash should match its password: %v", err)
	}
	if err := ComparePassword(second, "s3cret"); err != nil {
		t.Fatalf("second hash should match its password: %v", err)
	}
	if err := ComparePassword(first, "wrong"); err == nil {
		t.Fatal("wrong password should not compare")
	}
}
