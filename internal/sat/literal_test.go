package sat

import "testing"

func TestLiteral_Opposite(t *testing.T) {
	pos := NewPositiveLiteral(3)
	neg := NewNegativeLiteral(3)

	if got := pos.Opposite(); got != neg {
		t.Errorf("pos.Opposite() = %v, want %v", got, neg)
	}
	if got := neg.Opposite(); got != pos {
		t.Errorf("neg.Opposite() = %v, want %v", got, pos)
	}
}

func TestLiteral_VarAndPolarity(t *testing.T) {
	tests := []struct {
		lit        Literal
		wantVar    Variable
		wantPosive bool
	}{
		{NewPositiveLiteral(1), 1, true},
		{NewNegativeLiteral(1), 1, false},
		{NewPositiveLiteral(42), 42, true},
		{NewNegativeLiteral(42), 42, false},
	}
	for _, tc := range tests {
		if got := tc.lit.Var(); got != tc.wantVar {
			t.Errorf("Var() = %v, want %v", got, tc.wantVar)
		}
		if got := tc.lit.IsPositive(); got != tc.wantPosive {
			t.Errorf("IsPositive() = %v, want %v", got, tc.wantPosive)
		}
	}
}

func TestLiteral_String(t *testing.T) {
	if got, want := NewPositiveLiteral(5).String(), "5"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if got, want := NewNegativeLiteral(5).String(), "-5"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
