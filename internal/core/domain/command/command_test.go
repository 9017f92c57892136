package command

import "testing"

func TestParseOperator(t *testing.T) {
	tests := []struct {
		op     string
		want   RedirectMode
		wantOK bool
	}{
		{"<", ModeRead, true},
		{">", ModeWrite, true},
		{">>", ModeAppend, true},
		{"<<", ModeNone, false},
		{"><", ModeNone, false},
		{">>>", ModeNone, false},
		{"", ModeNone, false},
	}

	for _, tt := range tests {
		got, ok := ParseOperator(tt.op)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("ParseOperator(%q) = (%v, %v), want (%v, %v)", tt.op, got, ok, tt.want, tt.wantOK)
		}
		if ok && got.String() != tt.op {
			t.Errorf("ParseOperator(%q).String() = %q", tt.op, got.String())
		}
	}

	if ModeNone.String() != "" {
		t.Errorf("ModeNone.String() = %q, want empty", ModeNone.String())
	}
}
