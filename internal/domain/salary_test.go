package domain

import "testing"

func TestParsePeriod(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "valid period", input: "2024-05", want: "2024-05"},
		{name: "december", input: "2024-12", want: "2024-12"},
		{name: "month out of range", input: "2024-13", wantErr: true},
		{name: "month zero", input: "2024-00", wantErr: true},
		{name: "reversed", input: "05-2024", wantErr: true},
		{name: "slash separator", input: "2024/05", wantErr: true},
		{name: "no separator", input: "202405", wantErr: true},
		{name: "full date", input: "2024-05-01", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePeriod(tt.input)
			if tt.wantErr {
				if err != ErrInvalidPeriod {
					t.Errorf("ParsePeriod(%q) error = %v, want %v", tt.input, err, ErrInvalidPeriod)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParsePeriod(%q) error = %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParsePeriod(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestNetPay(t *testing.T) {
	tests := []struct {
		name       string
		basic      float64
		allowances float64
		deductions float64
		want       float64
	}{
		{name: "all components", basic: 50000, allowances: 5000, deductions: 2000, want: 53000},
		{name: "basic only", basic: 40000, want: 40000},
		{name: "deductions exceed income", basic: 1000, deductions: 5000, want: -4000},
		{name: "zero everything", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NetPay(tt.basic, tt.allowances, tt.deductions); got != tt.want {
				t.Errorf("NetPay() = %v, want %v", got, tt.want)
			}
		})
	}
}
