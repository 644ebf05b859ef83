package validator

import "testing"

func TestParsePriceRange(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantMin string
		wantMax string
		wantErr bool
	}{
		{"single value", "250", "250", "250", false},
		{"single value with decimals", "199.99", "199.99", "199.99", false},
		{"valid range", "200-300", "200", "300", false},
		{"range with spaces", " 200 - 300 ", "200", "300", false},
		{"zero price", "0", "0", "0", false},
		{"min equals max", "300-300", "", "", true},
		{"min above max", "300-200", "", "", true},
		{"negative value", "-50", "", "", true},
		{"empty string", "", "", "", true},
		{"whitespace only", "   ", "", "", true},
		{"not a number", "abc", "", "", true},
		{"malformed range", "200-300-400", "", "", true},
		{"half open range", "200-", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotMin, gotMax, err := ParsePriceRange(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParsePriceRange(%q) expected error, got min=%s max=%s", tt.input, gotMin, gotMax)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParsePriceRange(%q) error = %v", tt.input, err)
			}
			if gotMin.String() != tt.wantMin {
				t.Errorf("min = %s, want %s", gotMin, tt.wantMin)
			}
			if gotMax.String() != tt.wantMax {
				t.Errorf("max = %s, want %s", gotMax, tt.wantMax)
			}
		})
	}
}

func TestPriceRangeValidationTag(t *testing.T) {
	v := NewValidator()

	type payload struct {
		Price string `validate:"required,pricerange"`
	}

	if err := v.Validate(&payload{Price: "200-300"}); err != nil {
		t.Errorf("valid range rejected: %v", err)
	}
	if err := v.Validate(&payload{Price: "250"}); err != nil {
		t.Errorf("valid single price rejected: %v", err)
	}
	if err := v.Validate(&payload{Price: "300-200"}); err == nil {
		t.Error("inverted range accepted")
	}

	err := v.Validate(&payload{Price: "abc"})
	if err == nil {
		t.Fatal("malformed price accepted")
	}
	errs := v.FormatValidationErrors(err)
	if _, ok := errs["Price"]; !ok {
		t.Errorf("formatted errors missing Price key: %v", errs)
	}
}
