package errors

import (
	"strings"
	"testing"
)

func TestValidateCategoryCount(t *testing.T) {
	tests := []struct {
		name     string
		count    int
		wantCode Code
	}{
		{name: "minimum", count: 1},
		{name: "maximum", count: 6},
		{name: "zero", count: 0, wantCode: ErrCodeInvalidCategoryCount},
		{name: "negative", count: -1, wantCode: ErrCodeInvalidCategoryCount},
		{name: "over maximum", count: 7, wantCode: ErrCodeInvalidCategoryCount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCategoryCount(tt.count)
			if tt.wantCode == "" {
				if err != nil {
					t.Fatalf("ValidateCategoryCount(%d) = %v, want nil", tt.count, err)
				}
				return
			}
			if !Is(err, tt.wantCode) {
				t.Errorf("ValidateCategoryCount(%d) code = %v, want %v", tt.count, GetCode(err), tt.wantCode)
			}
		})
	}
}

func TestValidateCauseCount(t *testing.T) {
	tests := []struct {
		name     string
		count    int
		wantCode Code
	}{
		{name: "empty is valid", count: 0},
		{name: "maximum", count: 6},
		{name: "over maximum", count: 7, wantCode: ErrCodeIndexOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCauseCount("Machine", tt.count)
			if tt.wantCode == "" {
				if err != nil {
					t.Fatalf("ValidateCauseCount() = %v, want nil", err)
				}
				return
			}
			if !Is(err, tt.wantCode) {
				t.Errorf("ValidateCauseCount() code = %v, want %v", GetCode(err), tt.wantCode)
			}
		})
	}
}

func TestValidateLabel(t *testing.T) {
	tests := []struct {
		name    string
		label   string
		wantErr bool
	}{
		{name: "simple", label: "Method"},
		{name: "spaces and punctuation", label: "Poor-quality input"},
		{name: "unicode", label: "Qualität"},
		{name: "empty", label: "", wantErr: true},
		{name: "control character", label: "bad\x00label", wantErr: true},
		{name: "newline", label: "two\nlines", wantErr: true},
		{name: "too long", label: strings.Repeat("x", 257), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateLabel("category", tt.label)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateLabel(%q) error = %v, wantErr %v", tt.label, err, tt.wantErr)
			}
			if tt.wantErr && !Is(err, ErrCodeInvalidLabel) {
				t.Errorf("code = %v, want %v", GetCode(err), ErrCodeInvalidLabel)
			}
		})
	}
}
