package validation

import "testing"

func TestValidateName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid name", "Ayşe", false},
		{"empty", "", true},
		{"whitespace only", "   ", true},
		{"single character", "A", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"minimum length", "1234", false},
		{"longer password", "correct-horse", false},
		{"too short", "123", true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePassword(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePassword(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid email", "student@example.com", false},
		{"empty is allowed", "", false},
		{"missing domain", "student@", true},
		{"missing at sign", "student.example.com", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateEmail(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateEmail(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateGrade(t *testing.T) {
	for _, grade := range []int{1, 9, 12} {
		if err := ValidateGrade(grade); err != nil {
			t.Errorf("ValidateGrade(%d) = %v, want nil", grade, err)
		}
	}
	for _, grade := range []int{0, 13, -1} {
		if err := ValidateGrade(grade); err == nil {
			t.Errorf("ValidateGrade(%d) = nil, want error", grade)
		}
	}
}

func TestValidateTimeRange(t *testing.T) {
	tests := []struct {
		name    string
		start   string
		end     string
		wantErr bool
	}{
		{"valid slot", "18:00", "19:00", false},
		{"one minute", "23:58", "23:59", false},
		{"end before start", "19:00", "18:00", true},
		{"equal times", "12:00", "12:00", true},
		{"bad start format", "9:00", "10:00", true},
		{"bad end format", "09:00", "25:00", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTimeRange(tt.start, tt.end)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateTimeRange(%q, %q) error = %v, wantErr %v", tt.start, tt.end, err, tt.wantErr)
			}
		})
	}
}

func TestValidationErrorMessage(t *testing.T) {
	err := ValidationError{Field: "grade", Message: "grade must be between 1 and 12"}
	want := "grade: grade must be between 1 and 12"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}
