package common

import (
	"os"
	"testing"
)

func TestValidateLogLevel(t *testing.T) {
	tests := []struct {
		name    string
		level   string
		wantErr bool
	}{
		{"debug", "debug", false},
		{"upper case", "WARN", false},
		{"warning alias", "warning", false},
		{"invalid - unknown", "verbose", true},
		{"invalid - empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateLogLevel(tt.level)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateLogLevel() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateConcurrency(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{"valid", "16", false},
		{"valid - min", "1", false},
		{"valid - max", "1024", false},
		{"invalid - zero", "0", true},
		{"invalid - too high", "1025", true},
		{"invalid - negative", "-4", true},
		{"invalid - not numeric", "many", true},
		{"invalid - empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateConcurrency(tt.value)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateConcurrency() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestParseFileMode(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    os.FileMode
		wantErr bool
	}{
		{"leading zero", "0644", 0644, false},
		{"no leading zero", "755", 0755, false},
		{"private", "0600", 0600, false},
		{"invalid - not octal", "0689", 0, true},
		{"invalid - setuid bits", "4755", 0, true},
		{"invalid - empty", "", 0, true},
		{"invalid - symbolic", "rwxr-xr-x", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseFileMode(tt.value)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseFileMode() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if got != tt.want {
				t.Errorf("ParseFileMode() = %o, want %o", got, tt.want)
			}
		})
	}
}

func TestParseBool(t *testing.T) {
	tests := []struct {
		value   string
		want    bool
		wantErr bool
	}{
		{"true", true, false},
		{"Yes", true, false},
		{"1", true, false},
		{"off", false, false},
		{"false", false, false},
		{"maybe", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			got, err := ParseBool(tt.value)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseBool() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if got != tt.want {
				t.Errorf("ParseBool() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestValidateConfigKey(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		wantErr bool
	}{
		{"valid", "LOG_LEVEL", false},
		{"valid with digits", "DIR_MODE2", false},
		{"invalid - lower case", "log_level", true},
		{"invalid - starts with digit", "1KEY", true},
		{"invalid - equals sign", "KEY=VALUE", true},
		{"invalid - empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateConfigKey(tt.key)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateConfigKey() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateNotEmpty(t *testing.T) {
	if err := ValidateNotEmpty("  "); err == nil {
		t.Error("ValidateNotEmpty() error = nil, want error for blank value")
	}
	if err := ValidateNotEmpty("file.txt"); err != nil {
		t.Errorf("ValidateNotEmpty() error = %v, want nil", err)
	}
}
