package types

import (
	"errors"
	"testing"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		config Config
		want   error
	}{
		{"valid mysql", Config{Driver: DriverMySQL, DSN: "salt:pw@tcp(db)/sdb"}, nil},
		{"valid sqlite", Config{Driver: DriverSQLite, DSN: "sdb.sqlite"}, nil},
		{"empty driver", Config{DSN: "sdb.sqlite"}, ErrDriverEmpty},
		{"unknown driver", Config{Driver: "postgres", DSN: "x"}, ErrDriverUnknown},
		{"empty dsn", Config{Driver: DriverMySQL}, ErrDSNEmpty},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if !errors.Is(err, tt.want) {
				t.Errorf("Validate() = %v, want %v", err, tt.want)
			}
		})
	}
}
