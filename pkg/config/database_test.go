package config

import (
	"strings"
	"testing"
)

func TestCaseSensitiveKeys(t *testing.T) {
	tests := []struct {
		dialect string
		want    string
	}{
		{DriverMySQL, "COLLATE utf8mb4_bin"},
		{DriverPostgres, ""},
	}
	for _, tt := range tests {
		t.Run(tt.dialect, func(t *testing.T) {
			stmts := caseSensitiveKeys(tt.dialect)
			if tt.want == "" {
				if len(stmts) != 0 {
					t.Fatalf("want no statements, got %v", stmts)
				}
				return
			}
			if len(stmts) != 1 || !strings.Contains(stmts[0], tt.want) || !strings.Contains(stmts[0], "medicine_name") {
				t.Fatalf("unexpected statements: %v", stmts)
			}
		})
	}
}
