package log

import "testing"

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    Level
		wantErr bool
	}{
		{"trace", LevelTrace, false},
		{"DEBUG", LevelDebug, false},
		{" info ", LevelInfo, false},
		{"warning", LevelWarn, false},
		{"err", LevelError, false},
		{"fatal", LevelFatal, false},
		{"verbose", LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLevel(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLevel(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseLevelErrorMessage(t *testing.T) {
	_, err := ParseLevel("loud")
	if err == nil || err.Error() != "invalid level: loud" {
		t.Errorf("Expected 'invalid level: loud', got %v", err)
	}
}

func TestLevelStrings(t *testing.T) {
	tests := []struct {
		level Level
		long  string
		short string
	}{
		{LevelTrace, "trace", "TRC"},
		{LevelDebug, "debug", "DBG"},
		{LevelInfo, "info", "INF"},
		{LevelWarn, "warn", "WRN"},
		{LevelError, "error", "ERR"},
		{LevelFatal, "fatal", "FTL"},
		{Level(42), "unknown", "???"},
	}

	for _, tt := range tests {
		t.Run(tt.long, func(t *testing.T) {
			if got := tt.level.String(); got != tt.long {
				t.Errorf("String() = %q, want %q", got, tt.long)
			}
			if got := tt.level.ShortString(); got != tt.short {
				t.Errorf("ShortString() = %q, want %q", got, tt.short)
			}
		})
	}
}

func TestShouldLog(t *testing.T) {
	if !LevelError.ShouldLog(LevelWarn) {
		t.Error("Expected error to pass a warn threshold")
	}
	if LevelInfo.ShouldLog(LevelWarn) {
		t.Error("Expected info to be filtered by a warn threshold")
	}
}
