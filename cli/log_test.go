package cli

import (
	"os"
	"testing"

	"github.com/ardnew/cmakedbg/log"
)

func TestLogConfig_Scan(t *testing.T) {
	t.Cleanup(func() { log.Config(log.WithDefaults(os.Stderr)) })

	tests := []struct {
		name string
		args []string
		want logConfig
	}{
		{
			name: "separate values",
			args: []string{"--log-level", "debug", "--log-format", "json", "export"},
			want: logConfig{Level: "debug", Format: "json"},
		},
		{
			name: "assigned values",
			args: []string{"-b", ".", "--log-level=warn", "--log-time-layout=none"},
			want: logConfig{Level: "warn", TimeLayout: "none"},
		},
		{
			name: "booleans",
			args: []string{"--log-pretty", "--log-caller=true"},
			want: logConfig{Pretty: true, Caller: true},
		},
		{
			name: "negated",
			args: []string{"--no-log-pretty", "--no-log-caller=false"},
			want: logConfig{Pretty: false, Caller: true},
		},
		{
			name: "stops at terminator",
			args: []string{"--", "--log-level=error"},
			want: logConfig{},
		},
		{
			name: "flag without value",
			args: []string{"--log-level", "--log-pretty"},
			want: logConfig{Pretty: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got logConfig

			got.scan(tt.args)

			if got != tt.want {
				t.Errorf("scan(%q) = %+v, want %+v", tt.args, got, tt.want)
			}
		})
	}
}

func TestLogConfig_ScanConfiguresLogger(t *testing.T) {
	t.Cleanup(func() { log.Config(log.WithDefaults(os.Stderr)) })

	var cfg logConfig

	cfg.scan([]string{"--log-level=trace", "--log-format=json"})

	if got := log.Default().Level(); got != log.LevelTrace {
		t.Errorf("Level() = %v, want trace", got)
	}

	if got := log.Default().Format(); got != log.FormatJSON {
		t.Errorf("Format() = %v, want json", got)
	}
}

func TestLogConfig_Vars(t *testing.T) {
	vars := (&logConfig{}).vars()

	if vars["logLevelEnum"] != "trace,debug,info,warn,error" {
		t.Errorf("logLevelEnum = %q", vars["logLevelEnum"])
	}

	if vars["logFormatDefault"] != "text" {
		t.Errorf("logFormatDefault = %q", vars["logFormatDefault"])
	}
}
