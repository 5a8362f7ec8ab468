package cmd

import (
	"context"
	"flag"
	"testing"
)

type testConfig struct {
	Filter  string `env:"CMD_TEST_FILTER" envDefault:"has_hair = true"`
	Verbose bool   `env:"CMD_TEST_VERBOSE" envDefault:"false"`
}

func TestParseConfigReadsEnvAndFlags(t *testing.T) {
	t.Setenv("CMD_TEST_FILTER", `breed = "labrador"`)
	t.Setenv("CMD_TEST_VERBOSE", "true")

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfgRef := testConfig{}
	if err := ParseConfig(&cfgRef); err != nil {
		t.Fatalf("load config defaults: %v", err)
	}
	fs.StringVar(&cfgRef.Filter, "filter", cfgRef.Filter, "filter")
	fs.BoolVar(&cfgRef.Verbose, "v", cfgRef.Verbose, "verbose")

	if err := ParseArgs(fs, []string{"-filter", "has_hair = true"}); err != nil {
		t.Fatalf("parse flags: %v", err)
	}
	if cfgRef.Filter != "has_hair = true" {
		t.Fatalf("expected flag value for filter, got %q", cfgRef.Filter)
	}
	if !cfgRef.Verbose {
		t.Fatal("expected env default verbose")
	}
}

func TestParseConfigFromArgsReadsEnvAndFlags(t *testing.T) {
	t.Setenv("CMD_TEST_FILTER", `breed = "schnauzer"`)
	t.Setenv("CMD_TEST_VERBOSE", "true")

	cfgRef := testConfig{}
	fs := flag.NewFlagSet("configargs", flag.ContinueOnError)
	fs.StringVar(&cfgRef.Filter, "filter", "", "filter")
	fs.BoolVar(&cfgRef.Verbose, "v", false, "verbose")
	if err := ParseConfigFromArgs(&cfgRef, fs, []string{"-filter", `hair_color = "gray"`}); err != nil {
		t.Fatalf("parse config and args: %v", err)
	}
	if cfgRef.Filter != `hair_color = "gray"` {
		t.Fatalf("expected parsed flag filter, got %q", cfgRef.Filter)
	}
	if !cfgRef.Verbose {
		t.Fatal("expected env default verbose")
	}
}

func TestParseArgsRejectsNilParser(t *testing.T) {
	if err := ParseArgs(nil, []string{}); err == nil {
		t.Fatal("expected parse args to reject nil parser")
	}
}

func TestRunWithTelemetryRejectsMissingInputs(t *testing.T) {
	if err := RunWithTelemetry(nil, "", func(context.Context) error { return nil }); err == nil {
		t.Fatal("expected missing service error")
	}
	if err := RunWithTelemetry(nil, ServiceMenagerie, nil); err == nil {
		t.Fatal("expected missing run function error")
	}
}
