package cmd

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/parley-chat/parley/internal/config"
)

func TestDebugFlagDefaultTrue(t *testing.T) {
	flag := rootCmd.PersistentFlags().Lookup("debug")
	if flag == nil {
		t.Fatal("--debug flag not found")
	}
	if flag.DefValue != "true" {
		t.Errorf("--debug default = %q, want %q", flag.DefValue, "true")
	}
}

func TestQuietFlagExists(t *testing.T) {
	flag := rootCmd.PersistentFlags().Lookup("quiet")
	if flag == nil {
		t.Fatal("--quiet flag not found")
	}
	if flag.DefValue != "false" {
		t.Errorf("--quiet default = %q, want %q", flag.DefValue, "false")
	}
	if flag.Shorthand != "q" {
		t.Errorf("--quiet shorthand = %q, want %q", flag.Shorthand, "q")
	}
}

func TestEndpointFlagExists(t *testing.T) {
	flag := rootCmd.Flags().Lookup("endpoint")
	if flag == nil {
		t.Fatal("--endpoint flag not found")
	}
	if flag.DefValue != "" {
		t.Errorf("--endpoint default = %q, want empty", flag.DefValue)
	}
}

func TestVersionTemplate(t *testing.T) {
	origVersion, origCommit, origDate := version, commit, date
	defer func() { version, commit, date = origVersion, origCommit, origDate }()

	SetVersionInfo("1.2.3", "abc1234", "2026-01-01")
	tmpl := versionTemplate()
	if !strings.Contains(tmpl, "1.2.3") || !strings.Contains(tmpl, "abc1234") {
		t.Errorf("version template missing details: %q", tmpl)
	}

	SetVersionInfo("dev", "none", "unknown")
	tmpl = versionTemplate()
	if strings.Contains(tmpl, "commit") {
		t.Errorf("dev build template should omit commit line: %q", tmpl)
	}
}

func TestSelectProducer(t *testing.T) {
	origEndpoint := endpointFlag
	defer func() { endpointFlag = origEndpoint }()

	newConfig := func(endpoint string) *config.Config {
		cfg, err := config.LoadFrom(filepath.Join(t.TempDir(), "config.json"))
		if err != nil {
			t.Fatal(err)
		}
		cfg.SetEndpoint(endpoint)
		return cfg
	}

	tests := []struct {
		name           string
		flag           string
		configEndpoint string
		want           string
	}{
		{"no endpoint anywhere uses mock", "", "", "mock"},
		{"flag selects http", "http://localhost:9999/chat", "", "http"},
		{"config endpoint selects http", "", "http://localhost:8000/chat", "http"},
		{"flag wins over config", "http://localhost:9999/chat", "http://localhost:8000/chat", "http"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			endpointFlag = tt.flag
			producer := selectProducer(newConfig(tt.configEndpoint))
			if producer.Name() != tt.want {
				t.Errorf("producer = %q, want %q", producer.Name(), tt.want)
			}
		})
	}
}

func TestSelectProducer_FlagEndpointUsed(t *testing.T) {
	origEndpoint := endpointFlag
	defer func() { endpointFlag = origEndpoint }()

	endpointFlag = "http://localhost:9999/chat"
	cfg, err := config.LoadFrom(filepath.Join(t.TempDir(), "config.json"))
	if err != nil {
		t.Fatal(err)
	}
	cfg.SetEndpoint("http://localhost:8000/chat")

	producer := selectProducer(cfg)
	h, ok := producer.(interface{ Endpoint() string })
	if !ok {
		t.Fatal("http producer should expose its endpoint")
	}
	if h.Endpoint() != "http://localhost:9999/chat" {
		t.Errorf("endpoint = %q, want the flag value", h.Endpoint())
	}
}
