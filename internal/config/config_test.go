package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gyeh/datenorm/internal/datephrase"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadFromFile_Valid(t *testing.T) {
	path := writeConfig(t, "order: consistent\nbatch_size: 256\nlog_level: debug\n")

	var c Config
	if err := c.LoadFromFile(path); err != nil {
		t.Fatalf("LoadFromFile: %v", err)
	}
	if c.Order != OrderConsistent {
		t.Errorf("expected order consistent, got %q", c.Order)
	}
	if c.BatchSize != 256 {
		t.Errorf("expected batch size 256, got %d", c.BatchSize)
	}
	if c.SampleSize != DefaultSampleSize {
		t.Errorf("expected default sample size, got %d", c.SampleSize)
	}
	if c.LogLevel != "debug" {
		t.Errorf("expected log level debug, got %q", c.LogLevel)
	}
}

func TestLoadFromFile_UnknownOrder(t *testing.T) {
	path := writeConfig(t, "order: ymd\n")

	var c Config
	if err := c.LoadFromFile(path); err == nil {
		t.Fatal("expected error for unknown order")
	}
}

func TestLoadFromFile_NegativeBatch(t *testing.T) {
	path := writeConfig(t, "batch_size: -1\n")

	var c Config
	if err := c.LoadFromFile(path); err == nil {
		t.Fatal("expected error for negative batch size")
	}
}

func TestLoadFromFile_EmptyDefaults(t *testing.T) {
	path := writeConfig(t, "{}\n")

	var c Config
	if err := c.LoadFromFile(path); err != nil {
		t.Fatalf("LoadFromFile: %v", err)
	}
	if c.Order != OrderMDY || c.BatchSize != DefaultBatchSize {
		t.Errorf("unexpected defaults: order=%q batch=%d", c.Order, c.BatchSize)
	}
}

func TestLoadFromFile_KeepsFlagValues(t *testing.T) {
	path := writeConfig(t, "batch_size: 10\n")

	c := Config{Order: OrderDMY}
	if err := c.LoadFromFile(path); err != nil {
		t.Fatalf("LoadFromFile: %v", err)
	}
	if c.Order != OrderDMY {
		t.Errorf("file without order overrode flag value: %q", c.Order)
	}
}

func TestLoadFromFile_MissingFile(t *testing.T) {
	var c Config
	if err := c.LoadFromFile("/nonexistent/config.yaml"); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestFixedOrder(t *testing.T) {
	tests := []struct {
		order string
		want  datephrase.Order
		fixed bool
	}{
		{order: OrderMDY, want: datephrase.MonthFirst, fixed: true},
		{order: OrderDMY, want: datephrase.DayFirst, fixed: true},
		{order: OrderConsistent, fixed: false},
	}
	for _, tt := range tests {
		c := Config{Order: tt.order}
		got, ok := c.FixedOrder()
		if ok != tt.fixed || (ok && got != tt.want) {
			t.Errorf("FixedOrder(%q) = %v, %v", tt.order, got, ok)
		}
	}
}

func TestValidateWithOutput(t *testing.T) {
	in := writeConfig(t, "")
	c := Config{FilePath: in}
	if err := c.ValidateWithOutput(); err == nil {
		t.Error("expected error without --out")
	}
	c.OutPath = in
	if err := c.ValidateWithOutput(); err == nil {
		t.Error("expected error when --out equals --file")
	}
	c.OutPath = filepath.Join(t.TempDir(), "out.parquet")
	if err := c.ValidateWithOutput(); err != nil {
		t.Errorf("ValidateWithOutput: %v", err)
	}
}

func TestValidateTuning_FlagOrder(t *testing.T) {
	c := Config{Order: "ymd"}
	if err := c.ValidateTuning(); err == nil {
		t.Error("expected error for unknown order")
	}
	c = Config{Order: OrderDMY}
	if err := c.ValidateTuning(); err != nil {
		t.Fatalf("ValidateTuning: %v", err)
	}
	if c.BatchSize != DefaultBatchSize || c.SampleSize != DefaultSampleSize {
		t.Errorf("defaults not applied: %+v", c)
	}
}
