package ingest

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/parquet-go/parquet-go"
	"github.com/rs/zerolog"

	"github.com/gyeh/datenorm/internal/config"
	"github.com/gyeh/datenorm/internal/datephrase"
	"github.com/gyeh/datenorm/internal/model"
	"github.com/gyeh/datenorm/internal/phrasefile"
)

// mixedPhrases covers one of each outcome under the month-first policy.
var mixedPhrases = []string{
	"2014-11-27",
	"27/11/2014",
	"hello world",
	"13/13/2014",
	"30 Feb 2014",
	"  27   November 2014 ",
}

func writePhrases(t *testing.T, phrases ...string) string {
	t.Helper()
	rows := make([]model.PhraseRow, len(phrases))
	for i, p := range phrases {
		id := int64(100 + i)
		rows[i] = model.PhraseRow{ID: &id, Phrase: p}
	}
	path := filepath.Join(t.TempDir(), "phrases.parquet")
	if err := phrasefile.WritePhrases(path, rows); err != nil {
		t.Fatalf("WritePhrases: %v", err)
	}
	return path
}

func testConfig(path, order string) *config.Config {
	return &config.Config{
		FilePath:   path,
		OutPath:    filepath.Join(filepath.Dir(path), "results.parquet"),
		Order:      order,
		BatchSize:  2,
		SampleSize: 4,
	}
}

func TestConvert(t *testing.T) {
	cfg := testConfig(writePhrases(t, mixedPhrases...), config.OrderMDY)

	summary, err := Convert(context.Background(), zerolog.Nop(), cfg)
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	if summary.RowsRead != 6 || summary.RowsParsed != 3 || summary.RowsRejected != 3 || summary.RowsWritten != 6 {
		t.Errorf("summary = %+v", summary)
	}
	for _, reason := range []string{model.ReasonNoMatch, model.ReasonAmbiguous, model.ReasonCalendar} {
		if summary.RejectsByKind[reason] != 1 {
			t.Errorf("RejectsByKind[%s] = %d; want 1", reason, summary.RejectsByKind[reason])
		}
	}
	if summary.Order != "month-first" {
		t.Errorf("Order = %q", summary.Order)
	}

	got, err := parquet.ReadFile[model.ResultRecord](cfg.OutPath)
	if err != nil {
		t.Fatalf("read results: %v", err)
	}
	if len(got) != 6 {
		t.Fatalf("got %d records; want 6", len(got))
	}

	wantValues := []string{"2014-11-27T00:00:00Z", "2014-11-27T00:00:00Z", "", "", "", "2014-11-27T00:00:00Z"}
	for i, rec := range got {
		if rec.RowNumber != int64(i+1) {
			t.Errorf("record %d row_number = %d", i, rec.RowNumber)
		}
		if rec.PhraseID == nil || *rec.PhraseID != int64(100+i) {
			t.Errorf("record %d phrase_id = %v", i, rec.PhraseID)
		}
		if rec.Phrase != mixedPhrases[i] {
			t.Errorf("record %d phrase = %q; want %q", i, rec.Phrase, mixedPhrases[i])
		}
		switch {
		case wantValues[i] == "" && (rec.Value != nil || rec.Reason == nil):
			t.Errorf("record %d: want a rejection, got value=%v reason=%v", i, rec.Value, rec.Reason)
		case wantValues[i] != "" && (rec.Value == nil || *rec.Value != wantValues[i]):
			t.Errorf("record %d value = %v; want %s", i, rec.Value, wantValues[i])
		}
	}
	if got[5].Display == nil || *got[5].Display != "27 Nov 2014" {
		t.Errorf("display = %v; want 27 Nov 2014", got[5].Display)
	}
}

func TestConvert_ConsistentOrder(t *testing.T) {
	cfg := testConfig(writePhrases(t, "27/11/2014", "05/06/2014"), config.OrderConsistent)

	summary, err := Convert(context.Background(), zerolog.Nop(), cfg)
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	if summary.Order != "day-first" {
		t.Errorf("Order = %q; want day-first", summary.Order)
	}

	got, err := parquet.ReadFile[model.ResultRecord](cfg.OutPath)
	if err != nil {
		t.Fatalf("read results: %v", err)
	}
	if len(got) != 2 || got[1].Value == nil || *got[1].Value != "2014-06-05T00:00:00Z" {
		t.Errorf("05/06/2014 read day-first: %+v", got)
	}
}

func TestConvert_CanceledContext(t *testing.T) {
	cfg := testConfig(writePhrases(t, mixedPhrases...), config.OrderMDY)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Convert(ctx, zerolog.Nop(), cfg)
	var pe *PipelineError
	if !errors.As(err, &pe) || pe.Phase != "convert" {
		t.Fatalf("err = %v; want convert PipelineError", err)
	}
	if !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v; want context.Canceled", err)
	}
	if _, err := os.Stat(cfg.OutPath); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("partial results file still present: %v", err)
	}
}

func TestInspect_BadSchema(t *testing.T) {
	type other struct {
		Text string `parquet:"text"`
	}
	path := filepath.Join(t.TempDir(), "other.parquet")
	if err := parquet.WriteFile(path, []other{{Text: "2014-11-27"}}); err != nil {
		t.Fatal(err)
	}
	if _, err := Inspect(zerolog.Nop(), testConfig(path, config.OrderMDY)); err == nil {
		t.Fatal("expected schema error")
	}
}

func TestVoteOrder(t *testing.T) {
	tests := []struct {
		name    string
		phrases []string
		want    datephrase.Order
	}{
		{name: "no evidence", phrases: []string{"05/06/2014", "2014-11-27"}, want: datephrase.MonthFirst},
		{name: "day first", phrases: []string{"05/06/2014", "27/11/2014"}, want: datephrase.DayFirst},
		{name: "month first", phrases: []string{"05/06/2014", "11/27/2014"}, want: datephrase.MonthFirst},
		{name: "conflict", phrases: []string{"27/11/2014", "11/27/2014"}, want: datephrase.RejectAmbiguous},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := VoteOrder(writePhrases(t, tt.phrases...), 1)
			if err != nil {
				t.Fatalf("VoteOrder: %v", err)
			}
			if got != tt.want {
				t.Errorf("VoteOrder = %v; want %v", got, tt.want)
			}
		})
	}
}

func TestPlan(t *testing.T) {
	cfg := testConfig(writePhrases(t, mixedPhrases...), config.OrderMDY)

	report, err := Plan(zerolog.Nop(), cfg)
	if err != nil {
		t.Fatalf("Plan: %v", err)
	}
	if report.NumRows != 6 || report.Sampled != 4 || report.Parsed != 2 {
		t.Errorf("report = %+v", report)
	}
	if report.ParseRate() != 0.5 {
		t.Errorf("ParseRate = %v; want 0.5", report.ParseRate())
	}
	if len(report.Rejected) != 2 || report.Rejected[0] != "hello world" || report.Rejected[1] != "13/13/2014" {
		t.Errorf("Rejected = %q", report.Rejected)
	}
	if len(report.FileSHA256) != 64 {
		t.Errorf("FileSHA256 = %q", report.FileSHA256)
	}
}

func TestPipelineError(t *testing.T) {
	inner := errors.New("boom")
	err := error(&PipelineError{Phase: "stage", Err: inner})
	if err.Error() != "stage: boom" {
		t.Errorf("Error() = %q", err.Error())
	}
	if !errors.Is(err, inner) {
		t.Error("PipelineError does not unwrap")
	}
}
