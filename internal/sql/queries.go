package sql

import "embed"

// Migrations holds the schema DDL, applied in filename order.
//
//go:embed migrations/*.sql
var Migrations embed.FS

//go:embed queries/register_run.sql
var RegisterRun string

//go:embed queries/lookup_completed_run.sql
var LookupCompletedRun string

//go:embed queries/update_run_status.sql
var UpdateRunStatus string

//go:embed queries/finalize_run.sql
var FinalizeRun string

//go:embed queries/reject_counts.sql
var RejectCounts string

//go:embed queries/delete_run_rows.sql
var DeleteRunRows string

//go:embed queries/supersede_runs.sql
var SupersedeRuns string

//go:embed queries/analyze_parsed_phrases.sql
var AnalyzeParsedPhrases string
