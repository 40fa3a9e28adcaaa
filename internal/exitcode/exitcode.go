package exitcode

const (
	Success         = 0
	UsageError      = 1
	ValidationError = 2
	DBConnError     = 3
	CopyError       = 4
	ParseError      = 5 // no phrase parsed
	PartialSuccess  = 6 // some phrases parsed
	WriteError      = 7
)
