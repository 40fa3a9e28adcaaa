package datephrase

// timeZoneAbbreviations is the closed set of zone abbreviations accepted after a
// date or clock. Several names stand for more than one real zone (AST, BST, CST,
// IST, ...); they are listed once per zone and are never disambiguated here.
var timeZoneAbbreviations = []string{
	"ACDT", "ACST", "ACT", "ACT", "ACWST", "ADT", "AEDT", "AEST", "AFT", "AKDT",
	"AKST", "AMST", "AMT", "AMT", "ART", "AST", "AST", "AWST", "AZOST", "AZOT",
	"AZT", "BDT", "BIOT", "BIT", "BOT", "BRST", "BRT", "BST", "BST", "BST",
	"BTT", "CAT", "CCT", "CDT", "CDT", "CEST", "CET", "CHADT", "CHAST", "CHOST",
	"CHOT", "CHST", "CHUT", "CIST", "CIT", "CKT", "CLST", "CLT", "COST", "COT",
	"CST", "CST", "CST", "CVT", "CWST", "CXT", "DAVT", "DDUT", "DFT", "EASST",
	"EAST", "EAT", "ECT", "ECT", "EDT", "EEST", "EET", "EGST", "EGT", "EIT",
	"EST", "FET", "FJT", "FKST", "FKT", "FNT", "GALT", "GAMT", "GET", "GFT",
	"GILT", "GIT", "GMT", "GST", "GST", "GYT", "HAEC", "HDT", "HKT", "HMT",
	"HOVST", "HOVT", "HST", "ICT", "IDLW", "IDT", "IOT", "IRDT", "IRKT", "IRST",
	"IST", "IST", "IST", "JST", "KALT", "KGT", "KOST", "KRAT", "KST", "LHST",
	"LHST", "LINT", "MAGT", "MART", "MAWT", "MDT", "MEST", "MET", "MHT", "MIST",
	"MIT", "MMT", "MSK", "MST", "MST", "MUT", "MVT", "MYT", "NCT", "NDT",
	"NFT", "NOVT", "NPT", "NST", "NUT", "NZDT", "NZST", "OMST", "ORAT", "PDT",
	"PET", "PETT", "PGT", "PHOT", "PHT", "PKT", "PMDT", "PMST", "PONT", "PST",
	"PST", "PYST", "PYT", "RET", "ROTT", "SAKT", "SAMT", "SAST", "SBT", "SCT",
	"SDT", "SGT", "SLST", "SRET", "SRT", "SST", "SST", "SYOT", "TAHT", "TFT",
	"THA", "TJT", "TKT", "TLT", "TMT", "TOT", "TRT", "TVT", "UCT", "ULAST",
	"ULAT", "UTC", "UYST", "UYT", "UZT", "VET", "VLAT", "VOLT", "VOST", "VUT",
	"WAKT", "WAST", "WAT", "WEST", "WET", "WGST", "WGT", "WIT", "WST", "YAKT",
	"YEKT",
}
