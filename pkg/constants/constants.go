// Package constants provides shared constants for the sip-forecast application.
package constants

// Financial constants
const (
	// MonthsPerYear is the number of months in a year
	MonthsPerYear = 12

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0

	// RelativeTolerance is the relative tolerance used when comparing two
	// evaluations of the same closed-form projection.
	RelativeTolerance = 1e-9
)

// Projection modes
const (
	// ModeSIP is a fixed monthly contribution compounding monthly.
	ModeSIP = "sip"

	// ModeLumpsum is a single upfront principal compounding annually.
	ModeLumpsum = "lumpsum"
)

// Defaults used by the command line when a flag is not supplied.
const (
	DefaultSIPAmount        = 25000.0
	DefaultLumpsumAmount    = 1000000.0
	DefaultAnnualReturnRate = 12.0
	DefaultYears            = 10
)

// Recommended input ranges. The engine never enforces these; collaborators
// use them to warn about unusual inputs.
const (
	MinSIPAmount     = 1000.0
	MaxSIPAmount     = 100000.0
	MinLumpsumAmount = 1000.0
	MaxLumpsumAmount = 10000000.0
	MinAnnualRate    = 1.0
	MaxAnnualRate    = 30.0
	MinYears         = 1
	MaxYears         = 30
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"

	// OutputFormatJSON is the JSON output format
	OutputFormatJSON = "json"

	// OutputFormatYAML is the YAML output format
	OutputFormatYAML = "yaml"
)

// OutputFormats lists every supported output format.
var OutputFormats = []string{OutputFormatPretty, OutputFormatCSV, OutputFormatJSON, OutputFormatYAML}

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// ExampleConfigFile is the example configuration file name
	ExampleConfigFile = "config.yaml.example"

	// EnvPrefix is the prefix for environment variable overrides
	EnvPrefix = "SIPFORECAST"
)

// Currency display constants
const (
	// CurrencySymbol is the rupee sign used for all displayed amounts
	CurrencySymbol = "₹"
)
