// Package builder defines shared constants used by the dataset builders,
// keeping defaults, keyword names and error prefixes in one place.
package builder

//-----------------------------------------------------------------------------
// Builder Method Name Constants
//   used to prefix errors with the entry-point name for context.
//-----------------------------------------------------------------------------

const (
	// MethodBalanced is the canonical name for the Balanced constructor.
	MethodBalanced = "Balanced"
	// MethodDemoData is the canonical name for the DemoData constructor.
	MethodDemoData = "DemoData"
	// MethodParseFactorArgs is the canonical name for ParseFactorArgs.
	MethodParseFactorArgs = "ParseFactorArgs"
	// MethodParseDemoArgs is the canonical name for ParseDemoArgs.
	MethodParseDemoArgs = "ParseDemoArgs"
)

//-----------------------------------------------------------------------------
// Defaults
//-----------------------------------------------------------------------------

const (
	// DefaultRepeat is the number of replicates produced by Balanced when the
	// caller does not ask for more.
	DefaultRepeat = 1
	// DefaultLevels is the level count given to every categorical demo variable.
	DefaultLevels = 2
	// DefaultMinRows is the minimum number of demo observations.
	DefaultMinRows = 5
	// DefaultSeed is the fixed seed of the numeric demo columns. Identical
	// DemoData calls therefore return bit-identical numbers.
	DefaultSeed int64 = 0
)

// MaxRows caps the row count of any generated table (product of level counts
// times replicates). It keeps the product arithmetic far away from int overflow.
const MaxRows = 1 << 24

//-----------------------------------------------------------------------------
// Keyword names accepted by the argument parsers
//-----------------------------------------------------------------------------

const (
	// KeyRepeat is the reserved factor keyword that sets the replicate count.
	KeyRepeat = "repeat"
	// KeyLevels sets the categorical level count of DemoData.
	KeyLevels = "nlevels"
	// KeyMinRows sets the minimum row count of DemoData.
	KeyMinRows = "min_rows"
)

// kvSep separates keyword and value in "name=count" arguments.
const kvSep = "="

//-----------------------------------------------------------------------------
// Variable naming convention
//-----------------------------------------------------------------------------

const (
	firstCategorical = 'a' // categorical names start with a..n
	lastCategorical  = 'n'
	firstNumeric     = 'p' // numeric names start with p..z
	lastNumeric      = 'z'
)
