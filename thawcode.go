//go:build !vsslegacy

package vss

// codeTransactionThawTimeout is the status code bound to the thaw timeout
// error class. API generations before Win2008 do not define
// VSS_E_TRANSACTION_THAW_TIMEOUT; builds targeting them substitute
// E_UNEXPECTED (see thawcode_legacy.go) so code comparisons stay
// well-defined everywhere.
const codeTransactionThawTimeout = VSS_E_TRANSACTION_THAW_TIMEOUT
