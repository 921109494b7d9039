//go:build vsslegacy

package vss

// Pre-Win2008 targets have no VSS_E_TRANSACTION_THAW_TIMEOUT in the native
// headers; the generic unexpected sentinel stands in for it.
const codeTransactionThawTimeout = E_UNEXPECTED
