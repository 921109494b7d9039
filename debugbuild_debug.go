//go:build vssdebug

package vss

const debugBuild = true
