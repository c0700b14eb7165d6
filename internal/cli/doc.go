// Package cli implements the cal2org command line interface.
package cli
