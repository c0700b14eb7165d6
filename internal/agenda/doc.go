// Package agenda turns extracted calendar section text into an Org-mode
// agenda document: one heading per event plus a machine-readable date
// stamp, with exam-sequence annotations carried across section lines.
package agenda
