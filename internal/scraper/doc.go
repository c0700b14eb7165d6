// Package scraper fetches the academic calendar page and extracts the raw
// text fragments the agenda builder consumes: section body lines, holiday
// table rows and science-week date blurbs.
package scraper
