// Package report turns derived statistics into a single HTML page.
//
// Build assembles a Document (summary tiles, fun facts and Plotly chart
// specifications) and Render writes it through html/template. The page has no
// timestamps or random identifiers, so identical statistics always render to
// identical bytes.
package report
