// Package visualization renders mining inputs and outputs as image files with
// gonum/plot: a support/confidence rule scatter, a Cramér's V heatmap, and bar
// charts of value frequencies. The format follows the file extension
// (.png, .svg, .pdf, ...).
package visualization
