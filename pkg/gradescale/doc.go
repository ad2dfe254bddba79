// Package gradescale converts decimal grades into GPA values through
// ordered breakpoint tables.
//
// A Scale is a step function: the entry with the greatest minimum not
// exceeding the grade decides the GPA. Grades are never interpolated
// between breakpoints and never clamped into range. Three published
// conversion references ship as DefaultScales; custom tables pass the
// same validation when registered.
package gradescale
