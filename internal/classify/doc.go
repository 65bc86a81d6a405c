// Package classify assigns every original issue exactly one coverage case.
//
// Per page, coverage follows a strict format-preference order: tif wins
// over png, png over jpg; a page matched by none is missing. The whole
// issue is then classified into one of eleven mutually exclusive terminal
// categories covering container health, homogeneous and heterogeneous
// format coverage, and missing pages.
package classify
