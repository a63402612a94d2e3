// Package parser provides workbook parsing utilities.
package parser
