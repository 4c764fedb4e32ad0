// Package models defines data structures for workbook inspection.
package models

// Workbook is the workbook-level view: file name and sheet order.
type Workbook struct {
	// BookName is the workbook file name (no path).
	BookName string
	// SheetNames lists sheets in the order the workbook declares them.
	SheetNames []string
}
