// Package parser reads worksheets into typed tables.
package parser
