// Package main provides the entry point for the StockWatch-Admin service.
// It runs a web server using the Fiber framework through which an operator
// manages the stock watchlist, API credentials, mail settings and scheduled
// analysis runs. Settings are persisted with gorm in a key/value table;
// credential values are encrypted at rest and rendered masked in the UI.
package main
