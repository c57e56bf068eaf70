package main

import (
	"os"

	"github.com/StockWatch-Admin/StockWatch-Admin/app"
)

func main() {
	err := app.Execute()
	if err != nil {
		os.Exit(1)
	}
}
