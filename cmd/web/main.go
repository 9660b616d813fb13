package main

import "agency_admin/internal/app"

func main() {
	app.Run()
}
