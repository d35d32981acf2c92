// cmd/menukit/main.go
package main

import "github.com/menukit/menukit/internal/app"

func main() {
	app.Run()
}
