package main

// @title Walletd API
// @version 1.0
// @description Currency conversion and spend-authorization wallet service.

// @host localhost:8080
// @BasePath /
func main() {
	Execute()
}
