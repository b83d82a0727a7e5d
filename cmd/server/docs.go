package main

//go:generate swag init -g cmd/server/main.go -o docs

// @title           TradeScope API
// @version         0.1.0
// @description     Trading journal: accounts, trades, statistics, monthly statements and xlsx export.
// @host            localhost:8080
// @BasePath        /
// @schemes         http
