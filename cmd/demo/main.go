package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"aggregat4/jwttoken/internal/logging"
	"aggregat4/jwttoken/pkg/client"
)

var logger = logging.ForComponent("cmd.demo")

// Logs in against a running server and prints the protected forecasts.
func main() {
	var baseUrl, username, password string
	flag.StringVar(&baseUrl, "baseurl", "http://localhost:1323", "Base URL of the server")
	flag.StringVar(&username, "username", "Admin", "User name to log in with")
	flag.StringVar(&password, "password", "Admin@123", "Password to log in with")
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	c := client.New(baseUrl)
	response, err := c.Login(ctx, username, password)
	if err != nil {
		logging.Fatal(logger, "Login as {UserName} failed: {Error}", username, err)
	}
	logging.Info(logger, "Logged in as {UserName}", response.User)
	fmt.Println(response.Token)

	forecasts, err := c.Forecasts(ctx, response.Token)
	if err != nil {
		logging.Fatal(logger, "Fetching forecasts failed: {Error}", err)
	}
	for _, f := range forecasts {
		fmt.Printf("%s  %4d°C  %-10s  %s\n", f.Date, f.TemperatureC, f.Summary, f.Guid)
	}
}
