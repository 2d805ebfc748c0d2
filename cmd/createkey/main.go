package main

import (
	"flag"
	"fmt"

	"aggregat4/jwttoken/internal/logging"
	"aggregat4/jwttoken/pkg/crypto"
)

var logger = logging.ForComponent("cmd.createkey")

// Prints a random secret that can be used as JWT.Key.
func main() {
	var length int
	flag.IntVar(&length, "bytes", 32, "Number of random bytes in the generated secret")
	flag.Parse()

	secret, err := crypto.GenerateSecret(length)
	if err != nil {
		logging.Fatal(logger, "Error generating secret: {Error}", err)
	}
	fmt.Println(secret)
}
