// Command genhash prints the bcrypt hash stored for a password, for seeding
// users by hand.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/FranCa26/InvenLink-24-7/internal/service"
)

func main() {
	password := flag.String("password", "", "contraseña a hashear")
	flag.Parse()
	if *password == "" {
		fmt.Fprintln(os.Stderr, "uso: genhash -password <contraseña>")
		os.Exit(2)
	}
	h, err := service.HashPassword(*password)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Println(h)
}
