package main

import (
	"log"
	"strconv"

	"gitlab.com/dirk.krummacker/contactmgr/internal/service"
)

// Usage example on the command line:
// > PORT=8080 DBPATH=contactmgr.db GIN_MODE=release GIN_LOGGING=OFF go run main.go
func main() {
	cfg, err := service.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}
	s := service.CreateStore(cfg)
	defer s.Close()
	service.SetupStore(s)
	router := service.SetupHttpRouter(cfg)
	if err := router.Run(":" + strconv.Itoa(cfg.Port)); err != nil {
		log.Println(err)
	}
}
