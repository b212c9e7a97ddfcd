package main

import (
	"github.com/thereayou/babbel/cmd/server"
)

func main() {
	server.NewServer().Run()
}
