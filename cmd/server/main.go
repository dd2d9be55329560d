package main

import "rms/internal/app/server"

func main() {
	server.Run()
}
