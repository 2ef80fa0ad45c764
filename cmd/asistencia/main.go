package main

import "github.com/asistencia/asistencia-backend-go/internal/cli"

func main() {
	cli.Execute()
}
