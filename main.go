package main

import "github.com/Klassiq901/ThermoApp/cmd"

func main() {
	cmd.Execute()
}
