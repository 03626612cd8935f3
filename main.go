/*
Copyright © 2026 NAME HERE
*/
package main

import "github.com/masnyjimmy/specsheet/cmd"

func main() {
	cmd.Execute()
}
