/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package main

import "github.com/prodcalc/tracker/cmd"

func main() {
	cmd.Execute()
}
