package main

import "github.com/wikigeo/geohist/cmd"

func main() {
	cmd.Execute()
}
