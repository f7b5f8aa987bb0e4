package main

import "github.com/ivucicev/zenfast/cmd/zenfast"

func main() {
	zenfast.Execute()
}
