package main

import "github.com/aravindcleaerr/DietWise/cmd/dietwise"

func main() {
	dietwise.Execute()
}
