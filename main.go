package main

import "github.com/nomoyu/create-prev-app/cmd"

func main() {
	cmd.Execute()
}
