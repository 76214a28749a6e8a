package main

import (
	cmd "github.com/yomu-reader/yomu/cmd/yomu"
)

func main() {
	cmd.Execute()
}
