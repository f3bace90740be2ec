package main

import "github.com/geko990/quest-life-sub000/cmd/ql/root"

func main() {
	root.Execute()
}
