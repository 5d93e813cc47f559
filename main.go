/*
Copyright © 2023 Glossopoeia
*/
package main

import "github.com/glossopoeia/interlang/cmd"

func main() {
	cmd.Execute()
}
