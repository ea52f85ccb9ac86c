package main

import "github.com/nfrund/instaclone/cmd/instaclone-cli/cmd"

func main() {
	cmd.Execute()
}
