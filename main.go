package main

import "github.com/msigor/code-smells-sonarqube-vs-llm/cmd"

func main() {
	cmd.Execute()
}
