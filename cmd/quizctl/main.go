// Command quizctl drives the generation and explanation pipeline from a
// terminal, without a database.
package main

import "os"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
