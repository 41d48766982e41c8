// Command plistctl inspects, converts and edits property list files.
package main

func main() {
	execute()
}
