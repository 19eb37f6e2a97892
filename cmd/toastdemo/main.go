// Command toastdemo is an interactive showcase for toastui.
package main

func main() {
	Execute()
}
