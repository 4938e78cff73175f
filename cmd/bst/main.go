// Command bst is an interactive console driver for the binary search tree.
// It holds a single tree for the lifetime of the process and dispatches the
// core operations from a numbered menu.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"bst_code/bst"
)

const menu = `
[1] Insert Node
[2] Delete Node
[3] Find a Node
[4] Get current Height
[5] Print Tree in Crescent Order
[6] Print Tree
[0] Quit
`

func main() {
	tree := bst.New()
	in := bufio.NewScanner(os.Stdin)

	for {
		fmt.Print(menu)
		opt, ok := readNumber(in, "")
		if !ok || opt == 0 {
			break
		}

		switch opt {
		case 1:
			key, ok := readNumber(in, "Enter the new node's value:")
			if ok {
				tree.Insert(key)
			}
		case 2:
			if tree.Size() == 0 {
				fmt.Println("Tree is already empty!")
				break
			}
			key, ok := readNumber(in, "Enter the value to be removed:")
			if ok {
				tree.Delete(key)
			}
		case 3:
			key, ok := readNumber(in, "Enter the searched value:")
			if !ok {
				break
			}
			if tree.Contains(key) {
				fmt.Println("The value is in the tree.")
			} else {
				fmt.Println("The value is not in the tree.")
			}
		case 4:
			fmt.Printf("Current height of the tree is: %d\n", tree.Height())
		case 5:
			for key := range tree.InOrder() {
				fmt.Printf("\t[ %d ]\t", key)
			}
			fmt.Println()
		case 6:
			tree.Dump(os.Stdout)
		}
	}

	tree.Clear()
}

// readNumber prompts for and reads one unsigned number, re-prompting on
// unparsable input. ok is false once stdin is exhausted.
func readNumber(in *bufio.Scanner, prompt string) (uint64, bool) {
	if prompt != "" {
		fmt.Println(prompt)
	}
	for in.Scan() {
		v, err := strconv.ParseUint(strings.TrimSpace(in.Text()), 10, 64)
		if err != nil {
			fmt.Println("Please enter a number.")
			continue
		}
		return v, true
	}
	return 0, false
}
