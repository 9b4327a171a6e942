package cmd

import (
	"bufio"
	"fmt"
	"io/ioutil"
	"os"

	yaml "gopkg.in/yaml.v2"

	"github.com/arl/go-distmesh/distmesh"
)

// confirmIfExists reports whether it is safe to write to path: true if
// path doesn't exist yet, or if the user confirms overwriting msg.
func confirmIfExists(path, msg string) (ok bool, err error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return true, nil
		}
		return false, err
	}
	return askForConfirmation(msg), nil
}

// askForConfirmation prints msg and waits for a y/n answer on stdin;
// ENTER defaults to no.
func askForConfirmation(msg string) bool {
	fmt.Println(msg)
	reader := bufio.NewReader(os.Stdin)
	for {
		input, _ := reader.ReadString('\n')
		if len(input) == 0 {
			return false
		}
		switch input[0] {
		case 'Y', 'y':
			return true
		case 'N', 'n', '\n':
			return false
		}
	}
}

func loadSettings(path string) (distmesh.Settings, error) {
	var s distmesh.Settings
	buf, err := ioutil.ReadFile(path)
	if err != nil {
		return s, err
	}
	if err := yaml.Unmarshal(buf, &s); err != nil {
		return s, err
	}
	return s, nil
}

func check(err error) {
	if err != nil {
		fmt.Printf("error, %v\n", err)
		os.Exit(1)
	}
}
