//go:build ignore

package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
)

func main() {

	resp, err := http.Get("https://www.iana.org/assignments/service-names-port-numbers/service-names-port-numbers.csv")
	if err != nil {
		panic(err)
	}
	defer resp.Body.Close()

	// run from the scan directory by go generate
	output, err := os.Create("known.go")
	if err != nil {
		panic(err)
	}
	defer output.Close()

	output.Write([]byte(`package scan

// data from https://www.iana.org/assignments/service-names-port-numbers/service-names-port-numbers.csv
var knownPorts = map[uint16]string{`))

	lastPort := ""
	reader := csv.NewReader(resp.Body)
	for {
		// read one row from csv
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			panic(err)
		}

		if len(record) < 3 || record[2] != "tcp" || record[0] == "" || record[1] == "" || record[1] == lastPort {
			continue
		}

		// skip ranges such as "6000-6063" and anything outside uint16
		if port, err := strconv.Atoi(record[1]); err != nil || port < 1 || port > 65535 {
			continue
		}

		lastPort = record[1]
		fmt.Fprintf(output, "\n\t%s: %q,", record[1], record[0])

	}

	output.Write([]byte(`
}
`))
}
