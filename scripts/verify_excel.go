// Command verify_excel sanity-checks a generated Excel report's "Packages"
// sheet: every Ca/Ce must be non-negative and every A/I/D must fall in
// [0, 1], per spec.md §4.F's metric bounds. Standalone excelize reader,
// per-row column checks, pass/fail summary.
package main

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/xuri/excelize/v2"
)

func main() {
	filename := "output/depscan-report.xlsx"
	if len(os.Args) > 1 {
		filename = os.Args[1]
	}

	f, err := excelize.OpenFile(filename)
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	sheetName := "Packages"
	rows, err := f.GetRows(sheetName)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("=== EXCEL METRIC BOUNDS CHECK: %s ===\n", filename)
	fmt.Printf("Checking sheet: %s\n", sheetName)
	fmt.Printf("Total rows: %d\n\n", len(rows))

	// Columns: A=Package B=Classes C=Ca D=Ce E=A F=I G=D H=Cycle
	foundViolation := false
	for i, row := range rows {
		if i == 0 || len(row) < 7 {
			continue
		}
		pkg := row[0]

		if v, err := strconv.Atoi(row[2]); err == nil && v < 0 {
			fmt.Printf("VIOLATION at row %d (%s): Ca = %d < 0\n", i+1, pkg, v)
			foundViolation = true
		}
		if v, err := strconv.Atoi(row[3]); err == nil && v < 0 {
			fmt.Printf("VIOLATION at row %d (%s): Ce = %d < 0\n", i+1, pkg, v)
			foundViolation = true
		}
		for col, label := range map[int]string{4: "A", 5: "I", 6: "D"} {
			v, err := strconv.ParseFloat(row[col], 64)
			if err != nil {
				continue
			}
			if v < 0 || v > 1 {
				fmt.Printf("VIOLATION at row %d (%s): %s = %.2f outside [0,1]\n", i+1, pkg, label, v)
				foundViolation = true
			}
		}
	}

	fmt.Println()
	if !foundViolation {
		fmt.Println("PASS: all metric values are within their documented bounds.")
	} else {
		fmt.Println("FAIL: one or more packages violate the metric bounds.")
		os.Exit(1)
	}
}
