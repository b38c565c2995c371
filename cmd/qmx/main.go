package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"

	qmxroot "github.com/pborges/qmx"
	qmxlib "github.com/pborges/qmx/internal/qmx"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "-v", "version":
		fmt.Println(qmxroot.Version())
	case "simplify":
		if err := cmdSimplify(os.Args[2:]); err != nil {
			color.Red("error: %v", err)
			os.Exit(1)
		}
	case "help", "-h", "--help":
		usage()
	default:
		color.Red("unknown command: %s", os.Args[1])
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("qmx - Quine-McCluskey boolean function minimizer")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  qmx simplify -ones 1,2,5,6 [-dc 0,3] [-bits 4] [-xor] [-profile]")
	fmt.Println("  qmx version")
	fmt.Println("  qmx -v")
}

func cmdSimplify(args []string) error {
	fs := flag.NewFlagSet("simplify", flag.ContinueOnError)
	onesFlag := fs.String("ones", "", "comma-separated list of required minterms")
	dcFlag := fs.String("dc", "", "comma-separated list of don't-care minterms")
	bitsFlag := fs.Int("bits", 0, "bit width (0 = infer from inputs)")
	useXor := fs.Bool("xor", false, "enable XOR/XNOR parity terms")
	showProfile := fs.Bool("profile", false, "print merge-attempt profile counters")
	if err := fs.Parse(args); err != nil {
		return err
	}

	ones, err := parseIntList(*onesFlag)
	if err != nil {
		return fmt.Errorf("-ones: %w", err)
	}
	dc, err := parseIntList(*dcFlag)
	if err != nil {
		return fmt.Errorf("-dc: %w", err)
	}

	var numBits *int
	if *bitsFlag > 0 {
		numBits = bitsFlag
	}

	result, profile := qmxlib.SimplifyWithProfile(ones, dc, numBits, *useXor)
	if !result.Ok {
		return errors.New("no result (empty input)")
	}

	for _, imp := range result.Implicants.Slice() {
		fmt.Println(imp)
	}
	if *showProfile {
		color.Green("cmp=%d xor=%d xnor=%d", profile.Cmp, profile.Xor, profile.Xnor)
	}
	return nil
}

func parseIntList(s string) ([]int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	fields := strings.Split(s, ",")
	out := make([]int, 0, len(fields))
	for _, f := range fields {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("%q is not an integer: %w", f, err)
		}
		if v < 0 {
			return nil, fmt.Errorf("%q must be non-negative", f)
		}
		out = append(out, v)
	}
	return out, nil
}
