// Command equations parses, evaluates, and canonicalizes expressions given as
// arguments or on stdin, one per line.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"math/big"
	"os"
	"strings"

	eqs "github.com/akeriat/equations"
)

func main() {
	log.SetFlags(0)
	var (
		verb string
		hash bool
		prec int
	)
	var given [][2]string
	addgiven := func(s string) error {
		d := strings.SplitN(s, "=", 2)
		if len(d) != 2 {
			return fmt.Errorf(`variable definitions must be "name=value", not %q`, s)
		}
		given = append(given, [2]string{strings.TrimSpace(d[0]), strings.TrimSpace(d[1])})
		return nil
	}
	flag.StringVar(&verb, "fmt", "%g", "result formatting string")
	flag.Func("given", "name=value variable definition (any number of times)", addgiven)
	flag.IntVar(&prec, "p", 64, "precision of calculations in bits")
	flag.BoolVar(&hash, "hash", false, "print canonical forms instead of evaluating")
	flag.Parse()
	if prec <= 0 {
		log.Fatalf("precision (%d) must be positive", prec)
	}

	vars := make(map[string]*big.Float, len(given))
	for _, d := range given {
		v, _, err := big.ParseFloat(d[1], 10, uint(prec), big.ToNearestEven)
		if err != nil {
			log.Fatalf("setting %s: %v", d[0], err)
		}
		vars[d[0]] = v
	}

	srcs := flag.Args()
	if len(srcs) == 0 {
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			if strings.TrimSpace(scanner.Text()) == "" {
				continue
			}
			srcs = append(srcs, scanner.Text())
		}
		if err := scanner.Err(); err != nil {
			log.Fatal(err)
		}
	}

	verb += "\n"
	for _, src := range srcs {
		root, err := eqs.Parse(src)
		if err != nil {
			log.Fatalf("%s: %v", src, err)
		}
		if hash {
			fmt.Println(eqs.Hash(root))
			continue
		}
		r, err := eqs.EvalBig(root, vars, uint(prec))
		if err != nil {
			log.Fatalf("%s: %v", src, err)
		}
		fmt.Printf(verb, r)
	}
}
