// Command cgshop2023verify checks minimum-convex-cover solutions against
// their instance domains, either one file pair at a time or in bulk over
// a ZIP archive of solutions.
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/cgshop2023/verifier/archive"
	"github.com/cgshop2023/verifier/instancedb"
	"github.com/cgshop2023/verifier/ioformat"
	"github.com/cgshop2023/verifier/verify"
)

func main() {
	cmd := &cli.Command{
		Name:  "cgshop2023verify",
		Usage: "Verify minimum convex cover solutions against their instance domains",
		Commands: []*cli.Command{
			verifyCommand(),
			verifyInstanceCommand(),
			scanArchiveCommand(),
		},
		HideVersion: true,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func verifyCommand() *cli.Command {
	return &cli.Command{
		Name:  "verify",
		Usage: "Verify a solution file against an instance file",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "instance", Required: true, OnlyOnce: true},
			&cli.StringFlag{Name: "solution", Required: true, OnlyOnce: true},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			inst, err := ioformat.ReadInstanceFile(cmd.String("instance"))
			if err != nil {
				return fmt.Errorf("reading instance: %w", err)
			}
			sol, err := ioformat.ReadSolutionFile(cmd.String("solution"))
			if err != nil {
				return fmt.Errorf("reading solution: %w", err)
			}
			diagnostic := verify.Verify(inst.Region, sol.Polygons)
			if diagnostic == "" {
				fmt.Println("OK")
				return nil
			}
			fmt.Println(diagnostic)
			return cli.Exit("", 1)
		},
	}
}

func verifyInstanceCommand() *cli.Command {
	return &cli.Command{
		Name:  "verify-instance",
		Usage: "Check that an instance document describes a valid polygonal domain",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "instance", Required: true, OnlyOnce: true},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			inst, err := ioformat.ReadInstanceFile(cmd.String("instance"))
			if err != nil {
				return fmt.Errorf("reading instance: %w", err)
			}
			if verify.VerifyInstance(inst.Region) {
				fmt.Println("valid")
				return nil
			}
			fmt.Println("invalid")
			return cli.Exit("", 1)
		},
	}
}

func scanArchiveCommand() *cli.Command {
	return &cli.Command{
		Name:  "scan-archive",
		Usage: "Verify every solution found in a ZIP archive against an instance database",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "zip", Required: true, OnlyOnce: true},
			&cli.StringFlag{Name: "instance-db", Required: true, OnlyOnce: true},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			db, err := instancedb.Open(cmd.String("instance-db"), instancedb.WithCache())
			if err != nil {
				return fmt.Errorf("opening instance database: %w", err)
			}
			defer db.Close()

			var total, ok, failed int
			for result, err := range archive.ScanSolutions(cmd.String("zip")) {
				if err != nil {
					failed++
					fmt.Printf("%s: %v\n", result.FileName, err)
					continue
				}
				total++

				inst, err := db.Get(result.Solution.InstanceName)
				if err != nil {
					failed++
					fmt.Printf("%s: %v\n", result.FileName, err)
					continue
				}

				diagnostic := verify.Verify(inst.Region, result.Solution.Polygons)
				if diagnostic == "" {
					ok++
					fmt.Printf("%s: OK\n", result.FileName)
				} else {
					failed++
					fmt.Printf("%s: %s\n", result.FileName, diagnostic)
				}
			}

			fmt.Printf("\n%d solutions verified, %d passed, %d failed\n", total, ok, failed)
			if failed > 0 {
				return cli.Exit("", 1)
			}
			return nil
		},
	}
}
