// Copyright 2023 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command versionctl exercises the version package from the shell: parsing,
// comparing and ordering Versions, and parsing and combining VersionRanges.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v3"

	"github.com/johnathandinh/rez/version"
)

var log = logrus.New()

func main() {
	cmd := &cli.Command{
		Name:  "versionctl",
		Usage: "parse and compare package versions and version ranges",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "enable debug logging",
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			if cmd.Bool("verbose") {
				log.SetLevel(logrus.DebugLevel)
			}
			return ctx, nil
		},
		Commands: []*cli.Command{
			parseCmd(),
			compareCmd(),
			nextCmd(),
			rangeCmd(),
			containsCmd(),
			unionCmd(),
			intersectCmd(),
			subtractCmd(),
			complementCmd(),
			spanCmd(),
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.WithError(err).Error("versionctl failed")
		os.Exit(1)
	}
}

func parseCmd() *cli.Command {
	return &cli.Command{
		Name:      "parse",
		Usage:     "parse and re-render a version",
		ArgsUsage: "VERSION",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			v, err := version.Parse(cmd.Args().First())
			if err != nil {
				return err
			}
			log.WithField("tokens", v.Len()).Debug("parsed version")
			fmt.Println(v.String())
			return nil
		},
	}
}

func compareCmd() *cli.Command {
	return &cli.Command{
		Name:      "compare",
		Usage:     "compare two versions: prints -1, 0, or 1",
		ArgsUsage: "VERSION1 VERSION2",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			args := cmd.Args()
			if args.Len() != 2 {
				return fmt.Errorf("compare requires exactly two versions")
			}
			a, err := version.Parse(args.Get(0))
			if err != nil {
				return err
			}
			b, err := version.Parse(args.Get(1))
			if err != nil {
				return err
			}
			c := version.Compare(a, b)
			switch {
			case c < 0:
				fmt.Println(-1)
			case c > 0:
				fmt.Println(1)
			default:
				fmt.Println(0)
			}
			return nil
		},
	}
}

func nextCmd() *cli.Command {
	return &cli.Command{
		Name:      "next",
		Usage:     "print the successor of a version",
		ArgsUsage: "VERSION",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			v, err := version.Parse(cmd.Args().First())
			if err != nil {
				return err
			}
			next, err := v.Successor()
			if err != nil {
				return err
			}
			fmt.Println(next.String())
			return nil
		},
	}
}

func rangeCmd() *cli.Command {
	return &cli.Command{
		Name:      "range",
		Usage:     "parse and re-render a version range",
		ArgsUsage: "RANGE",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			r, err := version.ParseRange(cmd.Args().First())
			if err != nil {
				return err
			}
			log.WithField("universe", r.IsUniverse()).WithField("empty", r.IsEmpty()).Debug("parsed range")
			fmt.Println(r.String())
			return nil
		},
	}
}

func containsCmd() *cli.Command {
	return &cli.Command{
		Name:      "contains",
		Usage:     "report whether a range contains a version",
		ArgsUsage: "RANGE VERSION",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			args := cmd.Args()
			if args.Len() != 2 {
				return fmt.Errorf("contains requires a range and a version")
			}
			r, err := version.ParseRange(args.Get(0))
			if err != nil {
				return err
			}
			v, err := version.Parse(args.Get(1))
			if err != nil {
				return err
			}
			fmt.Println(r.ContainsVersion(v))
			return nil
		},
	}
}

// rangePairCmd builds a command that parses two range arguments and prints
// the canonical string form of combine's result.
func rangePairCmd(name, usage string, combine func(a, b version.VersionRange) version.VersionRange) *cli.Command {
	return &cli.Command{
		Name:      name,
		Usage:     usage,
		ArgsUsage: "RANGE1 RANGE2",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			args := cmd.Args()
			if args.Len() != 2 {
				return fmt.Errorf("%s requires exactly two ranges", name)
			}
			a, err := version.ParseRange(args.Get(0))
			if err != nil {
				return err
			}
			b, err := version.ParseRange(args.Get(1))
			if err != nil {
				return err
			}
			fmt.Println(combine(a, b).String())
			return nil
		},
	}
}

func unionCmd() *cli.Command {
	return rangePairCmd("union", "union of two ranges", version.VersionRange.Union)
}

func intersectCmd() *cli.Command {
	return rangePairCmd("intersect", "intersection of two ranges", version.VersionRange.Intersect)
}

func subtractCmd() *cli.Command {
	return rangePairCmd("subtract", "set difference of two ranges", version.VersionRange.Subtract)
}

func complementCmd() *cli.Command {
	return &cli.Command{
		Name:      "complement",
		Usage:     "complement of a range",
		ArgsUsage: "RANGE",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			r, err := version.ParseRange(cmd.Args().First())
			if err != nil {
				return err
			}
			fmt.Println(r.Complement().String())
			return nil
		},
	}
}

func spanCmd() *cli.Command {
	return &cli.Command{
		Name:      "span",
		Usage:     "smallest contiguous bound covering a range",
		ArgsUsage: "RANGE",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			r, err := version.ParseRange(cmd.Args().First())
			if err != nil {
				return err
			}
			b, ok := r.Span()
			if !ok {
				return fmt.Errorf("range is empty, no span")
			}
			fmt.Println(b.String())
			return nil
		},
	}
}
