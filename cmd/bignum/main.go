package main

import (
	goflag "flag"
	"fmt"
	"os"
	"strings"

	"github.com/golang/glog"
	"github.com/spf13/cobra"

	"github.com/oisee/bignum/pkg/bignum"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "bignum",
		Short: "Arbitrary-precision signed integer arithmetic over binary or factorial representations",
	}

	// glog registers -v, -logtostderr, etc. onto the standard flag package at
	// init time; bridge them onto pflag so cobra's -h lists them and `-v`
	// drives the trace lines below, matching the teacher's logging idiom.
	rootCmd.PersistentFlags().AddGoFlagSet(goflag.CommandLine)

	var form string

	evalCmd := &cobra.Command{
		Use:   "eval A OP B",
		Short: "Apply + - x / % to two decimal operands ('x' stands in for '*' to dodge shell globbing)",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			rep, err := parseForm(form)
			if err != nil {
				return err
			}
			a, err := bignum.FromString(rep, args[0])
			if err != nil {
				return fmt.Errorf("left operand: %w", err)
			}
			b, err := bignum.FromString(rep, args[2])
			if err != nil {
				return fmt.Errorf("right operand: %w", err)
			}
			glog.V(1).Infof("eval a=%s op=%s b=%s form=%s", a, args[1], b, rep)
			result, err := apply(a, args[1], b)
			if err != nil {
				return err
			}
			fmt.Println(bignum.ToString(result))
			return nil
		},
	}
	evalCmd.Flags().StringVar(&form, "form", "binary", "representation: binary or factorial")

	powCmd := &cobra.Command{
		Use:   "pow BASE EXP",
		Short: "Compute BASE raised to the non-negative integer power EXP",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			rep, err := parseForm(form)
			if err != nil {
				return err
			}
			base, err := bignum.FromString(rep, args[0])
			if err != nil {
				return fmt.Errorf("base: %w", err)
			}
			exp, err := bignum.FromString(rep, args[1])
			if err != nil {
				return fmt.Errorf("exponent: %w", err)
			}
			glog.V(1).Infof("pow base=%s exp=%s form=%s", base, exp, rep)
			result, err := bignum.Pow(base, exp)
			if err != nil {
				return err
			}
			fmt.Println(bignum.ToString(result))
			return nil
		},
	}
	powCmd.Flags().StringVar(&form, "form", "binary", "representation: binary or factorial")

	isqrtCmd := &cobra.Command{
		Use:   "isqrt N",
		Short: "Compute the integer (floor) square root of N",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rep, err := parseForm(form)
			if err != nil {
				return err
			}
			n, err := bignum.FromString(rep, args[0])
			if err != nil {
				return err
			}
			glog.V(1).Infof("isqrt n=%s form=%s", n, rep)
			result, err := bignum.Isqrt(n)
			if err != nil {
				return err
			}
			fmt.Println(bignum.ToString(result))
			return nil
		},
	}
	isqrtCmd.Flags().StringVar(&form, "form", "binary", "representation: binary or factorial")

	var toForm string
	convertCmd := &cobra.Command{
		Use:   "convert N",
		Short: "Round-trip N through --to-form and print it back as decimal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rep, err := parseForm(toForm)
			if err != nil {
				return err
			}
			v, err := bignum.FromString(rep, args[0])
			if err != nil {
				return err
			}
			glog.V(1).Infof("convert %s through form=%s", args[0], rep)
			fmt.Println(bignum.ToString(v))
			return nil
		},
	}
	convertCmd.Flags().StringVar(&toForm, "to-form", "factorial", "representation to round-trip through: binary or factorial")

	rootCmd.AddCommand(evalCmd, powCmd, isqrtCmd, convertCmd)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// parseForm maps a --form/--to-form flag value to a bignum.Representation.
func parseForm(s string) (bignum.Representation, error) {
	switch strings.ToLower(s) {
	case "binary", "bin", "":
		return bignum.RepBinary, nil
	case "factorial", "fac":
		return bignum.RepFactorial, nil
	default:
		return 0, fmt.Errorf("unknown --form value %q: use binary or factorial", s)
	}
}

// apply evaluates a op b for op in {+, -, x, /, %}.
func apply(a bignum.Int, op string, b bignum.Int) (bignum.Int, error) {
	switch op {
	case "+":
		return a.Add(b), nil
	case "-":
		return a.Sub(b), nil
	case "x", "*":
		return a.Mul(b), nil
	case "/":
		return a.Div(b)
	case "%":
		return a.Mod(b)
	default:
		return bignum.Int{}, fmt.Errorf("unknown operator %q: use + - x / %%", op)
	}
}
