// Command eddy is a small driver for exploring the curve packages:
// printing parameters, generating keypairs, and multiplying points.
package main

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"math/big"
	"os"

	"github.com/spf13/cobra"

	"github.com/f3rmion/eddy/keys"
	"github.com/f3rmion/eddy/logger"
	"github.com/f3rmion/eddy/twisted"
)

var curveName string

func selectedCurve() (*twisted.Curve, error) {
	switch curveName {
	case "babyjubjub":
		return twisted.BabyJubJub(), nil
	case "toy101":
		return twisted.Toy101(), nil
	}
	return nil, fmt.Errorf("unknown curve %q (want babyjubjub or toy101)", curveName)
}

func main() {
	root := &cobra.Command{
		Use:           "eddy",
		Short:         "Explore twisted Edwards curve arithmetic",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&curveName, "curve", "babyjubjub", "curve to operate on (babyjubjub or toy101)")
	root.AddCommand(infoCmd(), keygenCmd(), mulCmd())

	if err := root.Execute(); err != nil {
		log := logger.Logger()
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

func infoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Print the selected curve's parameters",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := selectedCurve()
			if err != nil {
				return err
			}
			fmt.Printf("curve:    %s\n", c)
			fmt.Printf("base:     %s\n", c.Base())
			fmt.Printf("order:    %s\n", c.Order())
			fmt.Printf("encoding: %d bytes\n", c.Field().Size())
			return nil
		},
	}
}

func keygenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "keygen",
		Short: "Generate a keypair on the selected curve",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := selectedCurve()
			if err != nil {
				return err
			}
			kp, err := keys.Generate(rand.Reader, c)
			if err != nil {
				return err
			}
			log := logger.Logger()
			log.Info().Str("curve", curveName).Msg("generated keypair")
			fmt.Printf("private: %s\n", kp.D)
			fmt.Printf("public:  %s\n", hex.EncodeToString(c.Marshal(kp.Public)))
			return nil
		},
	}
}

func mulCmd() *cobra.Command {
	var scalarStr, pointHex string
	cmd := &cobra.Command{
		Use:   "mul",
		Short: "Multiply a point by a scalar",
		Long:  "Multiply a point by a scalar. The point defaults to the curve's base point.",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := selectedCurve()
			if err != nil {
				return err
			}
			k, ok := new(big.Int).SetString(scalarStr, 10)
			if !ok || k.Sign() < 0 {
				return fmt.Errorf("invalid scalar %q: want a non-negative decimal integer", scalarStr)
			}

			p := c.Base()
			if pointHex != "" {
				raw, err := hex.DecodeString(pointHex)
				if err != nil {
					return fmt.Errorf("invalid point hex: %w", err)
				}
				if p, err = c.Unmarshal(raw); err != nil {
					return err
				}
			}

			r, err := c.ScalarMult(k, p)
			if err != nil {
				return err
			}
			fmt.Printf("point:   %s\n", r)
			fmt.Printf("encoded: %s\n", hex.EncodeToString(c.Marshal(r)))
			return nil
		},
	}
	cmd.Flags().StringVar(&scalarStr, "scalar", "", "scalar multiplier, decimal")
	cmd.Flags().StringVar(&pointHex, "point", "", "hex-encoded point (default: base point)")
	if err := cmd.MarkFlagRequired("scalar"); err != nil {
		panic(err)
	}
	return cmd
}
