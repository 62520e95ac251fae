package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/klauspost/pgzip"
	"github.com/spf13/cobra"

	"github.com/calebcase/vlu"
)

// VERSION of vlu
const VERSION = "0.1.0"

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "vlu",
	Short: "Variable-Length Unary integer packing",
	Long: fmt.Sprintf(`vlu - Variable-Length Unary integer packing

Packs unsigned 64-bit integers into byte streams where the size of every
value is written in unary in the low bits of its first byte. Plain text
files with one integer per line are packed by "encode" and restored by
"decode".

Codecs: %s

Version: %s

`, strings.Join(vlu.Names(), ", "), VERSION),
}

// Execute adds all child commands to the root command sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(-1)
	}
}

func init() {
	RootCmd.PersistentFlags().BoolP("verbose", "", false, "print verbose information")
	RootCmd.PersistentFlags().StringP("codec", "", vlu.Default, fmt.Sprintf("packing codec, available: %s", strings.Join(vlu.Names(), ", ")))
	RootCmd.PersistentFlags().IntP("compression-level", "", pgzip.DefaultCompression, "compression level for gzipped output")
	RootCmd.PersistentFlags().StringP("infile-list", "i", "", "file of input files list (one file per line), if given, files from cli arguments are ignored")
}
